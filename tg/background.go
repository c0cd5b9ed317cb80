package tg

import "github.com/prilive-com/tgtypes/schema"

// --- BackgroundFill Union ---

// BackgroundFill describes the way a background is filled based on the selected colors.
type BackgroundFill interface {
	schema.Variant
	backgroundFill()
}

var backgroundFills = schema.NewFamily[BackgroundFill]("BackgroundFill", "type",
	func(value string, raw map[string]any) BackgroundFill {
		return BackgroundFillUnknown{Type: value, Raw: raw}
	},
	BackgroundFillSolid{}, BackgroundFillGradient{}, BackgroundFillFreeformGradient{},
)

// BackgroundFillSolid: the background is filled using the selected color.
type BackgroundFillSolid struct {
	Color int `json:"color"` // RGB24
}

func (BackgroundFillSolid) Discriminator() string { return "solid" }
func (BackgroundFillSolid) backgroundFill()       {}

// BackgroundFillGradient: the background is a gradient fill.
type BackgroundFillGradient struct {
	TopColor      int `json:"top_color"`
	BottomColor   int `json:"bottom_color"`
	RotationAngle int `json:"rotation_angle"` // 0-359
}

func (BackgroundFillGradient) Discriminator() string { return "gradient" }
func (BackgroundFillGradient) backgroundFill()       {}

// BackgroundFillFreeformGradient: the background is a freeform gradient
// that rotates after every message in the chat.
type BackgroundFillFreeformGradient struct {
	Colors []int `json:"colors"` // 3 or 4 RGB24 colors
}

func (BackgroundFillFreeformGradient) Discriminator() string { return "freeform_gradient" }
func (BackgroundFillFreeformGradient) backgroundFill()       {}

// BackgroundFillUnknown holds a fill type this package does not know yet.
type BackgroundFillUnknown struct {
	Type string
	Raw  map[string]any
}

func (f BackgroundFillUnknown) Discriminator() string     { return f.Type }
func (f BackgroundFillUnknown) RawFields() map[string]any { return f.Raw }
func (BackgroundFillUnknown) backgroundFill()             {}

// --- BackgroundType Union ---

// BackgroundType describes the type of a chat background.
type BackgroundType interface {
	schema.Variant
	backgroundType()
}

var backgroundTypes = schema.NewFamily[BackgroundType]("BackgroundType", "type",
	func(value string, raw map[string]any) BackgroundType {
		return BackgroundTypeUnknown{Type: value, Raw: raw}
	},
	BackgroundTypeFill{}, BackgroundTypeWallpaper{}, BackgroundTypePattern{}, BackgroundTypeChatTheme{},
)

// BackgroundTypeFill: the background is automatically filled based on the selected colors.
type BackgroundTypeFill struct {
	Fill             BackgroundFill `json:"fill"`
	DarkThemeDimming int            `json:"dark_theme_dimming"` // 0-100
}

func (BackgroundTypeFill) Discriminator() string { return "fill" }
func (BackgroundTypeFill) backgroundType()       {}

// BackgroundTypeWallpaper: the background is a wallpaper in the JPEG format.
type BackgroundTypeWallpaper struct {
	Document         Document `json:"document"`
	DarkThemeDimming int      `json:"dark_theme_dimming"`
	IsBlurred        bool     `json:"is_blurred,omitempty"`
	IsMoving         bool     `json:"is_moving,omitempty"`
}

func (BackgroundTypeWallpaper) Discriminator() string { return "wallpaper" }
func (BackgroundTypeWallpaper) backgroundType()       {}

// BackgroundTypePattern: the background is a PNG or TGV pattern combined
// with the background fill chosen by the user.
type BackgroundTypePattern struct {
	Document   Document       `json:"document"`
	Fill       BackgroundFill `json:"fill"`
	Intensity  int            `json:"intensity"` // 0-100
	IsInverted bool           `json:"is_inverted,omitempty"`
	IsMoving   bool           `json:"is_moving,omitempty"`
}

func (BackgroundTypePattern) Discriminator() string { return "pattern" }
func (BackgroundTypePattern) backgroundType()       {}

// BackgroundTypeChatTheme: the background is taken directly from a built-in chat theme.
type BackgroundTypeChatTheme struct {
	ThemeName string `json:"theme_name"`
}

func (BackgroundTypeChatTheme) Discriminator() string { return "chat_theme" }
func (BackgroundTypeChatTheme) backgroundType()       {}

// BackgroundTypeUnknown holds a background type this package does not know yet.
type BackgroundTypeUnknown struct {
	Type string
	Raw  map[string]any
}

func (b BackgroundTypeUnknown) Discriminator() string     { return b.Type }
func (b BackgroundTypeUnknown) RawFields() map[string]any { return b.Raw }
func (BackgroundTypeUnknown) backgroundType()             {}

// ChatBackground represents a chat background.
type ChatBackground struct {
	Type BackgroundType `json:"type"`
}
