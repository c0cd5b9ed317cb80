package tg

import "github.com/prilive-com/tgtypes/schema"

// Gifts represents a list of available gifts.
type Gifts struct {
	Gifts []Gift `json:"gifts"`
}

// Gift represents a gift that can be sent.
type Gift struct {
	ID               string  `json:"id"`
	Sticker          Sticker `json:"sticker"`
	StarCount        int     `json:"star_count"`
	UpgradeStarCount *int    `json:"upgrade_star_count,omitempty"`
	TotalCount       *int    `json:"total_count,omitempty"`
	RemainingCount   *int    `json:"remaining_count,omitempty"`
	PublisherChat    *Chat   `json:"publisher_chat,omitempty"`
}

// GiftInfo describes a service message about a regular gift that was sent or received.
type GiftInfo struct {
	Gift                    Gift            `json:"gift"`
	OwnedGiftID             *string         `json:"owned_gift_id,omitempty"`
	ConvertStarCount        *int            `json:"convert_star_count,omitempty"`
	PrepaidUpgradeStarCount *int            `json:"prepaid_upgrade_star_count,omitempty"`
	CanBeUpgraded           bool            `json:"can_be_upgraded,omitempty"`
	Text                    *string         `json:"text,omitempty"`
	Entities                []MessageEntity `json:"entities,omitempty"`
	IsPrivate               bool            `json:"is_private,omitempty"`
}

// UniqueGiftInfo describes a service message about a unique gift that was
// sent or received.
type UniqueGiftInfo struct {
	Gift                UniqueGift `json:"gift"`
	Origin              string     `json:"origin"` // "upgrade", "transfer", "resale"
	LastResaleStarCount *int       `json:"last_resale_star_count,omitempty"`
	OwnedGiftID         *string    `json:"owned_gift_id,omitempty"`
	TransferStarCount   *int       `json:"transfer_star_count,omitempty"`
	NextTransferDate    *int64     `json:"next_transfer_date,omitempty"`
}

// OwnedGifts represents a list of gifts owned by a user or chat.
type OwnedGifts struct {
	TotalCount int         `json:"total_count"`
	Gifts      []OwnedGift `json:"gifts"`
	NextOffset *string     `json:"next_offset,omitempty"`
}

// --- OwnedGift Union ---

// OwnedGift describes a gift received and owned by a user or chat.
type OwnedGift interface {
	schema.Variant
	ownedGiftTag()
}

var ownedGifts = schema.NewFamily[OwnedGift]("OwnedGift", "type",
	func(value string, raw map[string]any) OwnedGift {
		return OwnedGiftUnknown{Type: value, Raw: raw}
	},
	OwnedGiftRegular{}, OwnedGiftUnique{},
)

// OwnedGiftRegular describes a regular gift owned by a user or chat.
type OwnedGiftRegular struct {
	Gift                    Gift            `json:"gift"`
	OwnedGiftID             *string         `json:"owned_gift_id,omitempty"`
	SenderUser              *User           `json:"sender_user,omitempty"`
	SendDate                int64           `json:"send_date"`
	Text                    *string         `json:"text,omitempty"`
	Entities                []MessageEntity `json:"entities,omitempty"`
	IsPrivate               bool            `json:"is_private,omitempty"`
	IsSaved                 bool            `json:"is_saved,omitempty"`
	CanBeUpgraded           bool            `json:"can_be_upgraded,omitempty"`
	WasRefunded             bool            `json:"was_refunded,omitempty"`
	ConvertStarCount        *int            `json:"convert_star_count,omitempty"`
	PrepaidUpgradeStarCount *int            `json:"prepaid_upgrade_star_count,omitempty"`
}

func (OwnedGiftRegular) ownedGiftTag()         {}
func (OwnedGiftRegular) Discriminator() string { return "regular" }

// OwnedGiftUnique describes a unique gift owned by a user or chat.
type OwnedGiftUnique struct {
	Gift              UniqueGift `json:"gift"`
	OwnedGiftID       *string    `json:"owned_gift_id,omitempty"`
	SenderUser        *User      `json:"sender_user,omitempty"`
	SendDate          int64      `json:"send_date"`
	IsSaved           bool       `json:"is_saved,omitempty"`
	CanBeTransferred  bool       `json:"can_be_transferred,omitempty"`
	TransferStarCount *int       `json:"transfer_star_count,omitempty"`
	NextTransferDate  *int64     `json:"next_transfer_date,omitempty"`
}

func (OwnedGiftUnique) ownedGiftTag()         {}
func (OwnedGiftUnique) Discriminator() string { return "unique" }

// OwnedGiftUnknown is a fallback for future owned gift types.
type OwnedGiftUnknown struct {
	Type string
	Raw  map[string]any
}

func (OwnedGiftUnknown) ownedGiftTag()               {}
func (g OwnedGiftUnknown) Discriminator() string     { return g.Type }
func (g OwnedGiftUnknown) RawFields() map[string]any { return g.Raw }

// AcceptedGiftTypes describes which gift types are accepted.
type AcceptedGiftTypes struct {
	UnlimitedGifts      bool `json:"unlimited_gifts"`
	LimitedGifts        bool `json:"limited_gifts"`
	UniqueGifts         bool `json:"unique_gifts"`
	PremiumSubscription bool `json:"premium_subscription"`
}

// UniqueGiftModel describes the model of a unique gift.
// Added in Bot API 9.0, updated in 9.4.
type UniqueGiftModel struct {
	Name           string  `json:"name"`
	Sticker        Sticker `json:"sticker"`
	RarityPerMille int     `json:"rarity_per_mille"` // 0 for crafted
	Rarity         *string `json:"rarity,omitempty"` // 9.4: "uncommon"|"rare"|"epic"|"legendary"
}

// UniqueGiftSymbol describes the symbol of a unique gift.
// Added in Bot API 9.0.
type UniqueGiftSymbol struct {
	Name           string  `json:"name"`
	Sticker        Sticker `json:"sticker"`
	RarityPerMille int     `json:"rarity_per_mille"` // required, 0 for crafted
}

// UniqueGiftBackdropColors describes the colors of the backdrop of a unique gift.
// All fields are RGB24 integers (0..16777215 / 0x000000..0xFFFFFF).
// Added in Bot API 9.0.
type UniqueGiftBackdropColors struct {
	CenterColor int `json:"center_color"`
	EdgeColor   int `json:"edge_color"`
	SymbolColor int `json:"symbol_color"`
	TextColor   int `json:"text_color"`
}

// UniqueGiftBackdrop describes the backdrop of a unique gift.
// Added in Bot API 9.0.
type UniqueGiftBackdrop struct {
	Name           string                   `json:"name"`
	Colors         UniqueGiftBackdropColors `json:"colors"`
	RarityPerMille int                      `json:"rarity_per_mille"` // required, 0 for crafted
}

// UniqueGiftColors describes the color scheme for a user's name,
// message replies and link previews based on a unique gift.
// Added in Bot API 9.3.
type UniqueGiftColors struct {
	ModelCustomEmojiID    string `json:"model_custom_emoji_id"`
	SymbolCustomEmojiID   string `json:"symbol_custom_emoji_id"`
	LightThemeMainColor   int    `json:"light_theme_main_color"`   // RGB24
	LightThemeOtherColors []int  `json:"light_theme_other_colors"` // 1-3 RGB24 colors
	DarkThemeMainColor    int    `json:"dark_theme_main_color"`    // RGB24
	DarkThemeOtherColors  []int  `json:"dark_theme_other_colors"`  // 1-3 RGB24 colors
}

// UniqueGift represents a gift upgraded to a unique one.
// Added in Bot API 9.0, updated in 9.3 and 9.4.
type UniqueGift struct {
	BaseName string             `json:"base_name"`
	Name     string             `json:"name"`
	Number   int                `json:"number"`
	Model    UniqueGiftModel    `json:"model"`
	Symbol   UniqueGiftSymbol   `json:"symbol"`
	Backdrop UniqueGiftBackdrop `json:"backdrop"`
	Colors   *UniqueGiftColors  `json:"colors,omitempty"`    // 9.3
	IsBurned bool               `json:"is_burned,omitempty"` // 9.4
}

// UniqueGiftModel rarity constants (added in Bot API 9.4).
const (
	GiftRarityUncommon  = "uncommon"
	GiftRarityRare      = "rare"
	GiftRarityEpic      = "epic"
	GiftRarityLegendary = "legendary"
)
