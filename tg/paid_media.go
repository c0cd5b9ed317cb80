package tg

import "github.com/prilive-com/tgtypes/schema"

// PaidMediaInfo describes the paid media added to a message.
type PaidMediaInfo struct {
	StarCount int         `json:"star_count"`
	PaidMedia []PaidMedia `json:"paid_media"`
}

// PaidMediaPurchased contains information about a paid media purchase.
type PaidMediaPurchased struct {
	From             User   `json:"from"`
	PaidMediaPayload string `json:"paid_media_payload"`
}

// --- PaidMedia Union ---

// PaidMedia describes paid media.
type PaidMedia interface {
	schema.Variant
	paidMediaTag()
}

var paidMedia = schema.NewFamily[PaidMedia]("PaidMedia", "type",
	func(value string, raw map[string]any) PaidMedia {
		return PaidMediaUnknown{Type: value, Raw: raw}
	},
	PaidMediaPreview{}, PaidMediaPhoto{}, PaidMediaVideo{},
)

// PaidMediaPreview is paid media that isn't available before payment.
type PaidMediaPreview struct {
	Width    *int `json:"width,omitempty"`
	Height   *int `json:"height,omitempty"`
	Duration *int `json:"duration,omitempty"`
}

func (PaidMediaPreview) paidMediaTag()         {}
func (PaidMediaPreview) Discriminator() string { return "preview" }

// PaidMediaPhoto is a paid photo.
type PaidMediaPhoto struct {
	Photo []PhotoSize `json:"photo"`
}

func (PaidMediaPhoto) paidMediaTag()         {}
func (PaidMediaPhoto) Discriminator() string { return "photo" }

// PaidMediaVideo is a paid video.
type PaidMediaVideo struct {
	Video Video `json:"video"`
}

func (PaidMediaVideo) paidMediaTag()         {}
func (PaidMediaVideo) Discriminator() string { return "video" }

// PaidMediaUnknown is a fallback for future paid media types.
type PaidMediaUnknown struct {
	Type string
	Raw  map[string]any
}

func (PaidMediaUnknown) paidMediaTag()               {}
func (m PaidMediaUnknown) Discriminator() string     { return m.Type }
func (m PaidMediaUnknown) RawFields() map[string]any { return m.Raw }

// --- InputPaidMedia Union ---

// InputPaidMedia describes paid media to be sent.
type InputPaidMedia interface {
	schema.Variant
	inputPaidMediaTag()
}

var inputPaidMedia = schema.NewFamily[InputPaidMedia]("InputPaidMedia", "type",
	func(value string, raw map[string]any) InputPaidMedia {
		return InputPaidMediaUnknown{Type: value, Raw: raw}
	},
	InputPaidMediaPhoto{}, InputPaidMediaVideo{},
)

// InputPaidMediaPhoto is a paid photo to send.
type InputPaidMediaPhoto struct {
	Media InputFile `json:"media"`
}

func (InputPaidMediaPhoto) inputPaidMediaTag()    {}
func (InputPaidMediaPhoto) Discriminator() string { return "photo" }

// InputPaidMediaVideo is a paid video to send.
type InputPaidMediaVideo struct {
	Media             InputFile  `json:"media"`
	Thumbnail         *InputFile `json:"thumbnail,omitempty"`
	Cover             *InputFile `json:"cover,omitempty"`
	StartTimestamp    *int       `json:"start_timestamp,omitempty"`
	Width             *int       `json:"width,omitempty"`
	Height            *int       `json:"height,omitempty"`
	Duration          *int       `json:"duration,omitempty"`
	SupportsStreaming bool       `json:"supports_streaming,omitempty"`
}

func (InputPaidMediaVideo) inputPaidMediaTag()    {}
func (InputPaidMediaVideo) Discriminator() string { return "video" }

// InputPaidMediaUnknown is a fallback for future input paid media types.
type InputPaidMediaUnknown struct {
	Type string
	Raw  map[string]any
}

func (InputPaidMediaUnknown) inputPaidMediaTag()          {}
func (m InputPaidMediaUnknown) Discriminator() string     { return m.Type }
func (m InputPaidMediaUnknown) RawFields() map[string]any { return m.Raw }
