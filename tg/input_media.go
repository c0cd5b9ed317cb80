package tg

import "github.com/prilive-com/tgtypes/schema"

// InputMedia represents the content of a media message to be sent,
// as used by sendMediaGroup and editMessageMedia.
type InputMedia interface {
	schema.Variant
	inputMediaTag()
}

var inputMedia = schema.NewFamily[InputMedia]("InputMedia", "type",
	func(value string, raw map[string]any) InputMedia {
		return InputMediaUnknown{Type: value, Raw: raw}
	},
	InputMediaPhoto{}, InputMediaVideo{}, InputMediaAnimation{}, InputMediaAudio{}, InputMediaDocument{},
)

// InputMediaPhoto represents a photo to be sent.
type InputMediaPhoto struct {
	Media                 InputFile       `json:"media"`
	Caption               *string         `json:"caption,omitempty"`
	ParseMode             *ParseMode      `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	HasSpoiler            bool            `json:"has_spoiler,omitempty"`
}

func (InputMediaPhoto) inputMediaTag()        {}
func (InputMediaPhoto) Discriminator() string { return "photo" }

// InputMediaVideo represents a video to be sent.
type InputMediaVideo struct {
	Media                 InputFile       `json:"media"`
	Thumbnail             *InputFile      `json:"thumbnail,omitempty"`
	Cover                 *InputFile      `json:"cover,omitempty"`
	StartTimestamp        *int            `json:"start_timestamp,omitempty"`
	Caption               *string         `json:"caption,omitempty"`
	ParseMode             *ParseMode      `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	Width                 *int            `json:"width,omitempty"`
	Height                *int            `json:"height,omitempty"`
	Duration              *int            `json:"duration,omitempty"`
	SupportsStreaming     bool            `json:"supports_streaming,omitempty"`
	HasSpoiler            bool            `json:"has_spoiler,omitempty"`
}

func (InputMediaVideo) inputMediaTag()        {}
func (InputMediaVideo) Discriminator() string { return "video" }

// InputMediaAnimation represents an animation (GIF or H.264/MPEG-4 AVC
// video without sound) to be sent.
type InputMediaAnimation struct {
	Media                 InputFile       `json:"media"`
	Thumbnail             *InputFile      `json:"thumbnail,omitempty"`
	Caption               *string         `json:"caption,omitempty"`
	ParseMode             *ParseMode      `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	Width                 *int            `json:"width,omitempty"`
	Height                *int            `json:"height,omitempty"`
	Duration              *int            `json:"duration,omitempty"`
	HasSpoiler            bool            `json:"has_spoiler,omitempty"`
}

func (InputMediaAnimation) inputMediaTag()        {}
func (InputMediaAnimation) Discriminator() string { return "animation" }

// InputMediaAudio represents an audio file to be treated as music.
type InputMediaAudio struct {
	Media           InputFile       `json:"media"`
	Thumbnail       *InputFile      `json:"thumbnail,omitempty"`
	Caption         *string         `json:"caption,omitempty"`
	ParseMode       *ParseMode      `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Duration        *int            `json:"duration,omitempty"`
	Performer       *string         `json:"performer,omitempty"`
	Title           *string         `json:"title,omitempty"`
}

func (InputMediaAudio) inputMediaTag()        {}
func (InputMediaAudio) Discriminator() string { return "audio" }

// InputMediaDocument represents a general file to be sent.
type InputMediaDocument struct {
	Media                       InputFile       `json:"media"`
	Thumbnail                   *InputFile      `json:"thumbnail,omitempty"`
	Caption                     *string         `json:"caption,omitempty"`
	ParseMode                   *ParseMode      `json:"parse_mode,omitempty"`
	CaptionEntities             []MessageEntity `json:"caption_entities,omitempty"`
	DisableContentTypeDetection bool            `json:"disable_content_type_detection,omitempty"`
}

func (InputMediaDocument) inputMediaTag()        {}
func (InputMediaDocument) Discriminator() string { return "document" }

// InputMediaUnknown is a fallback for future media types.
type InputMediaUnknown struct {
	Type string
	Raw  map[string]any
}

func (InputMediaUnknown) inputMediaTag()              {}
func (m InputMediaUnknown) Discriminator() string     { return m.Type }
func (m InputMediaUnknown) RawFields() map[string]any { return m.Raw }

// NewInputMediaPhoto creates an InputMedia of type "photo".
func NewInputMediaPhoto(media InputFile) InputMediaPhoto {
	return InputMediaPhoto{Media: media}
}

// NewInputMediaVideo creates an InputMedia of type "video".
func NewInputMediaVideo(media InputFile) InputMediaVideo {
	return InputMediaVideo{Media: media}
}

// NewInputMediaAnimation creates an InputMedia of type "animation".
func NewInputMediaAnimation(media InputFile) InputMediaAnimation {
	return InputMediaAnimation{Media: media}
}

// NewInputMediaAudio creates an InputMedia of type "audio".
func NewInputMediaAudio(media InputFile) InputMediaAudio {
	return InputMediaAudio{Media: media}
}

// NewInputMediaDocument creates an InputMedia of type "document".
func NewInputMediaDocument(media InputFile) InputMediaDocument {
	return InputMediaDocument{Media: media}
}

// WithCaption returns a copy with the caption and parse mode set.
// An empty mode leaves the parse mode unset.
func (m InputMediaPhoto) WithCaption(caption string, mode ParseMode) InputMediaPhoto {
	m.Caption = &caption
	if mode != "" {
		m.ParseMode = &mode
	}
	return m
}
