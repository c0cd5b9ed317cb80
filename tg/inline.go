package tg

import "github.com/prilive-com/tgtypes/schema"

// InlineQuery represents an incoming inline query.
type InlineQuery struct {
	ID       string    `json:"id"`
	From     User      `json:"from"`
	Query    string    `json:"query"`
	Offset   string    `json:"offset"`
	ChatType *ChatType `json:"chat_type,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// ChosenInlineResult represents a result of an inline query that was chosen
// by the user and sent to their chat partner.
type ChosenInlineResult struct {
	ResultID        string    `json:"result_id"`
	From            User      `json:"from"`
	Location        *Location `json:"location,omitempty"`
	InlineMessageID *string   `json:"inline_message_id,omitempty"`
	Query           string    `json:"query"`
}

// --- InlineQueryResult Union (Partial Implementation) ---
//
// Telegram has 20+ InlineQueryResult types. We implement commonly-used ones
// and provide InlineQueryResultUnknown as a forward-compatible fallback.

// InlineQueryResult represents one result of an inline query.
type InlineQueryResult interface {
	schema.Variant
	inlineQueryResultTag()
}

var inlineQueryResults = schema.NewFamily[InlineQueryResult]("InlineQueryResult", "type",
	func(value string, raw map[string]any) InlineQueryResult {
		return InlineQueryResultUnknown{Type: value, Raw: raw}
	},
	InlineQueryResultArticle{}, InlineQueryResultPhoto{}, InlineQueryResultDocument{},
	InlineQueryResultLocation{}, InlineQueryResultVenue{}, InlineQueryResultContact{},
)

// InlineQueryResultArticle represents a link to an article or web page.
type InlineQueryResultArticle struct {
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	InputMessageContent InputMessageContent   `json:"input_message_content"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	URL                 *string               `json:"url,omitempty"`
	Description         *string               `json:"description,omitempty"`
	ThumbnailURL        *string               `json:"thumbnail_url,omitempty"`
	ThumbnailWidth      *int                  `json:"thumbnail_width,omitempty"`
	ThumbnailHeight     *int                  `json:"thumbnail_height,omitempty"`
}

func (InlineQueryResultArticle) inlineQueryResultTag() {}
func (InlineQueryResultArticle) Discriminator() string { return "article" }

// InlineQueryResultPhoto represents a link to a photo.
type InlineQueryResultPhoto struct {
	ID                    string                `json:"id"`
	PhotoURL              string                `json:"photo_url"`
	ThumbnailURL          string                `json:"thumbnail_url"`
	PhotoWidth            *int                  `json:"photo_width,omitempty"`
	PhotoHeight           *int                  `json:"photo_height,omitempty"`
	Title                 *string               `json:"title,omitempty"`
	Description           *string               `json:"description,omitempty"`
	Caption               *string               `json:"caption,omitempty"`
	ParseMode             *ParseMode            `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity       `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool                  `json:"show_caption_above_media,omitempty"`
	ReplyMarkup           *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent   InputMessageContent   `json:"input_message_content,omitempty"`
}

func (InlineQueryResultPhoto) inlineQueryResultTag() {}
func (InlineQueryResultPhoto) Discriminator() string { return "photo" }

// InlineQueryResultDocument represents a link to a file.
type InlineQueryResultDocument struct {
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *ParseMode            `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	DocumentURL         string                `json:"document_url"`
	MimeType            string                `json:"mime_type"`
	Description         *string               `json:"description,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbnailURL        *string               `json:"thumbnail_url,omitempty"`
	ThumbnailWidth      *int                  `json:"thumbnail_width,omitempty"`
	ThumbnailHeight     *int                  `json:"thumbnail_height,omitempty"`
}

func (InlineQueryResultDocument) inlineQueryResultTag() {}
func (InlineQueryResultDocument) Discriminator() string { return "document" }

// InlineQueryResultLocation represents a location on a map.
type InlineQueryResultLocation struct {
	ID                   string                `json:"id"`
	Latitude             float64               `json:"latitude"`
	Longitude            float64               `json:"longitude"`
	Title                string                `json:"title"`
	HorizontalAccuracy   *float64              `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *int                  `json:"live_period,omitempty"`
	Heading              *int                  `json:"heading,omitempty"`
	ProximityAlertRadius *int                  `json:"proximity_alert_radius,omitempty"`
	ReplyMarkup          *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent  InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbnailURL         *string               `json:"thumbnail_url,omitempty"`
	ThumbnailWidth       *int                  `json:"thumbnail_width,omitempty"`
	ThumbnailHeight      *int                  `json:"thumbnail_height,omitempty"`
}

func (InlineQueryResultLocation) inlineQueryResultTag() {}
func (InlineQueryResultLocation) Discriminator() string { return "location" }

// InlineQueryResultVenue represents a venue.
type InlineQueryResultVenue struct {
	ID                  string                `json:"id"`
	Latitude            float64               `json:"latitude"`
	Longitude           float64               `json:"longitude"`
	Title               string                `json:"title"`
	Address             string                `json:"address"`
	FoursquareID        *string               `json:"foursquare_id,omitempty"`
	FoursquareType      *string               `json:"foursquare_type,omitempty"`
	GooglePlaceID       *string               `json:"google_place_id,omitempty"`
	GooglePlaceType     *string               `json:"google_place_type,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbnailURL        *string               `json:"thumbnail_url,omitempty"`
	ThumbnailWidth      *int                  `json:"thumbnail_width,omitempty"`
	ThumbnailHeight     *int                  `json:"thumbnail_height,omitempty"`
}

func (InlineQueryResultVenue) inlineQueryResultTag() {}
func (InlineQueryResultVenue) Discriminator() string { return "venue" }

// InlineQueryResultContact represents a contact with a phone number.
type InlineQueryResultContact struct {
	ID                  string                `json:"id"`
	PhoneNumber         string                `json:"phone_number"`
	FirstName           string                `json:"first_name"`
	LastName            *string               `json:"last_name,omitempty"`
	VCard               *string               `json:"vcard,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbnailURL        *string               `json:"thumbnail_url,omitempty"`
	ThumbnailWidth      *int                  `json:"thumbnail_width,omitempty"`
	ThumbnailHeight     *int                  `json:"thumbnail_height,omitempty"`
}

func (InlineQueryResultContact) inlineQueryResultTag() {}
func (InlineQueryResultContact) Discriminator() string { return "contact" }

// InlineQueryResultUnknown is a fallback for unknown/future result types.
type InlineQueryResultUnknown struct {
	Type string
	Raw  map[string]any
}

func (InlineQueryResultUnknown) inlineQueryResultTag()       {}
func (r InlineQueryResultUnknown) Discriminator() string     { return r.Type }
func (r InlineQueryResultUnknown) RawFields() map[string]any { return r.Raw }

// --- InputMessageContent ---

// InputMessageContent represents the content of a message to be sent
// as a result of an inline query. The variants carry no type field and are
// told apart by their required keys.
type InputMessageContent interface {
	schema.Variant
	inputMessageContentTag()
}

var inputMessageContents = schema.NewShapeFamily[InputMessageContent]("InputMessageContent",
	classifyInputMessageContent,
	nil,
	InputTextMessageContent{}, InputLocationMessageContent{}, InputVenueMessageContent{},
	InputContactMessageContent{}, InputInvoiceMessageContent{},
)

// classifyInputMessageContent picks the variant from the keys present.
// Venues carry latitude too, so address is checked first.
func classifyInputMessageContent(raw map[string]any) string {
	switch {
	case has(raw, "message_text"):
		return "text"
	case has(raw, "payload"):
		return "invoice"
	case has(raw, "phone_number"):
		return "contact"
	case has(raw, "address"):
		return "venue"
	case has(raw, "latitude"):
		return "location"
	}
	return ""
}

func has(raw map[string]any, key string) bool {
	_, ok := raw[key]
	return ok
}

// InputTextMessageContent represents text content for an inline query result.
type InputTextMessageContent struct {
	MessageText        string              `json:"message_text"`
	ParseMode          *ParseMode          `json:"parse_mode,omitempty"`
	Entities           []MessageEntity     `json:"entities,omitempty"`
	LinkPreviewOptions *LinkPreviewOptions `json:"link_preview_options,omitempty"`
}

func (InputTextMessageContent) inputMessageContentTag() {}
func (InputTextMessageContent) Discriminator() string   { return "text" }

// InputLocationMessageContent represents location content for an inline query result.
type InputLocationMessageContent struct {
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	HorizontalAccuracy   *float64 `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *int     `json:"live_period,omitempty"`
	Heading              *int     `json:"heading,omitempty"`
	ProximityAlertRadius *int     `json:"proximity_alert_radius,omitempty"`
}

func (InputLocationMessageContent) inputMessageContentTag() {}
func (InputLocationMessageContent) Discriminator() string   { return "location" }

// InputVenueMessageContent represents venue content for an inline query result.
type InputVenueMessageContent struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Title           string  `json:"title"`
	Address         string  `json:"address"`
	FoursquareID    *string `json:"foursquare_id,omitempty"`
	FoursquareType  *string `json:"foursquare_type,omitempty"`
	GooglePlaceID   *string `json:"google_place_id,omitempty"`
	GooglePlaceType *string `json:"google_place_type,omitempty"`
}

func (InputVenueMessageContent) inputMessageContentTag() {}
func (InputVenueMessageContent) Discriminator() string   { return "venue" }

// InputContactMessageContent represents contact content for an inline query result.
type InputContactMessageContent struct {
	PhoneNumber string  `json:"phone_number"`
	FirstName   string  `json:"first_name"`
	LastName    *string `json:"last_name,omitempty"`
	VCard       *string `json:"vcard,omitempty"`
}

func (InputContactMessageContent) inputMessageContentTag() {}
func (InputContactMessageContent) Discriminator() string   { return "contact" }

// InputInvoiceMessageContent represents invoice content for an inline query result.
type InputInvoiceMessageContent struct {
	Title                     string         `json:"title"`
	Description               string         `json:"description"`
	Payload                   string         `json:"payload"`
	ProviderToken             *string        `json:"provider_token,omitempty"`
	Currency                  string         `json:"currency"`
	Prices                    []LabeledPrice `json:"prices"`
	MaxTipAmount              *int           `json:"max_tip_amount,omitempty"`
	SuggestedTipAmounts       []int          `json:"suggested_tip_amounts,omitempty"`
	ProviderData              *string        `json:"provider_data,omitempty"`
	PhotoURL                  *string        `json:"photo_url,omitempty"`
	PhotoSize                 *int           `json:"photo_size,omitempty"`
	PhotoWidth                *int           `json:"photo_width,omitempty"`
	PhotoHeight               *int           `json:"photo_height,omitempty"`
	NeedName                  *bool          `json:"need_name,omitempty"`
	NeedPhoneNumber           *bool          `json:"need_phone_number,omitempty"`
	NeedEmail                 *bool          `json:"need_email,omitempty"`
	NeedShippingAddress       *bool          `json:"need_shipping_address,omitempty"`
	SendPhoneNumberToProvider *bool          `json:"send_phone_number_to_provider,omitempty"`
	SendEmailToProvider       *bool          `json:"send_email_to_provider,omitempty"`
	IsFlexible                *bool          `json:"is_flexible,omitempty"`
}

func (InputInvoiceMessageContent) inputMessageContentTag() {}
func (InputInvoiceMessageContent) Discriminator() string   { return "invoice" }

// --- Other Inline Types ---

// InlineQueryResultsButton represents a button above inline query results.
type InlineQueryResultsButton struct {
	Text           string      `json:"text"`
	WebApp         *WebAppInfo `json:"web_app,omitempty"`
	StartParameter *string     `json:"start_parameter,omitempty"`
}

// SentWebAppMessage describes an inline message sent by a Web App.
type SentWebAppMessage struct {
	InlineMessageID *string `json:"inline_message_id,omitempty"`
}

// PreparedInlineMessage represents a prepared inline message.
type PreparedInlineMessage struct {
	ID             string `json:"id"`
	ExpirationDate int64  `json:"expiration_date"`
}
