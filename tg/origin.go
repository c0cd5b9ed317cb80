package tg

import "github.com/prilive-com/tgtypes/schema"

// MessageOrigin describes the origin of a forwarded message.
// Concrete types:
//   - MessageOriginUser
//   - MessageOriginHiddenUser
//   - MessageOriginChat
//   - MessageOriginChannel
//   - MessageOriginUnknown (future types)
type MessageOrigin interface {
	schema.Variant
	messageOrigin()

	// OriginDate returns the date the message was sent originally.
	OriginDate() int64
}

var messageOrigins = schema.NewFamily[MessageOrigin]("MessageOrigin", "type",
	func(value string, raw map[string]any) MessageOrigin {
		return MessageOriginUnknown{Type: value, Raw: raw}
	},
	MessageOriginUser{}, MessageOriginHiddenUser{}, MessageOriginChat{}, MessageOriginChannel{},
)

// MessageOriginUser: the message was originally sent by a known user.
type MessageOriginUser struct {
	Date       int64 `json:"date"`
	SenderUser User  `json:"sender_user"`
}

func (MessageOriginUser) Discriminator() string { return "user" }
func (MessageOriginUser) messageOrigin()        {}
func (o MessageOriginUser) OriginDate() int64   { return o.Date }

// MessageOriginHiddenUser: the message was originally sent by an unknown user.
type MessageOriginHiddenUser struct {
	Date           int64  `json:"date"`
	SenderUserName string `json:"sender_user_name"`
}

func (MessageOriginHiddenUser) Discriminator() string { return "hidden_user" }
func (MessageOriginHiddenUser) messageOrigin()        {}
func (o MessageOriginHiddenUser) OriginDate() int64   { return o.Date }

// MessageOriginChat: the message was originally sent on behalf of a chat to a group chat.
type MessageOriginChat struct {
	Date            int64   `json:"date"`
	SenderChat      Chat    `json:"sender_chat"`
	AuthorSignature *string `json:"author_signature,omitempty"`
}

func (MessageOriginChat) Discriminator() string { return "chat" }
func (MessageOriginChat) messageOrigin()        {}
func (o MessageOriginChat) OriginDate() int64   { return o.Date }

// MessageOriginChannel: the message was originally sent to a channel chat.
type MessageOriginChannel struct {
	Date            int64   `json:"date"`
	Chat            Chat    `json:"chat"`
	MessageID       int     `json:"message_id"`
	AuthorSignature *string `json:"author_signature,omitempty"`
}

func (MessageOriginChannel) Discriminator() string { return "channel" }
func (MessageOriginChannel) messageOrigin()        {}
func (o MessageOriginChannel) OriginDate() int64   { return o.Date }

// MessageOriginUnknown holds an origin type this package does not know yet.
type MessageOriginUnknown struct {
	Type string
	Raw  map[string]any
}

func (o MessageOriginUnknown) Discriminator() string     { return o.Type }
func (o MessageOriginUnknown) RawFields() map[string]any { return o.Raw }
func (MessageOriginUnknown) messageOrigin()              {}

// OriginDate returns the date field if present.
func (o MessageOriginUnknown) OriginDate() int64 {
	d, _ := o.Raw["date"].(int64)
	return d
}
