package tg

import "github.com/prilive-com/tgtypes/schema"

// ReactionType describes the type of a reaction.
// Concrete types: ReactionTypeEmoji, ReactionTypeCustomEmoji, ReactionTypePaid,
// and ReactionTypeUnknown for types added to the Bot API later.
type ReactionType interface {
	schema.Variant
	reactionType()
}

var reactionTypes = schema.NewFamily[ReactionType]("ReactionType", "type",
	func(value string, raw map[string]any) ReactionType {
		return ReactionTypeUnknown{Type: value, Raw: raw}
	},
	ReactionTypeEmoji{}, ReactionTypeCustomEmoji{}, ReactionTypePaid{},
)

// ReactionTypeEmoji is a reaction based on an emoji.
type ReactionTypeEmoji struct {
	Emoji string `json:"emoji"`
}

func (ReactionTypeEmoji) Discriminator() string { return "emoji" }
func (ReactionTypeEmoji) reactionType()         {}

// ReactionTypeCustomEmoji is a reaction based on a custom emoji.
type ReactionTypeCustomEmoji struct {
	CustomEmojiID string `json:"custom_emoji_id"`
}

func (ReactionTypeCustomEmoji) Discriminator() string { return "custom_emoji" }
func (ReactionTypeCustomEmoji) reactionType()         {}

// ReactionTypePaid is a paid reaction.
type ReactionTypePaid struct{}

func (ReactionTypePaid) Discriminator() string { return "paid" }
func (ReactionTypePaid) reactionType()         {}

// ReactionTypeUnknown holds a reaction type this package does not know yet.
type ReactionTypeUnknown struct {
	Type string
	Raw  map[string]any
}

func (r ReactionTypeUnknown) Discriminator() string     { return r.Type }
func (r ReactionTypeUnknown) RawFields() map[string]any { return r.Raw }
func (ReactionTypeUnknown) reactionType()               {}

// Emoji returns a reaction for a regular emoji.
func Emoji(emoji string) ReactionType {
	return ReactionTypeEmoji{Emoji: emoji}
}

// ReactionCount represents a reaction added to a message along with the number of times it was added.
type ReactionCount struct {
	Type       ReactionType `json:"type"`
	TotalCount int          `json:"total_count"`
}

// MessageReactionUpdated represents a change of a reaction on a message performed by a user.
type MessageReactionUpdated struct {
	Chat        Chat           `json:"chat"`
	MessageID   int            `json:"message_id"`
	User        *User          `json:"user,omitempty"`
	ActorChat   *Chat          `json:"actor_chat,omitempty"`
	Date        int64          `json:"date"`
	OldReaction []ReactionType `json:"old_reaction"`
	NewReaction []ReactionType `json:"new_reaction"`
}

// MessageReactionCountUpdated represents reaction changes on a message with anonymous reactions.
type MessageReactionCountUpdated struct {
	Chat      Chat            `json:"chat"`
	MessageID int             `json:"message_id"`
	Date      int64           `json:"date"`
	Reactions []ReactionCount `json:"reactions"`
}
