package tg

import "github.com/prilive-com/tgtypes/schema"

// UserChatBoosts represents a list of boosts added to a chat by a user.
type UserChatBoosts struct {
	Boosts []ChatBoost `json:"boosts"`
}

// ChatBoost represents a boost added to a chat.
type ChatBoost struct {
	BoostID        string          `json:"boost_id"`
	AddDate        int64           `json:"add_date"`
	ExpirationDate int64           `json:"expiration_date"`
	Source         ChatBoostSource `json:"source"`
}

// ChatBoostUpdated represents a boost added to a chat or changed.
type ChatBoostUpdated struct {
	Chat  Chat      `json:"chat"`
	Boost ChatBoost `json:"boost"`
}

// ChatBoostRemoved represents a boost removed from a chat.
type ChatBoostRemoved struct {
	Chat       Chat            `json:"chat"`
	BoostID    string          `json:"boost_id"`
	RemoveDate int64           `json:"remove_date"`
	Source     ChatBoostSource `json:"source"`
}

// --- ChatBoostSource Union ---

// ChatBoostSource describes the source of a chat boost.
type ChatBoostSource interface {
	schema.Variant
	chatBoostSourceTag()
}

var chatBoostSources = schema.NewFamily[ChatBoostSource]("ChatBoostSource", "source",
	func(value string, raw map[string]any) ChatBoostSource {
		return ChatBoostSourceUnknown{Source: value, Raw: raw}
	},
	ChatBoostSourcePremium{}, ChatBoostSourceGiftCode{}, ChatBoostSourceGiveaway{},
)

// ChatBoostSourcePremium represents a boost from a Premium subscriber.
type ChatBoostSourcePremium struct {
	User User `json:"user"`
}

func (ChatBoostSourcePremium) chatBoostSourceTag()   {}
func (ChatBoostSourcePremium) Discriminator() string { return "premium" }

// ChatBoostSourceGiftCode represents a boost from a gift code.
type ChatBoostSourceGiftCode struct {
	User User `json:"user"`
}

func (ChatBoostSourceGiftCode) chatBoostSourceTag()   {}
func (ChatBoostSourceGiftCode) Discriminator() string { return "gift_code" }

// ChatBoostSourceGiveaway represents a boost from a giveaway.
type ChatBoostSourceGiveaway struct {
	GiveawayMessageID int   `json:"giveaway_message_id"`
	User              *User `json:"user,omitempty"`
	PrizeStarCount    *int  `json:"prize_star_count,omitempty"`
	IsUnclaimed       bool  `json:"is_unclaimed,omitempty"`
}

func (ChatBoostSourceGiveaway) chatBoostSourceTag()   {}
func (ChatBoostSourceGiveaway) Discriminator() string { return "giveaway" }

// ChatBoostSourceUnknown is a fallback for future boost source types.
type ChatBoostSourceUnknown struct {
	Source string
	Raw    map[string]any
}

func (ChatBoostSourceUnknown) chatBoostSourceTag()         {}
func (s ChatBoostSourceUnknown) Discriminator() string     { return s.Source }
func (s ChatBoostSourceUnknown) RawFields() map[string]any { return s.Raw }
