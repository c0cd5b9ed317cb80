package tg

// Service message payloads. Each is carried by exactly one optional field
// of Message.

// MessageAutoDeleteTimerChanged: auto-delete timer settings changed in the chat.
type MessageAutoDeleteTimerChanged struct {
	MessageAutoDeleteTime int `json:"message_auto_delete_time"`
}

// ProximityAlertTriggered: a user in the chat triggered another user's proximity alert.
type ProximityAlertTriggered struct {
	Traveler User `json:"traveler"`
	Watcher  User `json:"watcher"`
	Distance int  `json:"distance"`
}

// ChatBoostAdded: a user boosted the chat.
type ChatBoostAdded struct {
	BoostCount int `json:"boost_count"`
}

// WriteAccessAllowed: a user allowed the bot to write messages.
type WriteAccessAllowed struct {
	FromRequest        bool    `json:"from_request,omitempty"`
	WebAppName         *string `json:"web_app_name,omitempty"`
	FromAttachmentMenu bool    `json:"from_attachment_menu,omitempty"`
}

// SharedUser contains information about a user shared with the bot.
type SharedUser struct {
	UserID    int64       `json:"user_id"`
	FirstName *string     `json:"first_name,omitempty"`
	LastName  *string     `json:"last_name,omitempty"`
	Username  *string     `json:"username,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
}

// UsersShared: users were shared with the bot using a KeyboardButtonRequestUsers button.
type UsersShared struct {
	RequestID int          `json:"request_id"`
	Users     []SharedUser `json:"users"`
}

// ChatShared: a chat was shared with the bot using a KeyboardButtonRequestChat button.
type ChatShared struct {
	RequestID int         `json:"request_id"`
	ChatID    int64       `json:"chat_id"`
	Title     *string     `json:"title,omitempty"`
	Username  *string     `json:"username,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
}

// VideoChatScheduled: a video chat was scheduled.
type VideoChatScheduled struct {
	StartDate int64 `json:"start_date"`
}

// VideoChatStarted: a video chat started. Carries no information.
type VideoChatStarted struct{}

// VideoChatEnded: a video chat ended.
type VideoChatEnded struct {
	Duration int `json:"duration"`
}

// VideoChatParticipantsInvited: new members were invited to a video chat.
type VideoChatParticipantsInvited struct {
	Users []User `json:"users"`
}

// PaidMessagePriceChanged: the price for paid messages in the chat changed.
type PaidMessagePriceChanged struct {
	PaidMessageStarCount int `json:"paid_message_star_count"`
}

// GiveawayCreated: a scheduled giveaway was created.
type GiveawayCreated struct {
	PrizeStarCount *int `json:"prize_star_count,omitempty"`
}

// Giveaway represents a message about a scheduled giveaway.
type Giveaway struct {
	Chats                         []Chat   `json:"chats"`
	WinnersSelectionDate          int64    `json:"winners_selection_date"`
	WinnerCount                   int      `json:"winner_count"`
	OnlyNewMembers                bool     `json:"only_new_members,omitempty"`
	HasPublicWinners              bool     `json:"has_public_winners,omitempty"`
	PrizeDescription              *string  `json:"prize_description,omitempty"`
	CountryCodes                  []string `json:"country_codes,omitempty"`
	PrizeStarCount                *int     `json:"prize_star_count,omitempty"`
	PremiumSubscriptionMonthCount *int     `json:"premium_subscription_month_count,omitempty"`
}

// GiveawayWinners represents a message about the completion of a giveaway with public winners.
type GiveawayWinners struct {
	Chat                          Chat    `json:"chat"`
	GiveawayMessageID             int     `json:"giveaway_message_id"`
	WinnersSelectionDate          int64   `json:"winners_selection_date"`
	WinnerCount                   int     `json:"winner_count"`
	Winners                       []User  `json:"winners"`
	AdditionalChatCount           *int    `json:"additional_chat_count,omitempty"`
	PrizeStarCount                *int    `json:"prize_star_count,omitempty"`
	PremiumSubscriptionMonthCount *int    `json:"premium_subscription_month_count,omitempty"`
	UnclaimedPrizeCount           *int    `json:"unclaimed_prize_count,omitempty"`
	OnlyNewMembers                bool    `json:"only_new_members,omitempty"`
	WasRefunded                   bool    `json:"was_refunded,omitempty"`
	PrizeDescription              *string `json:"prize_description,omitempty"`
}

// GiveawayCompleted: a giveaway without public winners was completed.
type GiveawayCompleted struct {
	WinnerCount         int      `json:"winner_count"`
	UnclaimedPrizeCount *int     `json:"unclaimed_prize_count,omitempty"`
	GiveawayMessage     *Message `json:"giveaway_message,omitempty"`
	IsStarGiveaway      bool     `json:"is_star_giveaway,omitempty"`
}
