package tg

// Update represents an incoming update from Telegram.
// At most one of the optional fields is set.
type Update struct {
	UpdateID                int                          `json:"update_id"`
	Message                 *Message                     `json:"message,omitempty"`
	EditedMessage           *Message                     `json:"edited_message,omitempty"`
	ChannelPost             *Message                     `json:"channel_post,omitempty"`
	EditedChannelPost       *Message                     `json:"edited_channel_post,omitempty"`
	BusinessConnection      *BusinessConnection          `json:"business_connection,omitempty"`
	BusinessMessage         *Message                     `json:"business_message,omitempty"`
	EditedBusinessMessage   *Message                     `json:"edited_business_message,omitempty"`
	DeletedBusinessMessages *BusinessMessagesDeleted     `json:"deleted_business_messages,omitempty"`
	MessageReaction         *MessageReactionUpdated      `json:"message_reaction,omitempty"`
	MessageReactionCount    *MessageReactionCountUpdated `json:"message_reaction_count,omitempty"`
	InlineQuery             *InlineQuery                 `json:"inline_query,omitempty"`
	ChosenInlineResult      *ChosenInlineResult          `json:"chosen_inline_result,omitempty"`
	CallbackQuery           *CallbackQuery               `json:"callback_query,omitempty"`
	ShippingQuery           *ShippingQuery               `json:"shipping_query,omitempty"`
	PreCheckoutQuery        *PreCheckoutQuery            `json:"pre_checkout_query,omitempty"`
	PurchasedPaidMedia      *PaidMediaPurchased          `json:"purchased_paid_media,omitempty"`
	Poll                    *Poll                        `json:"poll,omitempty"`
	PollAnswer              *PollAnswer                  `json:"poll_answer,omitempty"`
	MyChatMember            *ChatMemberUpdated           `json:"my_chat_member,omitempty"`
	ChatMember              *ChatMemberUpdated           `json:"chat_member,omitempty"`
	ChatJoinRequest         *ChatJoinRequest             `json:"chat_join_request,omitempty"`
	ChatBoost               *ChatBoostUpdated            `json:"chat_boost,omitempty"`
	RemovedChatBoost        *ChatBoostRemoved            `json:"removed_chat_boost,omitempty"`
}

// CallbackQuery represents an incoming callback query from an inline keyboard.
type CallbackQuery struct {
	ID              string                   `json:"id"`
	From            User                     `json:"from"`
	Message         MaybeInaccessibleMessage `json:"message,omitempty"`
	InlineMessageID *string                  `json:"inline_message_id,omitempty"`
	ChatInstance    string                   `json:"chat_instance"`
	Data            *string                  `json:"data,omitempty"`
	GameShortName   *string                  `json:"game_short_name,omitempty"`
}

// AccessibleMessage returns the originating message when it is still
// accessible to the bot.
func (c *CallbackQuery) AccessibleMessage() (*Message, bool) {
	if c == nil {
		return nil, false
	}
	switch m := c.Message.(type) {
	case Message:
		return &m, true
	case *Message:
		return m, m != nil
	}
	return nil, false
}

// MessageSig implements Editable.
func (c *CallbackQuery) MessageSig() (string, int64) {
	if c == nil {
		return "", 0
	}
	if c.InlineMessageID != nil && *c.InlineMessageID != "" {
		return *c.InlineMessageID, 0
	}
	switch m := c.Message.(type) {
	case Message:
		return m.MessageSig()
	case *Message:
		return m.MessageSig()
	case InaccessibleMessage:
		return m.MessageSig()
	}
	return "", 0
}

var _ Editable = (*CallbackQuery)(nil)

// PollAnswer represents an answer of a user in a non-anonymous poll.
type PollAnswer struct {
	PollID    string `json:"poll_id"`
	VoterChat *Chat  `json:"voter_chat,omitempty"`
	User      *User  `json:"user,omitempty"`
	OptionIDs []int  `json:"option_ids"`
}

// ChatMemberUpdated represents changes in the status of a chat member.
type ChatMemberUpdated struct {
	Chat                    Chat            `json:"chat"`
	From                    User            `json:"from"`
	Date                    int64           `json:"date"`
	OldChatMember           ChatMember      `json:"old_chat_member"`
	NewChatMember           ChatMember      `json:"new_chat_member"`
	InviteLink              *ChatInviteLink `json:"invite_link,omitempty"`
	ViaJoinRequest          bool            `json:"via_join_request,omitempty"`
	ViaChatFolderInviteLink bool            `json:"via_chat_folder_invite_link,omitempty"`
}

// Joined reports whether the update moved the user into the chat.
func (u *ChatMemberUpdated) Joined() bool {
	return u.OldChatMember != nil && u.NewChatMember != nil &&
		!InChat(u.OldChatMember) && InChat(u.NewChatMember)
}

// Left reports whether the update moved the user out of the chat.
func (u *ChatMemberUpdated) Left() bool {
	return u.OldChatMember != nil && u.NewChatMember != nil &&
		InChat(u.OldChatMember) && !InChat(u.NewChatMember)
}

// ChatInviteLink represents an invite link for a chat.
type ChatInviteLink struct {
	InviteLink              string  `json:"invite_link"`
	Creator                 User    `json:"creator"`
	CreatesJoinRequest      bool    `json:"creates_join_request"`
	IsPrimary               bool    `json:"is_primary"`
	IsRevoked               bool    `json:"is_revoked"`
	Name                    *string `json:"name,omitempty"`
	ExpireDate              *int64  `json:"expire_date,omitempty"`
	MemberLimit             *int    `json:"member_limit,omitempty"`
	PendingJoinRequestCount *int    `json:"pending_join_request_count,omitempty"`
	SubscriptionPeriod      *int    `json:"subscription_period,omitempty"`
	SubscriptionPrice       *int    `json:"subscription_price,omitempty"`
}

// ChatJoinRequest represents a join request sent to a chat.
type ChatJoinRequest struct {
	Chat       Chat            `json:"chat"`
	From       User            `json:"from"`
	UserChatID int64           `json:"user_chat_id"`
	Date       int64           `json:"date"`
	Bio        *string         `json:"bio,omitempty"`
	InviteLink *ChatInviteLink `json:"invite_link,omitempty"`
}
