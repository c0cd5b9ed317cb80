package tg

import (
	"fmt"
	"strconv"

	"github.com/prilive-com/tgtypes/schema"
)

// ChatID represents a Telegram chat identifier.
// Valid types: int64 (numeric ID) or string (channel username like "@channelusername")
type ChatID = any

// Editable represents anything that can be edited (message, callback, stored reference).
// Implement this interface to edit messages stored in your database.
type Editable interface {
	// MessageSig returns message identifier and chat ID.
	// For inline messages: return (inline_message_id, 0)
	// For regular messages: return (message_id as string, chat_id)
	MessageSig() (messageID string, chatID int64)
}

// Message represents a Telegram message.
//
// Optional fields are pointers, slices or interfaces; nil means the field
// was not sent. Flags that Telegram only ever sends as true are plain bools.
type Message struct {
	MessageID               int                            `json:"message_id"`
	MessageThreadID         *int                           `json:"message_thread_id,omitempty"`
	From                    *User                          `json:"from,omitempty"`
	SenderChat              *Chat                          `json:"sender_chat,omitempty"`
	SenderBoostCount        *int                           `json:"sender_boost_count,omitempty"`
	SenderBusinessBot       *User                          `json:"sender_business_bot,omitempty"`
	Date                    int64                          `json:"date"`
	BusinessConnectionID    *string                        `json:"business_connection_id,omitempty"`
	Chat                    *Chat                          `json:"chat"`
	ForwardOrigin           MessageOrigin                  `json:"forward_origin,omitempty"`
	IsTopicMessage          bool                           `json:"is_topic_message,omitempty"`
	IsAutomaticForward      bool                           `json:"is_automatic_forward,omitempty"`
	ReplyToMessage          *Message                       `json:"reply_to_message,omitempty"`
	ExternalReply           *ExternalReplyInfo             `json:"external_reply,omitempty"`
	Quote                   *TextQuote                     `json:"quote,omitempty"`
	ReplyToStory            *Story                         `json:"reply_to_story,omitempty"`
	ViaBot                  *User                          `json:"via_bot,omitempty"`
	EditDate                *int64                         `json:"edit_date,omitempty"`
	HasProtectedContent     bool                           `json:"has_protected_content,omitempty"`
	IsFromOffline           bool                           `json:"is_from_offline,omitempty"`
	IsPaidPost              bool                           `json:"is_paid_post,omitempty"`
	MediaGroupID            *string                        `json:"media_group_id,omitempty"`
	AuthorSignature         *string                        `json:"author_signature,omitempty"`
	PaidStarCount           *int                           `json:"paid_star_count,omitempty"`
	Text                    *string                        `json:"text,omitempty"`
	Entities                []MessageEntity                `json:"entities,omitempty"`
	LinkPreviewOptions      *LinkPreviewOptions            `json:"link_preview_options,omitempty"`
	EffectID                *string                        `json:"effect_id,omitempty"`
	Animation               *Animation                     `json:"animation,omitempty"`
	Audio                   *Audio                         `json:"audio,omitempty"`
	Document                *Document                      `json:"document,omitempty"`
	PaidMedia               *PaidMediaInfo                 `json:"paid_media,omitempty"`
	Photo                   []PhotoSize                    `json:"photo,omitempty"`
	Sticker                 *Sticker                       `json:"sticker,omitempty"`
	Story                   *Story                         `json:"story,omitempty"`
	Video                   *Video                         `json:"video,omitempty"`
	VideoNote               *VideoNote                     `json:"video_note,omitempty"`
	Voice                   *Voice                         `json:"voice,omitempty"`
	Caption                 *string                        `json:"caption,omitempty"`
	CaptionEntities         []MessageEntity                `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia   bool                           `json:"show_caption_above_media,omitempty"`
	HasMediaSpoiler         bool                           `json:"has_media_spoiler,omitempty"`
	Checklist               *Checklist                     `json:"checklist,omitempty"`
	Contact                 *Contact                       `json:"contact,omitempty"`
	Dice                    *Dice                          `json:"dice,omitempty"`
	Game                    *Game                          `json:"game,omitempty"`
	Poll                    *Poll                          `json:"poll,omitempty"`
	Venue                   *Venue                         `json:"venue,omitempty"`
	Location                *Location                      `json:"location,omitempty"`
	NewChatMembers          []User                         `json:"new_chat_members,omitempty"`
	LeftChatMember          *User                          `json:"left_chat_member,omitempty"`
	NewChatTitle            *string                        `json:"new_chat_title,omitempty"`
	NewChatPhoto            []PhotoSize                    `json:"new_chat_photo,omitempty"`
	DeleteChatPhoto         bool                           `json:"delete_chat_photo,omitempty"`
	GroupChatCreated        bool                           `json:"group_chat_created,omitempty"`
	SupergroupChatCreated   bool                           `json:"supergroup_chat_created,omitempty"`
	ChannelChatCreated      bool                           `json:"channel_chat_created,omitempty"`
	MessageAutoDeleteTimer  *MessageAutoDeleteTimerChanged `json:"message_auto_delete_timer_changed,omitempty"`
	MigrateToChatID         *int64                         `json:"migrate_to_chat_id,omitempty"`
	MigrateFromChatID       *int64                         `json:"migrate_from_chat_id,omitempty"`
	PinnedMessage           MaybeInaccessibleMessage       `json:"pinned_message,omitempty"`
	Invoice                 *Invoice                       `json:"invoice,omitempty"`
	SuccessfulPayment       *SuccessfulPayment             `json:"successful_payment,omitempty"`
	RefundedPayment         *RefundedPayment               `json:"refunded_payment,omitempty"`
	UsersShared             *UsersShared                   `json:"users_shared,omitempty"`
	ChatShared              *ChatShared                    `json:"chat_shared,omitempty"`
	Gift                    *GiftInfo                      `json:"gift,omitempty"`
	UniqueGift              *UniqueGiftInfo                `json:"unique_gift,omitempty"`
	ConnectedWebsite        *string                        `json:"connected_website,omitempty"`
	WriteAccessAllowed      *WriteAccessAllowed            `json:"write_access_allowed,omitempty"`
	PassportData            *PassportData                  `json:"passport_data,omitempty"`
	ProximityAlertTriggered *ProximityAlertTriggered       `json:"proximity_alert_triggered,omitempty"`
	BoostAdded              *ChatBoostAdded                `json:"boost_added,omitempty"`
	ChatBackgroundSet       *ChatBackground                `json:"chat_background_set,omitempty"`
	ChecklistTasksDone      *ChecklistTasksDone            `json:"checklist_tasks_done,omitempty"`
	ChecklistTasksAdded     *ChecklistTasksAdded           `json:"checklist_tasks_added,omitempty"`
	ForumTopicCreated       *ForumTopicCreated             `json:"forum_topic_created,omitempty"`
	ForumTopicEdited        *ForumTopicEdited              `json:"forum_topic_edited,omitempty"`
	ForumTopicClosed        *ForumTopicClosed              `json:"forum_topic_closed,omitempty"`
	ForumTopicReopened      *ForumTopicReopened            `json:"forum_topic_reopened,omitempty"`
	GeneralForumTopicHidden *GeneralForumTopicHidden       `json:"general_forum_topic_hidden,omitempty"`
	GeneralTopicUnhidden    *GeneralForumTopicUnhidden     `json:"general_forum_topic_unhidden,omitempty"`
	GiveawayCreated         *GiveawayCreated               `json:"giveaway_created,omitempty"`
	Giveaway                *Giveaway                      `json:"giveaway,omitempty"`
	GiveawayWinners         *GiveawayWinners               `json:"giveaway_winners,omitempty"`
	GiveawayCompleted       *GiveawayCompleted             `json:"giveaway_completed,omitempty"`
	PaidMessagePriceChanged *PaidMessagePriceChanged       `json:"paid_message_price_changed,omitempty"`
	VideoChatScheduled      *VideoChatScheduled            `json:"video_chat_scheduled,omitempty"`
	VideoChatStarted        *VideoChatStarted              `json:"video_chat_started,omitempty"`
	VideoChatEnded          *VideoChatEnded                `json:"video_chat_ended,omitempty"`
	VideoChatParticipants   *VideoChatParticipantsInvited  `json:"video_chat_participants_invited,omitempty"`
	WebAppData              *WebAppData                    `json:"web_app_data,omitempty"`
	ReplyMarkup             *InlineKeyboardMarkup          `json:"reply_markup,omitempty"`
}

func (Message) Discriminator() string     { return "message" }
func (Message) maybeInaccessibleMessage() {}

// MessageSig implements Editable.
func (m *Message) MessageSig() (string, int64) {
	if m == nil {
		return "", 0
	}
	var chatID int64
	if m.Chat != nil {
		chatID = m.Chat.ID
	}
	return strconv.Itoa(m.MessageID), chatID
}

var _ Editable = (*Message)(nil)

// InaccessibleMessage describes a message that was deleted or is otherwise
// inaccessible to the bot. Telegram sends it with date 0.
type InaccessibleMessage struct {
	Chat      Chat  `json:"chat"`
	MessageID int   `json:"message_id"`
	Date      int64 `json:"date"`
}

func (InaccessibleMessage) Discriminator() string     { return "inaccessible" }
func (InaccessibleMessage) maybeInaccessibleMessage() {}

// MessageSig implements Editable.
func (m InaccessibleMessage) MessageSig() (string, int64) {
	return strconv.Itoa(m.MessageID), m.Chat.ID
}

// MaybeInaccessibleMessage is either a Message or an InaccessibleMessage.
// The two are told apart by the date field, which is 0 for inaccessible
// messages.
type MaybeInaccessibleMessage interface {
	schema.Variant
	maybeInaccessibleMessage()
}

var maybeInaccessibleMessages = schema.NewShapeFamily[MaybeInaccessibleMessage]("MaybeInaccessibleMessage",
	func(raw map[string]any) string {
		if d, ok := raw["date"]; ok && fmt.Sprint(d) == "0" {
			return "inaccessible"
		}
		return "message"
	},
	nil,
	Message{}, InaccessibleMessage{},
)

// User represents a Telegram user or bot.
type User struct {
	ID                      int64   `json:"id"`
	IsBot                   bool    `json:"is_bot"`
	FirstName               string  `json:"first_name"`
	LastName                *string `json:"last_name,omitempty"`
	Username                *string `json:"username,omitempty"`
	LanguageCode            *string `json:"language_code,omitempty"`
	IsPremium               bool    `json:"is_premium,omitempty"`
	AddedToAttachmentMenu   bool    `json:"added_to_attachment_menu,omitempty"`
	CanJoinGroups           *bool   `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages *bool   `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   *bool   `json:"supports_inline_queries,omitempty"`
	CanConnectToBusiness    *bool   `json:"can_connect_to_business,omitempty"`
	HasMainWebApp           *bool   `json:"has_main_web_app,omitempty"`
}

// Chat represents a Telegram chat.
type Chat struct {
	ID        int64    `json:"id"`
	Type      ChatType `json:"type"`
	Title     *string  `json:"title,omitempty"`
	Username  *string  `json:"username,omitempty"`
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
	IsForum   bool     `json:"is_forum,omitempty"`
}

// ChatPhoto represents a chat photo.
type ChatPhoto struct {
	SmallFileID       string `json:"small_file_id"`
	SmallFileUniqueID string `json:"small_file_unique_id"`
	BigFileID         string `json:"big_file_id"`
	BigFileUniqueID   string `json:"big_file_unique_id"`
}

// MessageEntity represents a special entity in a text message.
type MessageEntity struct {
	Type          string  `json:"type"`
	Offset        int     `json:"offset"`
	Length        int     `json:"length"`
	URL           *string `json:"url,omitempty"`
	User          *User   `json:"user,omitempty"`
	Language      *string `json:"language,omitempty"`
	CustomEmojiID *string `json:"custom_emoji_id,omitempty"`
}

// TextQuote contains information about the quoted part of a message.
type TextQuote struct {
	Text     string          `json:"text"`
	Entities []MessageEntity `json:"entities,omitempty"`
	Position int             `json:"position"`
	IsManual bool            `json:"is_manual,omitempty"`
}

// ExternalReplyInfo describes a message that is being replied to, which may
// come from another chat or forum topic.
type ExternalReplyInfo struct {
	Origin             MessageOrigin       `json:"origin"`
	Chat               *Chat               `json:"chat,omitempty"`
	MessageID          *int                `json:"message_id,omitempty"`
	LinkPreviewOptions *LinkPreviewOptions `json:"link_preview_options,omitempty"`
	Animation          *Animation          `json:"animation,omitempty"`
	Audio              *Audio              `json:"audio,omitempty"`
	Document           *Document           `json:"document,omitempty"`
	PaidMedia          *PaidMediaInfo      `json:"paid_media,omitempty"`
	Photo              []PhotoSize         `json:"photo,omitempty"`
	Sticker            *Sticker            `json:"sticker,omitempty"`
	Story              *Story              `json:"story,omitempty"`
	Video              *Video              `json:"video,omitempty"`
	VideoNote          *VideoNote          `json:"video_note,omitempty"`
	Voice              *Voice              `json:"voice,omitempty"`
	HasMediaSpoiler    bool                `json:"has_media_spoiler,omitempty"`
	Checklist          *Checklist          `json:"checklist,omitempty"`
	Contact            *Contact            `json:"contact,omitempty"`
	Dice               *Dice               `json:"dice,omitempty"`
	Game               *Game               `json:"game,omitempty"`
	Giveaway           *Giveaway           `json:"giveaway,omitempty"`
	GiveawayWinners    *GiveawayWinners    `json:"giveaway_winners,omitempty"`
	Invoice            *Invoice            `json:"invoice,omitempty"`
	Location           *Location           `json:"location,omitempty"`
	Poll               *Poll               `json:"poll,omitempty"`
	Venue              *Venue              `json:"venue,omitempty"`
}

// ReplyParameters describes the message to reply to when sending.
type ReplyParameters struct {
	MessageID                int             `json:"message_id"`
	ChatID                   ChatID          `json:"chat_id,omitempty"`
	AllowSendingWithoutReply *bool           `json:"allow_sending_without_reply,omitempty"`
	Quote                    *string         `json:"quote,omitempty"`
	QuoteParseMode           *ParseMode      `json:"quote_parse_mode,omitempty"`
	QuoteEntities            []MessageEntity `json:"quote_entities,omitempty"`
	QuotePosition            *int            `json:"quote_position,omitempty"`
	ChecklistTaskID          *int            `json:"checklist_task_id,omitempty"`
}

// LinkPreviewOptions describes the options used for link preview generation.
type LinkPreviewOptions struct {
	IsDisabled       *bool   `json:"is_disabled,omitempty"`
	URL              *string `json:"url,omitempty"`
	PreferSmallMedia *bool   `json:"prefer_small_media,omitempty"`
	PreferLargeMedia *bool   `json:"prefer_large_media,omitempty"`
	ShowAboveText    *bool   `json:"show_above_text,omitempty"`
}

// MessageID represents a message identifier (returned by copyMessage).
type MessageID struct {
	MessageID int `json:"message_id"`
}

// StoredMessage is a helper for implementing Editable with database-stored messages.
type StoredMessage struct {
	MsgID  int   `json:"message_id"`
	ChatID int64 `json:"chat_id"`
}

// MessageSig implements Editable.
func (m StoredMessage) MessageSig() (string, int64) {
	return strconv.Itoa(m.MsgID), m.ChatID
}

var _ Editable = StoredMessage{}

// InlineMessage represents an inline message reference.
type InlineMessage struct {
	InlineMessageID string `json:"inline_message_id"`
}

// MessageSig implements Editable for inline messages.
func (m InlineMessage) MessageSig() (string, int64) {
	return m.InlineMessageID, 0
}

var _ Editable = InlineMessage{}
