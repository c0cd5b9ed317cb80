package tg

import (
	"iter"
	"strconv"
)

// InlineKeyboardMarkup represents an inline keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// InlineKeyboardButton represents a button in an inline keyboard.
// Exactly one of the optional fields must be set.
type InlineKeyboardButton struct {
	Text                         string                       `json:"text"`
	URL                          *string                      `json:"url,omitempty"`
	CallbackData                 *string                      `json:"callback_data,omitempty"`
	WebApp                       *WebAppInfo                  `json:"web_app,omitempty"`
	LoginURL                     *LoginURL                    `json:"login_url,omitempty"`
	SwitchInlineQuery            *string                      `json:"switch_inline_query,omitempty"`
	SwitchInlineQueryCurrentChat *string                      `json:"switch_inline_query_current_chat,omitempty"`
	SwitchInlineQueryChosenChat  *SwitchInlineQueryChosenChat `json:"switch_inline_query_chosen_chat,omitempty"`
	CopyText                     *CopyTextButton              `json:"copy_text,omitempty"`
	CallbackGame                 *CallbackGame                `json:"callback_game,omitempty"`
	Pay                          bool                         `json:"pay,omitempty"`
}

// WebAppInfo contains information about a Web App.
type WebAppInfo struct {
	URL string `json:"url"`
}

// LoginURL represents HTTP URL login button parameters.
type LoginURL struct {
	URL                string  `json:"url"`
	ForwardText        *string `json:"forward_text,omitempty"`
	BotUsername        *string `json:"bot_username,omitempty"`
	RequestWriteAccess bool    `json:"request_write_access,omitempty"`
}

// SwitchInlineQueryChosenChat represents inline query switch to chosen chat.
type SwitchInlineQueryChosenChat struct {
	Query             *string `json:"query,omitempty"`
	AllowUserChats    bool    `json:"allow_user_chats,omitempty"`
	AllowBotChats     bool    `json:"allow_bot_chats,omitempty"`
	AllowGroupChats   bool    `json:"allow_group_chats,omitempty"`
	AllowChannelChats bool    `json:"allow_channel_chats,omitempty"`
}

// CopyTextButton represents a button that copies text to the clipboard.
type CopyTextButton struct {
	Text string `json:"text"`
}

// ReplyKeyboardMarkup represents a custom keyboard with reply options.
type ReplyKeyboardMarkup struct {
	Keyboard              [][]KeyboardButton `json:"keyboard"`
	IsPersistent          bool               `json:"is_persistent,omitempty"`
	ResizeKeyboard        bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool               `json:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder *string            `json:"input_field_placeholder,omitempty"`
	Selective             bool               `json:"selective,omitempty"`
}

// KeyboardButton represents one button of the reply keyboard.
// At most one of the optional fields may be set.
type KeyboardButton struct {
	Text            string                      `json:"text"`
	RequestUsers    *KeyboardButtonRequestUsers `json:"request_users,omitempty"`
	RequestChat     *KeyboardButtonRequestChat  `json:"request_chat,omitempty"`
	RequestContact  bool                        `json:"request_contact,omitempty"`
	RequestLocation bool                        `json:"request_location,omitempty"`
	RequestPoll     *KeyboardButtonPollType     `json:"request_poll,omitempty"`
	WebApp          *WebAppInfo                 `json:"web_app,omitempty"`
}

// KeyboardButtonRequestUsers defines the criteria used to request users.
type KeyboardButtonRequestUsers struct {
	RequestID       int   `json:"request_id"`
	UserIsBot       *bool `json:"user_is_bot,omitempty"`
	UserIsPremium   *bool `json:"user_is_premium,omitempty"`
	MaxQuantity     *int  `json:"max_quantity,omitempty"`
	RequestName     *bool `json:"request_name,omitempty"`
	RequestUsername *bool `json:"request_username,omitempty"`
	RequestPhoto    *bool `json:"request_photo,omitempty"`
}

// KeyboardButtonRequestChat defines the criteria used to request a chat.
type KeyboardButtonRequestChat struct {
	RequestID               int                      `json:"request_id"`
	ChatIsChannel           bool                     `json:"chat_is_channel"`
	ChatIsForum             *bool                    `json:"chat_is_forum,omitempty"`
	ChatHasUsername         *bool                    `json:"chat_has_username,omitempty"`
	ChatIsCreated           *bool                    `json:"chat_is_created,omitempty"`
	UserAdministratorRights *ChatAdministratorRights `json:"user_administrator_rights,omitempty"`
	BotAdministratorRights  *ChatAdministratorRights `json:"bot_administrator_rights,omitempty"`
	BotIsMember             *bool                    `json:"bot_is_member,omitempty"`
	RequestTitle            *bool                    `json:"request_title,omitempty"`
	RequestUsername         *bool                    `json:"request_username,omitempty"`
	RequestPhoto            *bool                    `json:"request_photo,omitempty"`
}

// KeyboardButtonPollType represents the type of a poll allowed to be
// created when the button is pressed.
type KeyboardButtonPollType struct {
	Type *string `json:"type,omitempty"` // "quiz", "regular" or unset for any
}

// ReplyKeyboardRemove asks clients to remove the custom keyboard.
type ReplyKeyboardRemove struct {
	RemoveKeyboard bool `json:"remove_keyboard"` // Always true
	Selective      bool `json:"selective,omitempty"`
}

// ForceReply asks clients to display a reply interface to the user.
type ForceReply struct {
	ForceReply            bool    `json:"force_reply"` // Always true
	InputFieldPlaceholder *string `json:"input_field_placeholder,omitempty"`
	Selective             bool    `json:"selective,omitempty"`
}

// RemoveKeyboard returns a ReplyKeyboardRemove with the mandatory flag set.
func RemoveKeyboard() ReplyKeyboardRemove {
	return ReplyKeyboardRemove{RemoveKeyboard: true}
}

// NewForceReply returns a ForceReply with the mandatory flag set.
func NewForceReply(placeholder string) ForceReply {
	f := ForceReply{ForceReply: true}
	if placeholder != "" {
		f.InputFieldPlaceholder = &placeholder
	}
	return f
}

// ReplyKeyboard creates a resized reply keyboard from rows of button labels.
func ReplyKeyboard(rows ...[]string) *ReplyKeyboardMarkup {
	kb := make([][]KeyboardButton, 0, len(rows))
	for _, labels := range rows {
		row := make([]KeyboardButton, len(labels))
		for i, l := range labels {
			row[i] = KeyboardButton{Text: l}
		}
		kb = append(kb, row)
	}
	return &ReplyKeyboardMarkup{Keyboard: kb, ResizeKeyboard: true}
}

// Button constructors

// Btn creates a callback button (most common type).
func Btn(text, callbackData string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackData: &callbackData}
}

// BtnURL creates a URL button.
func BtnURL(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, URL: &url}
}

// BtnWebApp creates a Web App button.
func BtnWebApp(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, WebApp: &WebAppInfo{URL: url}}
}

// BtnSwitch creates an inline query switch button.
func BtnSwitch(text, query string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, SwitchInlineQuery: &query}
}

// BtnSwitchCurrent creates an inline query switch button for current chat.
func BtnSwitchCurrent(text, query string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, SwitchInlineQueryCurrentChat: &query}
}

// BtnLogin creates a login URL button.
func BtnLogin(text string, loginURL LoginURL) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, LoginURL: &loginURL}
}

// BtnCopy creates a button that copies text to the clipboard.
func BtnCopy(text, copied string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CopyText: &CopyTextButton{Text: copied}}
}

// BtnGame creates a button that launches the bot's game (must be first in first row).
func BtnGame(text string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackGame: &CallbackGame{}}
}

// BtnPay creates a Pay button (must be first in first row).
func BtnPay(text string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, Pay: true}
}

// Keyboard builds inline keyboards fluently.
type Keyboard struct {
	rows [][]InlineKeyboardButton
}

// NewKeyboard creates a new keyboard builder.
func NewKeyboard() *Keyboard {
	return &Keyboard{rows: make([][]InlineKeyboardButton, 0, 4)}
}

// Row adds a row of buttons.
func (k *Keyboard) Row(buttons ...InlineKeyboardButton) *Keyboard {
	if len(buttons) > 0 {
		k.rows = append(k.rows, buttons)
	}
	return k
}

// Add appends buttons to the last row, or creates a new row if empty.
func (k *Keyboard) Add(buttons ...InlineKeyboardButton) *Keyboard {
	if len(k.rows) == 0 {
		k.rows = append(k.rows, buttons)
	} else {
		lastIdx := len(k.rows) - 1
		k.rows[lastIdx] = append(k.rows[lastIdx], buttons...)
	}
	return k
}

// Build returns the completed InlineKeyboardMarkup.
func (k *Keyboard) Build() *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: k.rows}
}

// Inline returns the completed InlineKeyboardMarkup (alias for Build).
func (k *Keyboard) Inline() *InlineKeyboardMarkup {
	return k.Build()
}

// Empty returns true if keyboard has no buttons.
func (k *Keyboard) Empty() bool {
	return len(k.rows) == 0
}

// RowCount returns the number of rows.
func (k *Keyboard) RowCount() int {
	return len(k.rows)
}

// Rows returns an iterator over keyboard rows.
func (k *Keyboard) Rows() iter.Seq[[]InlineKeyboardButton] {
	return func(yield func([]InlineKeyboardButton) bool) {
		for _, row := range k.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// AllButtons returns an iterator over all buttons.
func (k *Keyboard) AllButtons() iter.Seq[InlineKeyboardButton] {
	return func(yield func(InlineKeyboardButton) bool) {
		for _, row := range k.rows {
			for _, btn := range row {
				if !yield(btn) {
					return
				}
			}
		}
	}
}

// MarshalJSON implements json.Marshaler using the schema codec.
func (k *Keyboard) MarshalJSON() ([]byte, error) {
	return Marshal(k.Build())
}

// Quick keyboard builders

// InlineKeyboard creates a keyboard from rows of buttons.
func InlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	if rows == nil {
		rows = [][]InlineKeyboardButton{}
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// Row creates a row of buttons (for use with InlineKeyboard).
func Row(buttons ...InlineKeyboardButton) []InlineKeyboardButton {
	return buttons
}

// Pagination creates a pagination keyboard.
func Pagination(current, total int, prefix string) *InlineKeyboardMarkup {
	k := NewKeyboard()
	var buttons []InlineKeyboardButton

	if current > 1 {
		buttons = append(buttons, Btn("« Prev", prefix+":"+strconv.Itoa(current-1)))
	}

	buttons = append(buttons, Btn(strconv.Itoa(current)+"/"+strconv.Itoa(total), prefix+":current"))

	if current < total {
		buttons = append(buttons, Btn("Next »", prefix+":"+strconv.Itoa(current+1)))
	}

	return k.Row(buttons...).Build()
}

// Confirm creates a Yes/No confirmation keyboard.
func Confirm(yesData, noData string) *InlineKeyboardMarkup {
	return NewKeyboard().
		Row(Btn("Yes", yesData), Btn("No", noData)).
		Build()
}

// ConfirmCustom creates a confirmation keyboard with custom labels.
func ConfirmCustom(yesText, yesData, noText, noData string) *InlineKeyboardMarkup {
	return NewKeyboard().
		Row(Btn(yesText, yesData), Btn(noText, noData)).
		Build()
}

// Grid creates a keyboard with buttons arranged in a grid.
func Grid[T any](items []T, columns int, btnFunc func(T) InlineKeyboardButton) *InlineKeyboardMarkup {
	k := NewKeyboard()
	var row []InlineKeyboardButton

	for i, item := range items {
		row = append(row, btnFunc(item))
		if (i+1)%columns == 0 {
			k.Row(row...)
			row = nil
		}
	}

	if len(row) > 0 {
		k.Row(row...)
	}

	return k.Build()
}
