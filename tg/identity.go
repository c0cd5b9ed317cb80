package tg

import "github.com/prilive-com/tgtypes/schema"

// BotCommand represents a bot command shown in the menu.
type BotCommand struct {
	Command     string `json:"command"`     // 1-32 chars, lowercase a-z, 0-9, _
	Description string `json:"description"` // 1-256 chars
}

// BotName represents the bot's display name.
type BotName struct {
	Name string `json:"name"` // 0-64 chars
}

// BotDescription represents the bot's long description (shown in empty chat).
type BotDescription struct {
	Description string `json:"description"` // 0-512 chars
}

// BotShortDescription represents the bot's short description (shown in profile/search).
type BotShortDescription struct {
	ShortDescription string `json:"short_description"` // 0-120 chars
}

// WebhookInfo describes the current status of a webhook.
type WebhookInfo struct {
	URL                          string   `json:"url"`
	HasCustomCertificate         bool     `json:"has_custom_certificate"`
	PendingUpdateCount           int      `json:"pending_update_count"`
	IPAddress                    *string  `json:"ip_address,omitempty"`
	LastErrorDate                *int64   `json:"last_error_date,omitempty"`
	LastErrorMessage             *string  `json:"last_error_message,omitempty"`
	LastSynchronizationErrorDate *int64   `json:"last_synchronization_error_date,omitempty"`
	MaxConnections               *int     `json:"max_connections,omitempty"`
	AllowedUpdates               []string `json:"allowed_updates,omitempty"`
}

// ResponseParameters contains information about why a request was unsuccessful.
type ResponseParameters struct {
	MigrateToChatID *int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      *int   `json:"retry_after,omitempty"`
}

// --- BotCommandScope Union ---

// BotCommandScope defines which users see specific commands.
type BotCommandScope interface {
	schema.Variant
	botCommandScopeTag()
}

var botCommandScopes = schema.NewFamily[BotCommandScope]("BotCommandScope", "type",
	func(value string, raw map[string]any) BotCommandScope {
		return BotCommandScopeUnknown{Type: value, Raw: raw}
	},
	BotCommandScopeDefault{}, BotCommandScopeAllPrivateChats{}, BotCommandScopeAllGroupChats{},
	BotCommandScopeAllChatAdministrators{}, BotCommandScopeChat{}, BotCommandScopeChatAdministrators{},
	BotCommandScopeChatMember{},
)

// BotCommandScopeDefault is the default scope for all users.
type BotCommandScopeDefault struct{}

func (BotCommandScopeDefault) botCommandScopeTag()   {}
func (BotCommandScopeDefault) Discriminator() string { return "default" }

// BotCommandScopeAllPrivateChats covers all private chats.
type BotCommandScopeAllPrivateChats struct{}

func (BotCommandScopeAllPrivateChats) botCommandScopeTag()   {}
func (BotCommandScopeAllPrivateChats) Discriminator() string { return "all_private_chats" }

// BotCommandScopeAllGroupChats covers all group and supergroup chats.
type BotCommandScopeAllGroupChats struct{}

func (BotCommandScopeAllGroupChats) botCommandScopeTag()   {}
func (BotCommandScopeAllGroupChats) Discriminator() string { return "all_group_chats" }

// BotCommandScopeAllChatAdministrators covers all group and supergroup
// chat administrators.
type BotCommandScopeAllChatAdministrators struct{}

func (BotCommandScopeAllChatAdministrators) botCommandScopeTag()   {}
func (BotCommandScopeAllChatAdministrators) Discriminator() string { return "all_chat_administrators" }

// BotCommandScopeChat covers a specific chat.
type BotCommandScopeChat struct {
	ChatID ChatID `json:"chat_id"`
}

func (BotCommandScopeChat) botCommandScopeTag()   {}
func (BotCommandScopeChat) Discriminator() string { return "chat" }

// BotCommandScopeChatAdministrators covers all administrators of a specific chat.
type BotCommandScopeChatAdministrators struct {
	ChatID ChatID `json:"chat_id"`
}

func (BotCommandScopeChatAdministrators) botCommandScopeTag()   {}
func (BotCommandScopeChatAdministrators) Discriminator() string { return "chat_administrators" }

// BotCommandScopeChatMember covers a specific member of a chat.
type BotCommandScopeChatMember struct {
	ChatID ChatID `json:"chat_id"`
	UserID int64  `json:"user_id"`
}

func (BotCommandScopeChatMember) botCommandScopeTag()   {}
func (BotCommandScopeChatMember) Discriminator() string { return "chat_member" }

// BotCommandScopeUnknown is a fallback for future scope types.
type BotCommandScopeUnknown struct {
	Type string
	Raw  map[string]any
}

func (BotCommandScopeUnknown) botCommandScopeTag()         {}
func (s BotCommandScopeUnknown) Discriminator() string     { return s.Type }
func (s BotCommandScopeUnknown) RawFields() map[string]any { return s.Raw }

// --- MenuButton Union ---

// MenuButton describes the bot's menu button in a private chat.
type MenuButton interface {
	schema.Variant
	menuButtonTag()
}

var menuButtons = schema.NewFamily[MenuButton]("MenuButton", "type",
	func(value string, raw map[string]any) MenuButton {
		return MenuButtonUnknown{Type: value, Raw: raw}
	},
	MenuButtonCommands{}, MenuButtonWebApp{}, MenuButtonDefault{},
)

// MenuButtonCommands opens the bot's list of commands.
type MenuButtonCommands struct{}

func (MenuButtonCommands) menuButtonTag()        {}
func (MenuButtonCommands) Discriminator() string { return "commands" }

// MenuButtonWebApp launches a Web App.
type MenuButtonWebApp struct {
	Text   string     `json:"text"`
	WebApp WebAppInfo `json:"web_app"`
}

func (MenuButtonWebApp) menuButtonTag()        {}
func (MenuButtonWebApp) Discriminator() string { return "web_app" }

// MenuButtonDefault means no specific value for the menu button was set.
type MenuButtonDefault struct{}

func (MenuButtonDefault) menuButtonTag()        {}
func (MenuButtonDefault) Discriminator() string { return "default" }

// MenuButtonUnknown is a fallback for future menu button types.
type MenuButtonUnknown struct {
	Type string
	Raw  map[string]any
}

func (MenuButtonUnknown) menuButtonTag()              {}
func (b MenuButtonUnknown) Discriminator() string     { return b.Type }
func (b MenuButtonUnknown) RawFields() map[string]any { return b.Raw }
