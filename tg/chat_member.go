package tg

import (
	"fmt"

	"github.com/prilive-com/tgtypes/schema"
)

// ChatMember represents a member of a chat.
// This is a sealed interface. The concrete types are:
//   - ChatMemberOwner
//   - ChatMemberAdministrator
//   - ChatMemberMember
//   - ChatMemberRestricted
//   - ChatMemberLeft
//   - ChatMemberBanned
//   - ChatMemberUnknown (statuses added to the Bot API later)
type ChatMember interface {
	schema.Variant

	// chatMember is a marker method to seal the interface.
	chatMember()

	// Status returns the member's status string.
	Status() string

	// GetUser returns the user information.
	GetUser() *User
}

var chatMembers = schema.NewFamily[ChatMember]("ChatMember", "status",
	func(value string, raw map[string]any) ChatMember {
		return ChatMemberUnknown{RawStatus: value, Raw: raw}
	},
	ChatMemberOwner{}, ChatMemberAdministrator{}, ChatMemberMember{},
	ChatMemberRestricted{}, ChatMemberLeft{}, ChatMemberBanned{},
)

// chatMemberBase contains fields common to all ChatMember types.
type chatMemberBase struct {
	User *User `json:"user"`
}

func (b chatMemberBase) GetUser() *User { return b.User }

// ChatMemberOwner represents a chat owner.
type ChatMemberOwner struct {
	chatMemberBase
	IsAnonymous bool    `json:"is_anonymous"`
	CustomTitle *string `json:"custom_title,omitempty"`
}

func (ChatMemberOwner) chatMember()             {}
func (ChatMemberOwner) Status() string          { return "creator" }
func (m ChatMemberOwner) Discriminator() string { return m.Status() }

// ChatMemberAdministrator represents a chat administrator.
type ChatMemberAdministrator struct {
	chatMemberBase
	CanBeEdited             bool    `json:"can_be_edited"`
	IsAnonymous             bool    `json:"is_anonymous"`
	CanManageChat           bool    `json:"can_manage_chat"`
	CanDeleteMessages       bool    `json:"can_delete_messages"`
	CanManageVideoChats     bool    `json:"can_manage_video_chats"`
	CanRestrictMembers      bool    `json:"can_restrict_members"`
	CanPromoteMembers       bool    `json:"can_promote_members"`
	CanChangeInfo           bool    `json:"can_change_info"`
	CanInviteUsers          bool    `json:"can_invite_users"`
	CanPostStories          *bool   `json:"can_post_stories,omitempty"`
	CanEditStories          *bool   `json:"can_edit_stories,omitempty"`
	CanDeleteStories        *bool   `json:"can_delete_stories,omitempty"`
	CanPostMessages         *bool   `json:"can_post_messages,omitempty"`
	CanEditMessages         *bool   `json:"can_edit_messages,omitempty"`
	CanPinMessages          *bool   `json:"can_pin_messages,omitempty"`
	CanManageTopics         *bool   `json:"can_manage_topics,omitempty"`
	CanManageDirectMessages *bool   `json:"can_manage_direct_messages,omitempty"`
	CustomTitle             *string `json:"custom_title,omitempty"`
}

func (ChatMemberAdministrator) chatMember()             {}
func (ChatMemberAdministrator) Status() string          { return "administrator" }
func (m ChatMemberAdministrator) Discriminator() string { return m.Status() }

// ChatMemberMember represents a regular chat member.
type ChatMemberMember struct {
	chatMemberBase
	UntilDate *int64 `json:"until_date,omitempty"`
}

func (ChatMemberMember) chatMember()             {}
func (ChatMemberMember) Status() string          { return "member" }
func (m ChatMemberMember) Discriminator() string { return m.Status() }

// ChatMemberRestricted represents a restricted user.
type ChatMemberRestricted struct {
	chatMemberBase
	IsMember              bool  `json:"is_member"`
	CanSendMessages       bool  `json:"can_send_messages"`
	CanSendAudios         bool  `json:"can_send_audios"`
	CanSendDocuments      bool  `json:"can_send_documents"`
	CanSendPhotos         bool  `json:"can_send_photos"`
	CanSendVideos         bool  `json:"can_send_videos"`
	CanSendVideoNotes     bool  `json:"can_send_video_notes"`
	CanSendVoiceNotes     bool  `json:"can_send_voice_notes"`
	CanSendPolls          bool  `json:"can_send_polls"`
	CanSendOtherMessages  bool  `json:"can_send_other_messages"`
	CanAddWebPagePreviews bool  `json:"can_add_web_page_previews"`
	CanChangeInfo         bool  `json:"can_change_info"`
	CanInviteUsers        bool  `json:"can_invite_users"`
	CanPinMessages        bool  `json:"can_pin_messages"`
	CanManageTopics       bool  `json:"can_manage_topics"`
	UntilDate             int64 `json:"until_date"`
}

func (ChatMemberRestricted) chatMember()             {}
func (ChatMemberRestricted) Status() string          { return "restricted" }
func (m ChatMemberRestricted) Discriminator() string { return m.Status() }

// ChatMemberLeft represents a user who left the chat.
type ChatMemberLeft struct {
	chatMemberBase
}

func (ChatMemberLeft) chatMember()             {}
func (ChatMemberLeft) Status() string          { return "left" }
func (m ChatMemberLeft) Discriminator() string { return m.Status() }

// ChatMemberBanned represents a banned user.
type ChatMemberBanned struct {
	chatMemberBase
	UntilDate int64 `json:"until_date"` // 0 means banned forever
}

func (ChatMemberBanned) chatMember()             {}
func (ChatMemberBanned) Status() string          { return "kicked" }
func (m ChatMemberBanned) Discriminator() string { return m.Status() }

// ChatMemberUnknown holds a member status this package does not know yet.
// The raw object is kept so it can be re-encoded unchanged.
type ChatMemberUnknown struct {
	RawStatus string
	Raw       map[string]any
}

func (ChatMemberUnknown) chatMember()                 {}
func (m ChatMemberUnknown) Status() string            { return m.RawStatus }
func (m ChatMemberUnknown) Discriminator() string     { return m.RawStatus }
func (m ChatMemberUnknown) RawFields() map[string]any { return m.Raw }

// GetUser decodes the user field of the raw object, if there is a valid one.
func (m ChatMemberUnknown) GetUser() *User {
	raw, ok := m.Raw["user"]
	if !ok {
		return nil
	}
	var u User
	if err := Decode(raw, &u); err != nil {
		return nil
	}
	return &u
}

// UnmarshalChatMember deserializes JSON into the correct ChatMember concrete type.
// Statuses unknown to this package yield a ChatMemberUnknown.
func UnmarshalChatMember(data []byte) (ChatMember, error) {
	var m ChatMember
	if err := Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat member: %w", err)
	}
	return m, nil
}

// IsOwner returns true if the member is the chat owner.
func IsOwner(m ChatMember) bool {
	_, ok := m.(ChatMemberOwner)
	return ok
}

// IsAdmin returns true if the member is an administrator (including owner).
func IsAdmin(m ChatMember) bool {
	switch m.(type) {
	case ChatMemberOwner, ChatMemberAdministrator:
		return true
	default:
		return false
	}
}

// IsMember returns true if the member is a regular member.
func IsMember(m ChatMember) bool {
	_, ok := m.(ChatMemberMember)
	return ok
}

// IsRestricted returns true if the member is restricted.
func IsRestricted(m ChatMember) bool {
	_, ok := m.(ChatMemberRestricted)
	return ok
}

// IsBanned returns true if the member is banned.
func IsBanned(m ChatMember) bool {
	_, ok := m.(ChatMemberBanned)
	return ok
}

// HasLeft returns true if the member left the chat.
func HasLeft(m ChatMember) bool {
	_, ok := m.(ChatMemberLeft)
	return ok
}

// InChat returns true if the member is currently present in the chat.
// Restricted members may or may not be.
func InChat(m ChatMember) bool {
	switch v := m.(type) {
	case ChatMemberOwner, ChatMemberAdministrator, ChatMemberMember:
		return true
	case ChatMemberRestricted:
		return v.IsMember
	default:
		return false
	}
}
