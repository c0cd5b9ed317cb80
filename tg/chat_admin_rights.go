package tg

// ChatAdministratorRights represents the rights of an administrator in a chat.
type ChatAdministratorRights struct {
	IsAnonymous             bool  `json:"is_anonymous"`
	CanManageChat           bool  `json:"can_manage_chat"`
	CanDeleteMessages       bool  `json:"can_delete_messages"`
	CanManageVideoChats     bool  `json:"can_manage_video_chats"`
	CanRestrictMembers      bool  `json:"can_restrict_members"`
	CanPromoteMembers       bool  `json:"can_promote_members"`
	CanChangeInfo           bool  `json:"can_change_info"`
	CanInviteUsers          bool  `json:"can_invite_users"`
	CanPostStories          bool  `json:"can_post_stories"`
	CanEditStories          bool  `json:"can_edit_stories"`
	CanDeleteStories        bool  `json:"can_delete_stories"`
	CanPostMessages         *bool `json:"can_post_messages,omitempty"`
	CanEditMessages         *bool `json:"can_edit_messages,omitempty"`
	CanPinMessages          *bool `json:"can_pin_messages,omitempty"`
	CanManageTopics         *bool `json:"can_manage_topics,omitempty"`
	CanManageDirectMessages *bool `json:"can_manage_direct_messages,omitempty"`
}

// FullAdminRights returns administrator rights with all permissions enabled.
func FullAdminRights() ChatAdministratorRights {
	return ChatAdministratorRights{
		CanManageChat:           true,
		CanDeleteMessages:       true,
		CanManageVideoChats:     true,
		CanRestrictMembers:      true,
		CanPromoteMembers:       true,
		CanChangeInfo:           true,
		CanInviteUsers:          true,
		CanPostStories:          true,
		CanEditStories:          true,
		CanDeleteStories:        true,
		CanPostMessages:         Ptr(true),
		CanEditMessages:         Ptr(true),
		CanPinMessages:          Ptr(true),
		CanManageTopics:         Ptr(true),
		CanManageDirectMessages: Ptr(true),
	}
}

// ModeratorRights returns typical moderator permissions (no promote, no change info).
func ModeratorRights() ChatAdministratorRights {
	return ChatAdministratorRights{
		CanManageChat:      true,
		CanDeleteMessages:  true,
		CanRestrictMembers: true,
		CanInviteUsers:     true,
		CanPinMessages:     Ptr(true),
	}
}

// ContentManagerRights returns permissions for content management only.
func ContentManagerRights() ChatAdministratorRights {
	return ChatAdministratorRights{
		CanManageChat:     true,
		CanDeleteMessages: true,
		CanChangeInfo:     true,
		CanPostStories:    true,
		CanEditStories:    true,
		CanPostMessages:   Ptr(true),
		CanEditMessages:   Ptr(true),
		CanPinMessages:    Ptr(true),
	}
}

// Rights returns the administrator rights held by the member.
func (m ChatMemberAdministrator) Rights() ChatAdministratorRights {
	return ChatAdministratorRights{
		IsAnonymous:             m.IsAnonymous,
		CanManageChat:           m.CanManageChat,
		CanDeleteMessages:       m.CanDeleteMessages,
		CanManageVideoChats:     m.CanManageVideoChats,
		CanRestrictMembers:      m.CanRestrictMembers,
		CanPromoteMembers:       m.CanPromoteMembers,
		CanChangeInfo:           m.CanChangeInfo,
		CanInviteUsers:          m.CanInviteUsers,
		CanPostStories:          Allowed(m.CanPostStories),
		CanEditStories:          Allowed(m.CanEditStories),
		CanDeleteStories:        Allowed(m.CanDeleteStories),
		CanPostMessages:         m.CanPostMessages,
		CanEditMessages:         m.CanEditMessages,
		CanPinMessages:          m.CanPinMessages,
		CanManageTopics:         m.CanManageTopics,
		CanManageDirectMessages: m.CanManageDirectMessages,
	}
}
