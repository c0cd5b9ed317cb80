package tg

// ChatPermissions describes actions that a non-administrator user is allowed to take in a chat.
// Pointer fields distinguish between "not set" (nil) and "explicitly false" (*false).
type ChatPermissions struct {
	CanSendMessages       *bool `json:"can_send_messages,omitempty"`
	CanSendAudios         *bool `json:"can_send_audios,omitempty"`
	CanSendDocuments      *bool `json:"can_send_documents,omitempty"`
	CanSendPhotos         *bool `json:"can_send_photos,omitempty"`
	CanSendVideos         *bool `json:"can_send_videos,omitempty"`
	CanSendVideoNotes     *bool `json:"can_send_video_notes,omitempty"`
	CanSendVoiceNotes     *bool `json:"can_send_voice_notes,omitempty"`
	CanSendPolls          *bool `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  *bool `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews *bool `json:"can_add_web_page_previews,omitempty"`
	CanChangeInfo         *bool `json:"can_change_info,omitempty"`
	CanInviteUsers        *bool `json:"can_invite_users,omitempty"`
	CanPinMessages        *bool `json:"can_pin_messages,omitempty"`
	CanManageTopics       *bool `json:"can_manage_topics,omitempty"`
}

// sendPermissions sets every can_send_* flag and link previews to v,
// leaving the chat management flags unset.
func sendPermissions(v bool) ChatPermissions {
	return ChatPermissions{
		CanSendMessages:       Ptr(v),
		CanSendAudios:         Ptr(v),
		CanSendDocuments:      Ptr(v),
		CanSendPhotos:         Ptr(v),
		CanSendVideos:         Ptr(v),
		CanSendVideoNotes:     Ptr(v),
		CanSendVoiceNotes:     Ptr(v),
		CanSendPolls:          Ptr(v),
		CanSendOtherMessages:  Ptr(v),
		CanAddWebPagePreviews: Ptr(v),
	}
}

func uniformPermissions(v bool) ChatPermissions {
	p := sendPermissions(v)
	p.CanChangeInfo = Ptr(v)
	p.CanInviteUsers = Ptr(v)
	p.CanPinMessages = Ptr(v)
	p.CanManageTopics = Ptr(v)
	return p
}

// AllPermissions returns ChatPermissions with all permissions enabled.
func AllPermissions() ChatPermissions { return uniformPermissions(true) }

// NoPermissions returns ChatPermissions with all permissions disabled.
func NoPermissions() ChatPermissions { return uniformPermissions(false) }

// ReadOnlyPermissions returns permissions for read-only access (no sending).
// Chat management flags are left unset.
func ReadOnlyPermissions() ChatPermissions { return sendPermissions(false) }

// TextOnlyPermissions returns permissions for text-only messaging.
func TextOnlyPermissions() ChatPermissions {
	p := sendPermissions(false)
	p.CanSendMessages = Ptr(true)
	return p
}

// Allowed reports whether a permission pointer is explicitly true.
func Allowed(p *bool) bool { return p != nil && *p }
