package testutil

// Raw wire objects, shaped as encoding/json decodes them into any with
// UseNumber off. Each mirrors the Go fixture of the same name.

// RawUser returns the wire form of TestUser.
func RawUser() map[string]any {
	return map[string]any{
		"id":         float64(TestUserID),
		"is_bot":     false,
		"first_name": "Test",
		"last_name":  "User",
		"username":   TestUsername,
	}
}

// RawBot returns the wire form of TestBot.
func RawBot() map[string]any {
	return map[string]any{
		"id":         float64(TestBotID),
		"is_bot":     true,
		"first_name": "Test Bot",
		"username":   TestBotUsername,
	}
}

// RawChat returns the wire form of TestChat.
func RawChat() map[string]any {
	return map[string]any{
		"id":         float64(TestChatID),
		"type":       "private",
		"username":   TestUsername,
		"first_name": "Test",
		"last_name":  "User",
	}
}

// RawMessage returns the wire form of TestMessage.
func RawMessage(messageID int, text string) map[string]any {
	return map[string]any{
		"message_id": float64(messageID),
		"from":       RawUser(),
		"date":       float64(TestDate),
		"chat":       RawChat(),
		"text":       text,
	}
}

// RawUpdate returns the wire form of TestUpdate.
func RawUpdate(updateID int, text string) map[string]any {
	return map[string]any{
		"update_id": float64(updateID),
		"message":   RawMessage(1, text),
	}
}

// RawWebhookInfo returns a minimal getWebhookInfo result.
func RawWebhookInfo(url string, pendingCount int) map[string]any {
	return map[string]any{
		"url":                    url,
		"has_custom_certificate": false,
		"pending_update_count":   float64(pendingCount),
	}
}
