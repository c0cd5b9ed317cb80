package testutil

import "github.com/prilive-com/tgtypes/tg"

// Test constants for consistent test data.
const (
	// TestChatID is a test chat ID.
	TestChatID = int64(123456789)

	// TestUserID is a test user ID.
	TestUserID = int64(987654321)

	// TestBotID is a test bot ID.
	TestBotID = int64(123456789)

	// TestUsername is a test username.
	TestUsername = "testuser"

	// TestBotUsername is a test bot username.
	TestBotUsername = "testbot"

	// TestDate is the date of every fixture message.
	TestDate = int64(1234567890)

	// LargeChatID is 2^52, well outside the 32-bit range.
	LargeChatID = int64(4503599627370496)
)

// TestUser returns a test user fixture.
func TestUser() *tg.User {
	return &tg.User{
		ID:        TestUserID,
		IsBot:     false,
		FirstName: "Test",
		LastName:  tg.Ptr("User"),
		Username:  tg.Ptr(TestUsername),
	}
}

// TestBot returns a test bot user fixture.
func TestBot() *tg.User {
	return &tg.User{
		ID:        TestBotID,
		IsBot:     true,
		FirstName: "Test Bot",
		Username:  tg.Ptr(TestBotUsername),
	}
}

// TestChat returns a test private chat fixture.
func TestChat() *tg.Chat {
	return &tg.Chat{
		ID:        TestChatID,
		Type:      tg.ChatTypePrivate,
		Username:  tg.Ptr(TestUsername),
		FirstName: tg.Ptr("Test"),
		LastName:  tg.Ptr("User"),
	}
}

// TestGroupChat returns a test group chat fixture.
func TestGroupChat(id int64, title string) *tg.Chat {
	return &tg.Chat{
		ID:    id,
		Type:  tg.ChatTypeGroup,
		Title: tg.Ptr(title),
	}
}

// TestSuperGroupChat returns a test supergroup chat fixture.
func TestSuperGroupChat(id int64, title, username string) *tg.Chat {
	return &tg.Chat{
		ID:       id,
		Type:     tg.ChatTypeSupergroup,
		Title:    tg.Ptr(title),
		Username: tg.Ptr(username),
	}
}

// TestChannelChat returns a test channel chat fixture.
func TestChannelChat(id int64, title, username string) *tg.Chat {
	return &tg.Chat{
		ID:       id,
		Type:     tg.ChatTypeChannel,
		Title:    tg.Ptr(title),
		Username: tg.Ptr(username),
	}
}

// TestMessage returns a test message fixture.
func TestMessage(messageID int, text string) *tg.Message {
	return &tg.Message{
		MessageID: messageID,
		From:      TestUser(),
		Date:      TestDate,
		Chat:      TestChat(),
		Text:      tg.Ptr(text),
	}
}

// TestMessageInChat returns a test message fixture for a specific chat.
func TestMessageInChat(messageID int, chatID int64, text string) *tg.Message {
	return &tg.Message{
		MessageID: messageID,
		From:      TestUser(),
		Date:      TestDate,
		Chat: &tg.Chat{
			ID:   chatID,
			Type: tg.ChatTypePrivate,
		},
		Text: tg.Ptr(text),
	}
}

// TestUpdate returns a test update fixture with a message.
func TestUpdate(updateID int, text string) tg.Update {
	return tg.Update{
		UpdateID: updateID,
		Message:  TestMessage(1, text),
	}
}

// TestCallbackQuery returns a test callback query fixture.
func TestCallbackQuery(id, data string) *tg.CallbackQuery {
	return &tg.CallbackQuery{
		ID:           id,
		From:         *TestUser(),
		Message:      *TestMessage(1, "Original message"),
		ChatInstance: "instance_123",
		Data:         tg.Ptr(data),
	}
}

// TestUpdateWithCallback returns a test update fixture with a callback query.
func TestUpdateWithCallback(updateID int, cbID, cbData string) tg.Update {
	return tg.Update{
		UpdateID:      updateID,
		CallbackQuery: TestCallbackQuery(cbID, cbData),
	}
}

// TestInlineKeyboard returns a test inline keyboard fixture.
func TestInlineKeyboard(buttons ...[]tg.InlineKeyboardButton) *tg.InlineKeyboardMarkup {
	return tg.InlineKeyboard(buttons...)
}

// TestInlineButton returns a test inline keyboard button with callback data.
func TestInlineButton(text, callbackData string) tg.InlineKeyboardButton {
	return tg.Btn(text, callbackData)
}

// TestURLButton returns a test inline keyboard button with URL.
func TestURLButton(text, url string) tg.InlineKeyboardButton {
	return tg.BtnURL(text, url)
}
