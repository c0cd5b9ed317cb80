package tg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgtypes/internal/testutil"
	"github.com/prilive-com/tgtypes/tg"
)

// ==================== Message.MessageSig ====================

func TestMessage_MessageSig_Valid(t *testing.T) {
	msg := &tg.Message{
		MessageID: 123,
		Chat:      &tg.Chat{ID: 456},
	}

	msgID, chatID := msg.MessageSig()
	assert.Equal(t, "123", msgID)
	assert.Equal(t, int64(456), chatID)
}

func TestMessage_MessageSig_NilMessage(t *testing.T) {
	var msg *tg.Message

	msgID, chatID := msg.MessageSig()
	assert.Equal(t, "", msgID)
	assert.Equal(t, int64(0), chatID)
}

func TestMessage_MessageSig_NilChat(t *testing.T) {
	msg := &tg.Message{
		MessageID: 123,
		Chat:      nil,
	}

	msgID, chatID := msg.MessageSig()
	assert.Equal(t, "123", msgID)
	assert.Equal(t, int64(0), chatID)
}

// ==================== StoredMessage.MessageSig ====================

func TestStoredMessage_MessageSig(t *testing.T) {
	stored := tg.StoredMessage{
		MsgID:  789,
		ChatID: 12345,
	}

	msgID, chatID := stored.MessageSig()
	assert.Equal(t, "789", msgID)
	assert.Equal(t, int64(12345), chatID)
}

// ==================== InlineMessage.MessageSig ====================

func TestInlineMessage_MessageSig(t *testing.T) {
	inline := tg.InlineMessage{
		InlineMessageID: "inline_msg_123",
	}

	msgID, chatID := inline.MessageSig()
	assert.Equal(t, "inline_msg_123", msgID)
	assert.Equal(t, int64(0), chatID) // Inline messages have no chat ID
}

// ==================== CallbackQuery.MessageSig ====================

func TestCallbackQuery_MessageSig_WithInlineMessageID(t *testing.T) {
	cb := &tg.CallbackQuery{
		ID:              "cb_123",
		InlineMessageID: tg.Ptr("inline_456"),
	}

	msgID, chatID := cb.MessageSig()
	assert.Equal(t, "inline_456", msgID)
	assert.Equal(t, int64(0), chatID)
}

func TestCallbackQuery_MessageSig_WithMessage(t *testing.T) {
	tests := []struct {
		name    string
		message tg.MaybeInaccessibleMessage
	}{
		{"value", tg.Message{MessageID: 789, Chat: &tg.Chat{ID: 100}}},
		{"pointer", &tg.Message{MessageID: 789, Chat: &tg.Chat{ID: 100}}},
		{"inaccessible", tg.InaccessibleMessage{MessageID: 789, Chat: tg.Chat{ID: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &tg.CallbackQuery{ID: "cb_123", Message: tt.message}

			msgID, chatID := cb.MessageSig()
			assert.Equal(t, "789", msgID)
			assert.Equal(t, int64(100), chatID)
		})
	}
}

func TestCallbackQuery_MessageSig_Nil(t *testing.T) {
	var cb *tg.CallbackQuery

	msgID, chatID := cb.MessageSig()
	assert.Equal(t, "", msgID)
	assert.Equal(t, int64(0), chatID)
}

func TestCallbackQuery_MessageSig_NoMessageNoInline(t *testing.T) {
	cb := &tg.CallbackQuery{
		ID: "cb_123",
	}

	msgID, chatID := cb.MessageSig()
	assert.Equal(t, "", msgID)
	assert.Equal(t, int64(0), chatID)
}

// ==================== MaybeInaccessibleMessage ====================

func TestCallbackQuery_AccessibleMessage(t *testing.T) {
	cb := testutil.TestCallbackQuery("cb_1", "data")

	msg, ok := cb.AccessibleMessage()
	require.True(t, ok)
	assert.Equal(t, "Original message", *msg.Text)

	cb.Message = tg.InaccessibleMessage{Chat: *testutil.TestChat(), MessageID: 1}
	msg, ok = cb.AccessibleMessage()
	assert.False(t, ok)
	assert.Nil(t, msg)
}

func TestCallbackQuery_DecodeMessageByDate(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		inaccessible bool
	}{
		{"accessible", `{"message_id":5,"date":1700000000,"chat":{"id":1,"type":"private"},"text":"hi"}`, false},
		{"inaccessible", `{"chat":{"id":1,"type":"private"},"message_id":5,"date":0}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"id":"q","from":{"id":2,"is_bot":false,"first_name":"U"},"message":` + tt.message + `,"chat_instance":"ci"}`

			var cb tg.CallbackQuery
			require.NoError(t, tg.Unmarshal([]byte(data), &cb))

			_, isInaccessible := cb.Message.(tg.InaccessibleMessage)
			assert.Equal(t, tt.inaccessible, isInaccessible)

			msgID, chatID := cb.MessageSig()
			assert.Equal(t, "5", msgID)
			assert.Equal(t, int64(1), chatID)

			out, err := tg.Marshal(cb)
			require.NoError(t, err)
			assert.JSONEq(t, data, string(out))
		})
	}
}

// ==================== Editable Interface Compliance ====================

func TestEditableInterface_AllTypesImplement(t *testing.T) {
	editables := []tg.Editable{
		&tg.Message{},
		tg.InaccessibleMessage{},
		tg.StoredMessage{},
		tg.InlineMessage{},
		&tg.CallbackQuery{},
	}

	for _, e := range editables {
		msgID, chatID := e.MessageSig()
		_ = msgID
		_ = chatID
	}
}

// ==================== Codec scenarios ====================

func TestUser_Minimal(t *testing.T) {
	data := `{"id":123,"is_bot":false,"first_name":"Ann"}`

	var u tg.User
	require.NoError(t, tg.Unmarshal([]byte(data), &u))
	assert.Equal(t, tg.User{ID: 123, FirstName: "Ann"}, u)
	assert.Nil(t, u.LastName)
	assert.Nil(t, u.Username)
	assert.False(t, u.IsPremium)

	out, err := tg.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, data, string(out))
}

func TestUpdate_RoundTrip(t *testing.T) {
	data := `{"update_id":10,"message":{"message_id":1,"from":{"id":987654321,"is_bot":false,"first_name":"Test","last_name":"User","username":"testuser"},"date":1234567890,"chat":{"id":123456789,"type":"private","username":"testuser","first_name":"Test","last_name":"User"},"text":"hello"}}`

	var u tg.Update
	require.NoError(t, tg.Unmarshal([]byte(data), &u))
	assert.Equal(t, testutil.TestUpdate(10, "hello"), u)

	out, err := tg.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, data, string(out))
}

func TestMessage_IgnoresUnknownKeys(t *testing.T) {
	data := `{"message_id":1,"date":2,"chat":{"id":3,"type":"private","brand_new":{"x":1}},"some_future_field":true}`

	var m tg.Message
	require.NoError(t, tg.Unmarshal([]byte(data), &m))
	assert.Equal(t, int64(3), m.Chat.ID)

	out, err := tg.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"message_id":1,"date":2,"chat":{"id":3,"type":"private"}}`, string(out))
}

func TestUser_OptionalFlags(t *testing.T) {
	// is_premium is only ever sent as true; getMe flags are sent either way.
	data := []byte(`{"id":1,"is_bot":true,"first_name":"B","is_premium":false,"can_join_groups":false,"supports_inline_queries":true}`)

	var u tg.User
	require.NoError(t, tg.Unmarshal(data, &u))
	assert.False(t, u.IsPremium)
	require.NotNil(t, u.CanJoinGroups)
	assert.False(t, *u.CanJoinGroups)
	assert.Nil(t, u.CanReadAllGroupMessages)

	out, err := tg.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"is_bot":true,"first_name":"B","can_join_groups":false,"supports_inline_queries":true}`, string(out))

	out, err = tg.Marshal(tg.User{ID: 1, FirstName: "A", IsPremium: true})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"is_bot":false,"first_name":"A","is_premium":true}`, string(out))
}
