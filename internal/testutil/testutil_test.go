package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgtypes/internal/testutil"
	"github.com/prilive-com/tgtypes/tg"
)

func TestPayload_Fields(t *testing.T) {
	p := testutil.NewPayload(t, []byte(`{"chat_id":42,"text":"hi","reply_markup":{"inline_keyboard":[]}}`))

	p.AssertJSONField(t, "text", "hi")
	p.AssertJSONField(t, "chat_id", float64(42))
	p.AssertJSONFieldExists(t, "reply_markup")
	p.AssertJSONFieldAbsent(t, "parse_mode")
	p.AssertJSONEqual(t, `{"text":"hi","chat_id":42,"reply_markup":{"inline_keyboard":[]}}`)
	assert.Len(t, p.BodyMap(), 3)
	assert.Contains(t, p.BodyString(), `"text":"hi"`)
}

func TestPayload_Nested(t *testing.T) {
	p := testutil.NewPayload(t, []byte(`{"message":{"chat":{"id":7,"type":"private"}}}`))

	p.AssertJSONFieldNested(t, "message.chat.id", float64(7))
	p.AssertJSONFieldNested(t, "message.chat.type", "private")
}

func TestPayload_Keys(t *testing.T) {
	p := testutil.NewPayload(t, []byte(`{"z":1,"a":{"x":[1,2]},"m":null}`))

	assert.Equal(t, []string{"z", "a", "m"}, p.Keys(t))
	p.AssertKeyOrder(t, "z", "a", "m")
}

func TestFixtures_MarshalMatchesRaw(t *testing.T) {
	tests := []struct {
		name    string
		fixture any
		raw     map[string]any
	}{
		{"user", testutil.TestUser(), testutil.RawUser()},
		{"bot", testutil.TestBot(), testutil.RawBot()},
		{"chat", testutil.TestChat(), testutil.RawChat()},
		{"message", testutil.TestMessage(5, "hello"), testutil.RawMessage(5, "hello")},
		{"update", testutil.TestUpdate(10, "hello"), testutil.RawUpdate(10, "hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tg.Marshal(tt.fixture)
			require.NoError(t, err)

			p := testutil.NewPayload(t, data)
			assert.Equal(t, tt.raw, p.BodyMap())
		})
	}
}

func TestFixtures_DecodeRaw(t *testing.T) {
	var msg tg.Message
	require.NoError(t, tg.Decode(testutil.RawMessage(3, "ping"), &msg))
	assert.Equal(t, testutil.TestMessage(3, "ping"), &msg)

	var u tg.Update
	require.NoError(t, tg.Decode(testutil.RawUpdate(4, "pong"), &u))
	assert.Equal(t, testutil.TestUpdate(4, "pong"), u)

	var info tg.WebhookInfo
	require.NoError(t, tg.Decode(testutil.RawWebhookInfo("https://example.com/hook", 3), &info))
	assert.Equal(t, "https://example.com/hook", info.URL)
	assert.Equal(t, 3, info.PendingUpdateCount)
}

func TestFixtures_MessageOrder(t *testing.T) {
	data, err := tg.Marshal(testutil.TestMessage(1, "x"))
	require.NoError(t, err)

	testutil.NewPayload(t, data).AssertKeyOrder(t, "message_id", "from", "date", "chat", "text")
}

func TestFixtures_CallbackQuery(t *testing.T) {
	cb := testutil.TestCallbackQuery("cb_1", "action:1")

	msg, ok := cb.AccessibleMessage()
	require.True(t, ok)
	assert.Equal(t, "Original message", *msg.Text)
	assert.Equal(t, "action:1", *cb.Data)

	data, err := tg.Marshal(cb)
	require.NoError(t, err)

	var back tg.CallbackQuery
	require.NoError(t, tg.Unmarshal(data, &back))
	assert.Equal(t, *cb, back)
}

func TestFixtures_Chats(t *testing.T) {
	group := testutil.TestGroupChat(-100, "Group")
	assert.Equal(t, tg.ChatTypeGroup, group.Type)
	assert.Equal(t, "Group", *group.Title)

	super := testutil.TestSuperGroupChat(-1001, "Super", "super")
	assert.Equal(t, tg.ChatTypeSupergroup, super.Type)
	assert.Equal(t, "super", *super.Username)

	channel := testutil.TestChannelChat(-1002, "News", "news")
	assert.Equal(t, tg.ChatTypeChannel, channel.Type)

	msg := testutil.TestMessageInChat(1, testutil.LargeChatID, "hi")
	data, err := tg.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":4503599627370496`)
}

func TestFixtures_Keyboard(t *testing.T) {
	kb := testutil.TestInlineKeyboard(
		[]tg.InlineKeyboardButton{
			testutil.TestInlineButton("Yes", "yes"),
			testutil.TestURLButton("Docs", "https://core.telegram.org/bots/api"),
		},
	)

	data, err := tg.Marshal(kb)
	require.NoError(t, err)
	testutil.NewPayload(t, data).AssertJSONEqual(t, `{"inline_keyboard":[[
		{"text":"Yes","callback_data":"yes"},
		{"text":"Docs","url":"https://core.telegram.org/bots/api"}
	]]}`)
}
