package tg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBoostSource(t *testing.T, data string) ChatBoostSource {
	t.Helper()
	var s ChatBoostSource
	require.NoError(t, Unmarshal([]byte(data), &s))
	return s
}

func TestUnmarshalChatBoostSource_Premium(t *testing.T) {
	result := decodeBoostSource(t, `{"source":"premium","user":{"id":123,"is_bot":false,"first_name":"Alice"}}`)

	s, ok := result.(ChatBoostSourcePremium)
	require.True(t, ok)
	assert.Equal(t, "premium", s.Discriminator())
	assert.Equal(t, int64(123), s.User.ID)
}

func TestUnmarshalChatBoostSource_GiftCode(t *testing.T) {
	result := decodeBoostSource(t, `{"source":"gift_code","user":{"id":456,"is_bot":false,"first_name":"Bob"}}`)

	s, ok := result.(ChatBoostSourceGiftCode)
	require.True(t, ok)
	assert.Equal(t, "gift_code", s.Discriminator())
	assert.Equal(t, "Bob", s.User.FirstName)
}

func TestUnmarshalChatBoostSource_Giveaway(t *testing.T) {
	data := `{"source":"giveaway","giveaway_message_id":99,"is_unclaimed":true}`
	result := decodeBoostSource(t, data)

	s, ok := result.(ChatBoostSourceGiveaway)
	require.True(t, ok)
	assert.Equal(t, 99, s.GiveawayMessageID)
	assert.True(t, s.IsUnclaimed)
	assert.Nil(t, s.User)
	assert.Nil(t, s.PrizeStarCount)

	out, err := Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, data, string(out))
}

func TestUnmarshalChatBoostSource_Unknown(t *testing.T) {
	data := `{"source":"future_type","extra":true}`
	result := decodeBoostSource(t, data)

	unknown, ok := result.(ChatBoostSourceUnknown)
	require.True(t, ok)
	assert.Equal(t, "future_type", unknown.Discriminator())
	assert.Equal(t, true, unknown.Raw["extra"])

	out, err := Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, data, string(out))
}

func TestUnmarshalChatBoostSource_MalformedKnown(t *testing.T) {
	var s ChatBoostSource
	err := Unmarshal([]byte(`{"source":"premium","user":"not_object"}`), &s)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestUnmarshalChatBoostSource_MissingUser(t *testing.T) {
	var s ChatBoostSource
	err := Unmarshal([]byte(`{"source":"premium"}`), &s)

	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ChatBoostSourcePremium", missing.Entity)
	assert.Equal(t, "user", missing.Field)
}

func TestChatBoost_Unmarshal(t *testing.T) {
	data := `{
		"boost_id": "b123",
		"add_date": 1700000000,
		"expiration_date": 1700100000,
		"source": {"source":"premium","user":{"id":1,"is_bot":false,"first_name":"X"}}
	}`

	var boost ChatBoost
	err := Unmarshal([]byte(data), &boost)
	require.NoError(t, err)

	assert.Equal(t, "b123", boost.BoostID)
	_, ok := boost.Source.(ChatBoostSourcePremium)
	assert.True(t, ok)
}

func TestChatBoost_SourceRequired(t *testing.T) {
	_, err := Marshal(ChatBoost{BoostID: "b", AddDate: 1, ExpirationDate: 2})

	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "source", missing.Path)
}

func TestChatBoostRemoved_RoundTrip(t *testing.T) {
	removed := ChatBoostRemoved{
		Chat:       Chat{ID: -1001, Type: ChatTypeChannel, Title: Ptr("News")},
		BoostID:    "b9",
		RemoveDate: 1700000000,
		Source:     ChatBoostSourceGiveaway{GiveawayMessageID: 5, PrizeStarCount: Ptr(500)},
	}

	raw, err := Encode(removed)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"source": "giveaway", "giveaway_message_id": int64(5), "prize_star_count": int64(500)}, raw["source"])

	var back ChatBoostRemoved
	require.NoError(t, Decode(raw, &back))
	assert.Equal(t, removed, back)
}
