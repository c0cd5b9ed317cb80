package testutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Payload is an encoded JSON object under test.
type Payload struct {
	Body []byte
	body map[string]any
}

// NewPayload parses data, failing the test if it is not a JSON object.
func NewPayload(t *testing.T, data []byte) *Payload {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m), "failed to parse JSON payload")
	return &Payload{Body: data, body: m}
}

// AssertJSONField verifies a top-level field of the payload.
func (p *Payload) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	assert.Equal(t, expected, p.body[field], "unexpected value for field: "+field)
}

// AssertJSONFieldExists verifies a field exists in the payload.
func (p *Payload) AssertJSONFieldExists(t *testing.T, field string) {
	t.Helper()
	assert.Contains(t, p.body, field, "field should exist: "+field)
}

// AssertJSONFieldAbsent verifies a field does NOT exist in the payload.
func (p *Payload) AssertJSONFieldAbsent(t *testing.T, field string) {
	t.Helper()
	assert.NotContains(t, p.body, field, "field should be absent: "+field)
}

// AssertJSONFieldNested verifies a nested field.
// Use dot notation: "chat.id", "user.first_name".
func (p *Payload) AssertJSONFieldNested(t *testing.T, path string, expected any) {
	t.Helper()
	var cur any = p.body
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			t.Errorf("%s: %q is not an object", path, key)
			return
		}
		cur, ok = m[key]
		if !ok {
			t.Errorf("%s: field %q not found", path, key)
			return
		}
	}
	assert.Equal(t, expected, cur, "unexpected value for field: "+path)
}

// AssertKeyOrder verifies that the top-level keys appear exactly in the
// given order.
func (p *Payload) AssertKeyOrder(t *testing.T, keys ...string) {
	t.Helper()
	assert.Equal(t, keys, p.Keys(t), "unexpected key order")
}

// AssertJSONEqual verifies the payload is semantically equal to expected.
func (p *Payload) AssertJSONEqual(t *testing.T, expected string) {
	t.Helper()
	assert.JSONEq(t, expected, string(p.Body))
}

// Keys returns the top-level keys in the order they were written.
func (p *Payload) Keys(t *testing.T) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(p.Body))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return keys
}

// BodyMap returns the payload as a map.
func (p *Payload) BodyMap() map[string]any {
	return p.body
}

// BodyString returns the payload as a string.
func (p *Payload) BodyString() string {
	return string(p.Body)
}
