// Package testutil provides testing utilities for tgtypes.
//
// This package is intended for internal testing only and should not be imported
// by external packages.
//
// # Payload Assertions
//
// Payload wraps encoded JSON and checks it field by field:
//
//	data, err := tg.Marshal(msg)
//	require.NoError(t, err)
//	p := testutil.NewPayload(t, data)
//	p.AssertJSONField(t, "message_id", float64(1))
//	p.AssertJSONFieldAbsent(t, "text")
//	p.AssertKeyOrder(t, "message_id", "date", "chat")
//
// # Test Fixtures
//
// Common test data is available both as Go values and as raw wire objects:
//
//	testutil.TestChatID        // Test chat ID
//	testutil.TestUser()        // *tg.User fixture
//	testutil.TestMessage(1, "Hello")
//	testutil.RawMessage(1, "Hello") // the same message as a decoded JSON object
package testutil
