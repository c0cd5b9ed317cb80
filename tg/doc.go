// Package tg provides the Telegram Bot API types and their wire codec.
//
// This package contains:
//   - Telegram API types (Message, User, Chat, Update, etc.) whose json tags
//     declare field names, optionality and order
//   - Polymorphic families as sealed interfaces (ReactionType, ChatMember,
//     MessageOrigin, TransactionPartner, ...), each with an ...Unknown
//     fallback that keeps unrecognised variants intact
//   - InputFile, the value of raw-file fields
//   - Keyboard builders and permission presets
//
// Optional fields are pointers, slices or interfaces; nil means unset and is
// never written. Use Ptr for literals.
//
// # Usage
//
//	import "github.com/prilive-com/tgtypes/tg"
//
//	var u tg.Update
//	if err := tg.Unmarshal(body, &u); err != nil {
//	    return err
//	}
//
//	data, err := tg.Marshal(tg.ReactionTypeEmoji{Emoji: "👍"})
//	// {"type":"emoji","emoji":"👍"}
//
// Use NewCodec(schema.WithStrictVariants()) to reject unknown variants
// instead of falling back.
package tg
