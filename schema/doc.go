// Package schema maps Go structs onto the Telegram Bot API wire format.
//
// An entity is a struct whose json tags are its schema: the tag name is the
// wire name, omitempty marks the field optional, and declaration order is
// wire order. Optional fields are pointers, slices or interfaces, so that
// "unset" (nil) stays distinct from false, 0 and "".
//
// Polymorphic objects are sealed interfaces registered as a Family. The
// discriminator (type, status, source) is supplied by each variant's
// Discriminator method and written first when encoding; decoding reads it
// and dispatches to the matching variant. Unknown values decode into the
// family's fallback holder unless the codec is strict.
//
//	reg, err := schema.NewRegistry(reactionTypes)
//	codec := schema.NewCodec(reg)
//	data, err := codec.Marshal(ReactionTypeEmoji{Emoji: "👍"})
//	// {"type":"emoji","emoji":"👍"}
//
// Errors are typed (*MissingRequiredFieldError, *TypeMismatchError,
// *UnknownVariantError) and match the package sentinels with errors.Is.
package schema
