package tg

import (
	"fmt"
	"sync"

	"github.com/prilive-com/tgtypes/schema"
)

// families lists every polymorphic family declared by this package.
func families() []*schema.Family {
	return []*schema.Family{
		reactionTypes,
		backgroundFills,
		backgroundTypes,
		chatMembers,
		messageOrigins,
		chatBoostSources,
		transactionPartners,
		revenueWithdrawalStates,
		paidMedia,
		inputPaidMedia,
		passportElementErrors,
		inputMedia,
		inputMessageContents,
		inlineQueryResults,
		botCommandScopes,
		menuButtons,
		ownedGifts,
		maybeInaccessibleMessages,
	}
}

// roots are the types whose schemas are built eagerly. Everything reachable
// from them is registered as well.
func roots() []any {
	return []any{
		Update{},
		WebhookInfo{},
		ChatFullInfo{},
		MessageID{},
		File{},
		UserProfilePhotos{},
		UserChatBoosts{},
		StarTransactions{},
		Gifts{},
		OwnedGifts{},
		StickerSet{},
		GameHighScore{},
		BotCommand{},
		BotName{},
		BotDescription{},
		BotShortDescription{},
		ReplyParameters{},
		ReplyKeyboardMarkup{},
		ReplyKeyboardRemove{},
		ForceReply{},
		InputSticker{},
		InputChecklist{},
		InlineQueryResultsButton{},
		SentWebAppMessage{},
		PreparedInlineMessage{},
		ShippingOption{},
		ResponseParameters{},
		ChatAdministratorRights{},
		InputPollOption{},
		ForumTopic{},
	}
}

var registry = sync.OnceValue(func() *schema.Registry {
	reg, err := schema.NewRegistry(families()...)
	if err != nil {
		panic(fmt.Sprintf("tgtypes: building registry: %v", err))
	}
	if err := reg.Register(roots()...); err != nil {
		panic(fmt.Sprintf("tgtypes: building registry: %v", err))
	}
	return reg
})

var defaultCodec = sync.OnceValue(func() *schema.Codec {
	return schema.NewCodec(registry())
})

// Registry returns the schema registry of every Telegram type in this
// package.
func Registry() *schema.Registry { return registry() }

// NewCodec returns a codec over the Telegram types configured with opts.
// The package-level functions use a tolerant codec without logging.
func NewCodec(opts ...schema.Option) *schema.Codec {
	return schema.NewCodec(registry(), opts...)
}

// Marshal encodes a Telegram object as JSON. Keys follow the Bot API field
// order, unset optional fields are omitted.
func Marshal(v any) ([]byte, error) {
	return defaultCodec().Marshal(v)
}

// Unmarshal decodes a JSON Telegram object into out, which must be a pointer
// to a struct from this package, a family interface, or a slice of those.
func Unmarshal(data []byte, out any) error {
	return defaultCodec().Unmarshal(data, out)
}

// Encode converts a Telegram object into plain maps and slices. Files that
// still have to be uploaded are left in place as InputFile values.
func Encode(v any) (map[string]any, error) {
	return defaultCodec().Encode(v)
}

// Decode fills out from an already decoded JSON value.
func Decode(raw any, out any) error {
	return defaultCodec().Decode(raw, out)
}

// Ptr returns a pointer to v. Handy for optional fields:
//
//	tg.User{ID: 1, FirstName: "Ann", Username: tg.Ptr("ann")}
func Ptr[T any](v T) *T { return &v }
