package tg

import "github.com/prilive-com/tgtypes/schema"

// LabeledPrice represents a portion of the price for goods or services.
type LabeledPrice struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"` // Smallest currency unit (cents, etc.)
}

// Invoice contains basic information about an invoice.
type Invoice struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartParameter string `json:"start_parameter"`
	Currency       string `json:"currency"`
	TotalAmount    int    `json:"total_amount"`
}

// ShippingAddress represents a shipping address.
type ShippingAddress struct {
	CountryCode string `json:"country_code"`
	State       string `json:"state"`
	City        string `json:"city"`
	StreetLine1 string `json:"street_line1"`
	StreetLine2 string `json:"street_line2"`
	PostCode    string `json:"post_code"`
}

// OrderInfo represents information about an order.
type OrderInfo struct {
	Name            *string          `json:"name,omitempty"`
	PhoneNumber     *string          `json:"phone_number,omitempty"`
	Email           *string          `json:"email,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

// ShippingOption represents one shipping option.
type ShippingOption struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Prices []LabeledPrice `json:"prices"`
}

// ShippingQuery contains information about an incoming shipping query.
type ShippingQuery struct {
	ID              string          `json:"id"`
	From            User            `json:"from"`
	InvoicePayload  string          `json:"invoice_payload"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

// PreCheckoutQuery contains information about an incoming pre-checkout query.
type PreCheckoutQuery struct {
	ID               string     `json:"id"`
	From             User       `json:"from"`
	Currency         string     `json:"currency"`
	TotalAmount      int        `json:"total_amount"`
	InvoicePayload   string     `json:"invoice_payload"`
	ShippingOptionID *string    `json:"shipping_option_id,omitempty"`
	OrderInfo        *OrderInfo `json:"order_info,omitempty"`
}

// SuccessfulPayment contains information about a successful payment.
type SuccessfulPayment struct {
	Currency                   string     `json:"currency"`
	TotalAmount                int        `json:"total_amount"`
	InvoicePayload             string     `json:"invoice_payload"`
	SubscriptionExpirationDate *int64     `json:"subscription_expiration_date,omitempty"`
	IsRecurring                bool       `json:"is_recurring,omitempty"`
	IsFirstRecurring           bool       `json:"is_first_recurring,omitempty"`
	ShippingOptionID           *string    `json:"shipping_option_id,omitempty"`
	OrderInfo                  *OrderInfo `json:"order_info,omitempty"`
	TelegramPaymentChargeID    string     `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID    string     `json:"provider_payment_charge_id"`
}

// RefundedPayment contains information about a refunded payment.
type RefundedPayment struct {
	Currency                string  `json:"currency"`
	TotalAmount             int     `json:"total_amount"`
	InvoicePayload          string  `json:"invoice_payload"`
	TelegramPaymentChargeID string  `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID *string `json:"provider_payment_charge_id,omitempty"`
}

// StarAmount represents an amount of Telegram Stars.
type StarAmount struct {
	Amount         int  `json:"amount"`
	NanostarAmount *int `json:"nanostar_amount,omitempty"`
}

// StarTransactions contains a list of Star transactions.
type StarTransactions struct {
	Transactions []StarTransaction `json:"transactions"`
}

// StarTransaction describes a Telegram Star transaction.
// Source is set for incoming transactions, Receiver for outgoing ones.
type StarTransaction struct {
	ID             string             `json:"id"`
	Amount         int                `json:"amount"`
	NanostarAmount *int               `json:"nanostar_amount,omitempty"`
	Date           int64              `json:"date"`
	Source         TransactionPartner `json:"source,omitempty"`
	Receiver       TransactionPartner `json:"receiver,omitempty"`
}

// AffiliateInfo contains information about the affiliate that received a
// commission via this transaction.
type AffiliateInfo struct {
	AffiliateUser      *User `json:"affiliate_user,omitempty"`
	AffiliateChat      *Chat `json:"affiliate_chat,omitempty"`
	CommissionPerMille int   `json:"commission_per_mille"`
	Amount             int   `json:"amount"`
	NanostarAmount     *int  `json:"nanostar_amount,omitempty"`
}

// --- TransactionPartner Union ---

// TransactionPartner describes the source or receiver of a Star transaction.
type TransactionPartner interface {
	schema.Variant
	transactionPartnerTag()
}

var transactionPartners = schema.NewFamily[TransactionPartner]("TransactionPartner", "type",
	func(value string, raw map[string]any) TransactionPartner {
		return TransactionPartnerUnknown{Type: value, Raw: raw}
	},
	TransactionPartnerUser{}, TransactionPartnerChat{}, TransactionPartnerAffiliateProgram{},
	TransactionPartnerFragment{}, TransactionPartnerTelegramAds{}, TransactionPartnerTelegramApi{},
	TransactionPartnerOther{},
)

// TransactionPartnerUser represents a transaction with a user.
type TransactionPartnerUser struct {
	TransactionType             string         `json:"transaction_type"`
	User                        User           `json:"user"`
	Affiliate                   *AffiliateInfo `json:"affiliate,omitempty"`
	InvoicePayload              *string        `json:"invoice_payload,omitempty"`
	SubscriptionPeriod          *int           `json:"subscription_period,omitempty"`
	PaidMedia                   []PaidMedia    `json:"paid_media,omitempty"`
	PaidMediaPayload            *string        `json:"paid_media_payload,omitempty"`
	Gift                        *Gift          `json:"gift,omitempty"`
	PremiumSubscriptionDuration *int           `json:"premium_subscription_duration,omitempty"`
}

func (TransactionPartnerUser) transactionPartnerTag() {}
func (TransactionPartnerUser) Discriminator() string  { return "user" }

// TransactionPartnerUser transaction types.
const (
	TransactionInvoicePayment       = "invoice_payment"
	TransactionPaidMediaPayment     = "paid_media_payment"
	TransactionGiftPurchase         = "gift_purchase"
	TransactionPremiumPurchase      = "premium_purchase"
	TransactionBusinessAccountTrans = "business_account_transfer"
)

// TransactionPartnerChat represents a transaction with a chat.
type TransactionPartnerChat struct {
	Chat Chat  `json:"chat"`
	Gift *Gift `json:"gift,omitempty"`
}

func (TransactionPartnerChat) transactionPartnerTag() {}
func (TransactionPartnerChat) Discriminator() string  { return "chat" }

// TransactionPartnerAffiliateProgram represents a commission received via an
// affiliate program.
type TransactionPartnerAffiliateProgram struct {
	SponsorUser        *User `json:"sponsor_user,omitempty"`
	CommissionPerMille int   `json:"commission_per_mille"`
}

func (TransactionPartnerAffiliateProgram) transactionPartnerTag() {}
func (TransactionPartnerAffiliateProgram) Discriminator() string  { return "affiliate_program" }

// TransactionPartnerFragment represents a withdrawal to Fragment.
type TransactionPartnerFragment struct {
	WithdrawalState RevenueWithdrawalState `json:"withdrawal_state,omitempty"`
}

func (TransactionPartnerFragment) transactionPartnerTag() {}
func (TransactionPartnerFragment) Discriminator() string  { return "fragment" }

// TransactionPartnerTelegramAds represents a transfer to Telegram Ads.
type TransactionPartnerTelegramAds struct{}

func (TransactionPartnerTelegramAds) transactionPartnerTag() {}
func (TransactionPartnerTelegramAds) Discriminator() string  { return "telegram_ads" }

// TransactionPartnerTelegramApi represents payment from Telegram API usage.
type TransactionPartnerTelegramApi struct {
	RequestCount int `json:"request_count"`
}

func (TransactionPartnerTelegramApi) transactionPartnerTag() {}
func (TransactionPartnerTelegramApi) Discriminator() string  { return "telegram_api" }

// TransactionPartnerOther represents a transaction with an unknown source or recipient.
type TransactionPartnerOther struct{}

func (TransactionPartnerOther) transactionPartnerTag() {}
func (TransactionPartnerOther) Discriminator() string  { return "other" }

// TransactionPartnerUnknown is a fallback for future/unknown partner types.
type TransactionPartnerUnknown struct {
	Type string
	Raw  map[string]any
}

func (TransactionPartnerUnknown) transactionPartnerTag()      {}
func (p TransactionPartnerUnknown) Discriminator() string     { return p.Type }
func (p TransactionPartnerUnknown) RawFields() map[string]any { return p.Raw }

// --- RevenueWithdrawalState Union ---

// RevenueWithdrawalState describes the state of a revenue withdrawal.
type RevenueWithdrawalState interface {
	schema.Variant
	revenueWithdrawalStateTag()
}

var revenueWithdrawalStates = schema.NewFamily[RevenueWithdrawalState]("RevenueWithdrawalState", "type",
	func(value string, raw map[string]any) RevenueWithdrawalState {
		return RevenueWithdrawalStateUnknown{Type: value, Raw: raw}
	},
	RevenueWithdrawalStatePending{}, RevenueWithdrawalStateSucceeded{}, RevenueWithdrawalStateFailed{},
)

// RevenueWithdrawalStatePending represents a pending withdrawal.
type RevenueWithdrawalStatePending struct{}

func (RevenueWithdrawalStatePending) revenueWithdrawalStateTag() {}
func (RevenueWithdrawalStatePending) Discriminator() string      { return "pending" }

// RevenueWithdrawalStateSucceeded represents a successful withdrawal.
type RevenueWithdrawalStateSucceeded struct {
	Date int64  `json:"date"`
	URL  string `json:"url"`
}

func (RevenueWithdrawalStateSucceeded) revenueWithdrawalStateTag() {}
func (RevenueWithdrawalStateSucceeded) Discriminator() string      { return "succeeded" }

// RevenueWithdrawalStateFailed represents a failed withdrawal.
type RevenueWithdrawalStateFailed struct{}

func (RevenueWithdrawalStateFailed) revenueWithdrawalStateTag() {}
func (RevenueWithdrawalStateFailed) Discriminator() string      { return "failed" }

// RevenueWithdrawalStateUnknown is a fallback for future withdrawal states.
type RevenueWithdrawalStateUnknown struct {
	Type string
	Raw  map[string]any
}

func (RevenueWithdrawalStateUnknown) revenueWithdrawalStateTag() {}
func (s RevenueWithdrawalStateUnknown) Discriminator() string    { return s.Type }
func (s RevenueWithdrawalStateUnknown) RawFields() map[string]any {
	return s.Raw
}
