package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusNew        InvoiceStatus = "NEW"
	InvoiceStatusProcessing InvoiceStatus = "PROCESSING"
	InvoiceStatusSettled    InvoiceStatus = "SETTLED"
	InvoiceStatusExpired    InvoiceStatus = "EXPIRED"
	InvoiceStatusInvalid    InvoiceStatus = "INVALID"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

type PaymentType string

const (
	PaymentTypeLNURLPay PaymentType = "LNURLPAY"
)

func (t PaymentType) String() string {
	return string(t)
}

// PaymentMethodID identifies one payment method of an invoice: a payment
// network plus a payment type tag.
type PaymentMethodID struct {
	CryptoCode string
	Type       PaymentType
}

func NewLNURLPayMethodID(cryptoCode string) PaymentMethodID {
	return PaymentMethodID{CryptoCode: cryptoCode, Type: PaymentTypeLNURLPay}
}

func (id PaymentMethodID) String() string {
	return id.CryptoCode + "_" + string(id.Type)
}

// PaymentMethodDetails is the mutable LNURL-pay record of a payment method.
// Once BOLT11 is set, Amount is the amount the request was generated for and
// the record is never regenerated.
type PaymentMethodDetails struct {
	BOLT11        string
	NodeInvoiceID string
	Amount        LightMoney
}

func (d PaymentMethodDetails) Issued() bool {
	return d.BOLT11 != ""
}

// LightningPaymentMethod associates an invoice with a payment method id,
// its accounting data and the mutable details record.
type LightningPaymentMethod struct {
	InvoiceID string
	ID        PaymentMethodID

	// AmountDue is the BTC-denominated amount the invoice asks for.
	// Zero for top-up invoices.
	AmountDue decimal.Decimal

	// ExternalNode carries an externally configured lightning node
	// connection string, empty when the internal node should be used.
	ExternalNode string

	State   string
	Details PaymentMethodDetails

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NodeInvoice is an invoice as the lightning node reports it.
type NodeInvoice struct {
	ID      string
	BOLT11  string
	Settled bool
}

// Accounting is a snapshot of what the payment method is owed.
type Accounting struct {
	Due LightMoney
}

// Calculate converts the BTC amount due into an exact millisatoshi snapshot.
func (m LightningPaymentMethod) Calculate() (Accounting, error) {
	due, err := LightMoneyFromBTC(m.AmountDue)
	if err != nil {
		return Accounting{}, fmt.Errorf("amount due of %s: %w", m.ID, err)
	}

	return Accounting{Due: due}, nil
}

type Invoice struct {
	ID        string
	StoreID   string
	Status    InvoiceStatus
	TopUp     bool
	ExpiresAt time.Time

	PaymentMethods []LightningPaymentMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentMethod returns the payment method matching id, if the invoice
// supports it.
func (i Invoice) PaymentMethod(id PaymentMethodID) (LightningPaymentMethod, bool) {
	for _, m := range i.PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}

	return LightningPaymentMethod{}, false
}

// IsUnsetTopUp reports whether the payer chooses the amount: a top-up
// invoice with no fixed amount due.
func (i Invoice) IsUnsetTopUp() bool {
	return i.TopUp
}

// SendableBounds computes the LNURL min/max sendable range for one payment
// method of the invoice. Top-up invoices accept anything from 1 msat up to
// the protocol maximum; fixed invoices pin both bounds to the amount due.
func (i Invoice) SendableBounds(m LightningPaymentMethod) (minSendable, maxSendable LightMoney, err error) {
	if i.IsUnsetTopUp() {
		return MilliSatoshi, MaxSendable, nil
	}

	accounting, err := m.Calculate()
	if err != nil {
		return 0, 0, err
	}

	return accounting.Due, accounting.Due, nil
}
