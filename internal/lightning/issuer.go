package lightning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lngate/lnurlpay/internal/entity"
)

//go:generate mockgen -source=issuer.go -destination=../mocks/lightning_issuer.go -package=mocks

// ClientResolver picks the node client for a payment method.
type ClientResolver interface {
	Resolve(method entity.LightningPaymentMethod) (Client, error)
}

// DetailsStore persists issued payment request details. UpdateDetails must
// refuse to overwrite an already issued record with entity.ErrAlreadyIssued.
type DetailsStore interface {
	UpdateDetails(ctx context.Context, invoiceID string, id entity.PaymentMethodID, details entity.PaymentMethodDetails) error
	PaymentMethod(ctx context.Context, invoiceID string, id entity.PaymentMethodID) (entity.LightningPaymentMethod, error)
}

// Issuer generates BOLT11 payment requests on the resolved node and persists
// them, at most once per payment method.
type Issuer struct {
	resolver ClientResolver
	store    DetailsStore

	nodeTimeout time.Duration
	now         func() time.Time
}

func NewIssuer(resolver ClientResolver, store DetailsStore, nodeTimeout time.Duration) *Issuer {
	return &Issuer{
		resolver:    resolver,
		store:       store,
		nodeTimeout: nodeTimeout,
		now:         time.Now,
	}
}

// Issue returns the payment request details for the method, generating them
// on the node when none exist yet. Concurrent callers converge on a single
// record: the store arbitrates, losers adopt the winner's details.
func (i *Issuer) Issue(ctx context.Context, invoice entity.Invoice, method entity.LightningPaymentMethod, amount entity.LightMoney) (entity.PaymentMethodDetails, error) {
	if method.Details.Issued() {
		return method.Details, nil
	}

	ttl := invoice.ExpiresAt.Sub(i.now())
	if ttl <= 0 {
		return entity.PaymentMethodDetails{}, fmt.Errorf("invoice %s: %w", invoice.ID, entity.ErrExpired)
	}

	metadata, err := PayMetadata(invoice.ID)
	if err != nil {
		return entity.PaymentMethodDetails{}, err
	}

	client, err := i.resolver.Resolve(method)
	if err != nil {
		return entity.PaymentMethodDetails{}, err
	}

	// The node invoice and its DB record must not diverge when the wallet
	// disconnects mid-flight, so the remainder runs detached from the
	// request's cancellation.
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), i.nodeTimeout)
	defer cancel()

	nodeInvoice, err := client.CreateInvoice(nctx, CreateInvoiceParams{
		Amount:          amount,
		DescriptionHash: metadata.Hash,
		Expiry:          ttl,
	})
	if err != nil {
		return entity.PaymentMethodDetails{}, fmt.Errorf("create invoice on node: %w: %w", entity.ErrNodeFailure, err)
	}

	details := entity.PaymentMethodDetails{
		BOLT11:        nodeInvoice.BOLT11,
		NodeInvoiceID: nodeInvoice.ID,
		Amount:        amount,
	}

	err = i.store.UpdateDetails(nctx, invoice.ID, method.ID, details)
	if errors.Is(err, entity.ErrAlreadyIssued) {
		winner, err := i.store.PaymentMethod(nctx, invoice.ID, method.ID)
		if err != nil {
			return entity.PaymentMethodDetails{}, fmt.Errorf("reload payment method %s: %w", method.ID, err)
		}

		return winner.Details, nil
	}
	if err != nil {
		return entity.PaymentMethodDetails{}, fmt.Errorf("persist payment method %s: %w", method.ID, err)
	}

	return details, nil
}
