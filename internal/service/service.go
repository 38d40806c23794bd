package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lngate/lnurlpay/internal/entity"
	"github.com/lngate/lnurlpay/internal/fsm"
	"github.com/lngate/lnurlpay/internal/lightning"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service_deps.go -package=mocks

type Repository interface {
	Invoice(ctx context.Context, id string) (entity.Invoice, error)
	PaymentMethod(ctx context.Context, invoiceID string, id entity.PaymentMethodID) (entity.LightningPaymentMethod, error)
	SetPaymentMethodState(ctx context.Context, invoiceID string, id entity.PaymentMethodID, state string) error
	SetInvoiceStatus(ctx context.Context, id string, status entity.InvoiceStatus) error
	IssuedPaymentMethods(ctx context.Context) ([]entity.LightningPaymentMethod, error)
	RejectExpired(ctx context.Context, now time.Time) error
	PaymentMethods(ctx context.Context, f entity.PaymentMethodFilter) ([]entity.LightningPaymentMethod, int, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) error
}

type NetworkProvider interface {
	Network(cryptoCode string) (entity.NetworkDescriptor, bool)
}

type InvoiceIssuer interface {
	Issue(ctx context.Context, invoice entity.Invoice, method entity.LightningPaymentMethod, amount entity.LightMoney) (entity.PaymentMethodDetails, error)
}

type ClientResolver interface {
	Resolve(method entity.LightningPaymentMethod) (lightning.Client, error)
}

type Producer interface {
	SendInvoiceIssued(ctx context.Context, invoiceID string, id entity.PaymentMethodID, amount entity.LightMoney)
	SendInvoiceSettled(ctx context.Context, invoiceID string, id entity.PaymentMethodID)
}

type Service struct {
	repo     Repository
	networks NetworkProvider
	issuer   InvoiceIssuer
	resolver ClientResolver
	producer Producer
	states   *fsm.IssuanceStateMachine
	now      func() time.Time
}

func New(
	repo Repository,
	networks NetworkProvider,
	issuer InvoiceIssuer,
	resolver ClientResolver,
	producer Producer,
) *Service {
	return &Service{
		repo:     repo,
		networks: networks,
		issuer:   issuer,
		resolver: resolver,
		producer: producer,
		states:   fsm.NewIssuanceStateMachine(),
		now:      time.Now,
	}
}

// ResolvePayRequest serves both halves of the LNURL-pay exchange. Without an
// amount it answers with the sendable range and metadata; with one it issues
// (or reuses) the BOLT11 payment request.
func (s *Service) ResolvePayRequest(
	ctx context.Context,
	storeID, cryptoCode, invoiceID string,
	amount *entity.LightMoney,
) (entity.PayResolution, error) {
	network, ok := s.networks.Network(cryptoCode)
	if !ok || !network.SupportLightning {
		return entity.PayResolution{}, fmt.Errorf("network %q: %w", cryptoCode, entity.ErrNotFound)
	}

	inv, err := s.repo.Invoice(ctx, invoiceID)
	if err != nil {
		return entity.PayResolution{}, fmt.Errorf("get invoice %q: %w", invoiceID, err)
	}

	// A wrong store is indistinguishable from a missing invoice on purpose:
	// the URL must not leak whether the invoice exists elsewhere.
	if inv.StoreID != storeID {
		return entity.PayResolution{}, fmt.Errorf("invoice %q in store %q: %w", invoiceID, storeID, entity.ErrNotFound)
	}

	methodID := entity.NewLNURLPayMethodID(network.CryptoCode)

	method, ok := inv.PaymentMethod(methodID)
	if !ok {
		return entity.PayResolution{}, fmt.Errorf("invoice %q has no %s method: %w", invoiceID, methodID, entity.ErrNotFound)
	}

	if inv.Status != entity.InvoiceStatusNew {
		return entity.PayResolution{}, fmt.Errorf("invoice %q status is %q: %w", invoiceID, inv.Status, entity.ErrInvalidState)
	}

	if !inv.ExpiresAt.After(s.now()) {
		return entity.PayResolution{}, fmt.Errorf("invoice %q: %w", invoiceID, entity.ErrExpired)
	}

	metadata, err := lightning.PayMetadata(inv.ID)
	if err != nil {
		return entity.PayResolution{}, err
	}

	if amount == nil {
		return s.payRequestParams(inv, method, metadata)
	}

	return s.payCallback(ctx, inv, method, *amount)
}

func (s *Service) payRequestParams(
	inv entity.Invoice,
	method entity.LightningPaymentMethod,
	metadata lightning.Metadata,
) (entity.PayResolution, error) {
	minSendable, maxSendable, err := inv.SendableBounds(method)
	if err != nil {
		return entity.PayResolution{}, err
	}

	return entity.PayResolution{
		Params: &entity.PayRequestParams{
			Tag:            entity.PayRequestTag,
			MinSendable:    minSendable,
			MaxSendable:    maxSendable,
			CommentAllowed: 0,
			Metadata:       metadata.Raw,
		},
	}, nil
}

func (s *Service) payCallback(
	ctx context.Context,
	inv entity.Invoice,
	method entity.LightningPaymentMethod,
	amount entity.LightMoney,
) (entity.PayResolution, error) {
	// An already issued payment request is served as is, even when the
	// wallet retries with a different amount: the stored BOLT11 is the only
	// one the invoice will ever have.
	if method.Details.Issued() {
		cb := entity.NewPayCallback(method.Details.BOLT11)
		return entity.PayResolution{Callback: &cb}, nil
	}

	if !s.states.CanTransition(method.State, fsm.PayEventAmountChosen) {
		return entity.PayResolution{}, fmt.Errorf("payment method %s state is %q: %w", method.ID, method.State, entity.ErrInvalidState)
	}

	minSendable, maxSendable, err := inv.SendableBounds(method)
	if err != nil {
		return entity.PayResolution{}, err
	}

	if amount < minSendable || amount > maxSendable {
		return entity.PayResolution{}, fmt.Errorf("%w: amount %s is outside [%s, %s]",
			entity.ErrInvalidArgument, amount, minSendable, maxSendable)
	}

	details, err := s.issuer.Issue(ctx, inv, method, amount)
	if err != nil {
		return entity.PayResolution{}, fmt.Errorf("issue payment request: %w", err)
	}

	s.producer.SendInvoiceIssued(ctx, inv.ID, method.ID, details.Amount)

	slog.InfoContext(ctx, "payment request resolved",
		"invoice_id", inv.ID, "method", method.ID.String(), "amount", details.Amount.String())

	cb := entity.NewPayCallback(details.BOLT11)

	return entity.PayResolution{Callback: &cb}, nil
}

// PaymentMethods lists payment methods for the internal API.
func (s *Service) PaymentMethods(
	ctx context.Context,
	f entity.PaymentMethodFilter,
) ([]entity.LightningPaymentMethod, int, error) {
	if f.Limit == 0 {
		f.Limit = 50
	}

	if f.Page == 0 {
		f.Page = 1
	}

	if !f.SortBy.IsValid() {
		f.SortBy = entity.SortByCreatedAt
	}

	if !f.OrderBy.IsValid() {
		f.OrderBy = entity.DESC
	}

	return s.repo.PaymentMethods(ctx, f)
}

// CreateInvoice registers an invoice for the internal API.
func (s *Service) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	if inv.ID == "" || inv.StoreID == "" {
		return entity.Invoice{}, fmt.Errorf("%w: invoice id and store id are required", entity.ErrInvalidArgument)
	}

	if !inv.ExpiresAt.After(s.now()) {
		return entity.Invoice{}, fmt.Errorf("%w: expires_at is in the past", entity.ErrInvalidArgument)
	}

	now := s.now()

	inv.Status = entity.InvoiceStatusNew
	inv.CreatedAt = now
	inv.UpdatedAt = now

	for i := range inv.PaymentMethods {
		inv.PaymentMethods[i].InvoiceID = inv.ID
		inv.PaymentMethods[i].State = fsm.PayStateAwaitingAmount
		inv.PaymentMethods[i].CreatedAt = now
		inv.PaymentMethods[i].UpdatedAt = now
	}

	err := s.repo.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	return inv, nil
}

// UpdateSettlementStatus polls the node for every issued payment request and
// settles the ones that were paid.
func (s *Service) UpdateSettlementStatus(ctx context.Context) error {
	methods, err := s.repo.IssuedPaymentMethods(ctx)
	if err != nil {
		return fmt.Errorf("get issued payment methods: %w", err)
	}

	var errs []error

	for _, m := range methods {
		if m.Details.NodeInvoiceID == "" {
			errs = append(errs, fmt.Errorf("payment method %s of %q has no node invoice id", m.ID, m.InvoiceID))
			continue
		}

		client, err := s.resolver.Resolve(m)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolve client for %q: %w", m.InvoiceID, err))
			continue
		}

		nodeInvoice, err := client.LookupInvoice(ctx, m.Details.NodeInvoiceID)
		if err != nil {
			errs = append(errs, fmt.Errorf("lookup node invoice %q: %w", m.Details.NodeInvoiceID, err))
			continue
		}

		if !nodeInvoice.Settled {
			continue
		}

		next, err := s.states.Transition(ctx, m.State, fsm.PayEventSettle)
		if err != nil {
			errs = append(errs, fmt.Errorf("settle payment method %s of %q: %w", m.ID, m.InvoiceID, err))
			continue
		}

		err = s.repo.SetPaymentMethodState(ctx, m.InvoiceID, m.ID, next)
		if err != nil {
			errs = append(errs, fmt.Errorf("settle payment method %s of %q: %w", m.ID, m.InvoiceID, err))
			continue
		}

		err = s.repo.SetInvoiceStatus(ctx, m.InvoiceID, entity.InvoiceStatusSettled)
		if err != nil {
			errs = append(errs, fmt.Errorf("settle invoice %q: %w", m.InvoiceID, err))
			continue
		}

		s.producer.SendInvoiceSettled(ctx, m.InvoiceID, m.ID)

		slog.InfoContext(ctx, "invoice settled", "invoice_id", m.InvoiceID, "method", m.ID.String())
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// RejectExpiredInvoices sweeps overdue invoices.
func (s *Service) RejectExpiredInvoices(ctx context.Context) error {
	err := s.repo.RejectExpired(ctx, s.now())
	if err != nil {
		return fmt.Errorf("reject expired invoices: %w", err)
	}

	return nil
}
