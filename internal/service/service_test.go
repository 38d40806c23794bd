package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lngate/lnurlpay/internal/entity"
	"github.com/lngate/lnurlpay/internal/fsm"
	"github.com/lngate/lnurlpay/internal/mocks"
	"github.com/lngate/lnurlpay/internal/service"
)

const (
	testStoreID   = "store-1"
	testInvoiceID = "INV1"
)

type deps struct {
	repo     *mocks.MockRepository
	networks *mocks.MockNetworkProvider
	issuer   *mocks.MockInvoiceIssuer
	resolver *mocks.MockClientResolver
	producer *mocks.MockProducer
}

func newService(t *testing.T) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:     mocks.NewMockRepository(ctrl),
		networks: mocks.NewMockNetworkProvider(ctrl),
		issuer:   mocks.NewMockInvoiceIssuer(ctrl),
		resolver: mocks.NewMockClientResolver(ctrl),
		producer: mocks.NewMockProducer(ctrl),
	}

	return service.New(d.repo, d.networks, d.issuer, d.resolver, d.producer), d
}

func btcNetwork() entity.NetworkDescriptor {
	return entity.NetworkDescriptor{CryptoCode: "BTC", Name: "BTC", SupportLightning: true}
}

func newInvoice() entity.Invoice {
	return entity.Invoice{
		ID:        testInvoiceID,
		StoreID:   testStoreID,
		Status:    entity.InvoiceStatusNew,
		ExpiresAt: time.Now().Add(time.Hour),
		PaymentMethods: []entity.LightningPaymentMethod{
			{
				InvoiceID: testInvoiceID,
				ID:        entity.NewLNURLPayMethodID("BTC"),
				AmountDue: decimal.RequireFromString("0.00000025"),
				State:     fsm.PayStateAwaitingAmount,
			},
		},
	}
}

func TestService_ResolvePayRequest_Params(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
	d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(newInvoice(), nil)

	res, err := s.ResolvePayRequest(context.Background(), testStoreID, "BTC", testInvoiceID, nil)
	require.NoError(t, err)

	require.Nil(t, res.Callback)
	require.NotNil(t, res.Params)
	require.Equal(t, entity.PayRequestTag, res.Params.Tag)
	require.Equal(t, entity.LightMoney(25_000), res.Params.MinSendable)
	require.Equal(t, entity.LightMoney(25_000), res.Params.MaxSendable)
	require.Zero(t, res.Params.CommentAllowed)
	require.Equal(t, `[["text/plain","INV1"]]`, res.Params.Metadata)
}

func TestService_ResolvePayRequest_ParamsTopUp(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	inv := newInvoice()
	inv.TopUp = true
	inv.PaymentMethods[0].AmountDue = decimal.Zero

	d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
	d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(inv, nil)

	res, err := s.ResolvePayRequest(context.Background(), testStoreID, "BTC", testInvoiceID, nil)
	require.NoError(t, err)

	require.Equal(t, entity.MilliSatoshi, res.Params.MinSendable)
	require.Equal(t, entity.MaxSendable, res.Params.MaxSendable)
}

func TestService_ResolvePayRequest_Callback(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	inv := newInvoice()
	amount := entity.LightMoney(25_000)

	issued := entity.PaymentMethodDetails{
		BOLT11:        "lnbc250n1issued",
		NodeInvoiceID: "rhash1",
		Amount:        amount,
	}

	d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
	d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(inv, nil)
	d.issuer.EXPECT().Issue(context.Background(), inv, inv.PaymentMethods[0], amount).Return(issued, nil)
	d.producer.EXPECT().SendInvoiceIssued(context.Background(), testInvoiceID, inv.PaymentMethods[0].ID, amount)

	res, err := s.ResolvePayRequest(context.Background(), testStoreID, "BTC", testInvoiceID, &amount)
	require.NoError(t, err)

	require.Nil(t, res.Params)
	require.NotNil(t, res.Callback)
	require.Equal(t, "lnbc250n1issued", res.Callback.PR)
	require.Empty(t, res.Callback.Routes)
	require.NotNil(t, res.Callback.Routes)
	require.True(t, res.Callback.Disposable)
}

func TestService_ResolvePayRequest_CallbackReusesIssued(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	inv := newInvoice()
	inv.PaymentMethods[0].State = fsm.PayStateIssued
	inv.PaymentMethods[0].Details = entity.PaymentMethodDetails{
		BOLT11:        "lnbc250n1stored",
		NodeInvoiceID: "rhash1",
		Amount:        25_000,
	}

	d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
	d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(inv, nil)

	// A retry with a different amount still gets the stored payment request.
	amount := entity.LightMoney(50_000)

	res, err := s.ResolvePayRequest(context.Background(), testStoreID, "BTC", testInvoiceID, &amount)
	require.NoError(t, err)
	require.Equal(t, "lnbc250n1stored", res.Callback.PR)
}

func TestService_ResolvePayRequest_AmountOutOfRange(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true).Times(2)
	d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(newInvoice(), nil).Times(2)

	for _, amount := range []entity.LightMoney{24_999, 25_001} {
		amount := amount

		_, err := s.ResolvePayRequest(context.Background(), testStoreID, "BTC", testInvoiceID, &amount)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	}
}

func TestService_ResolvePayRequest_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(d deps)
		want    error
		storeID string
	}{
		{
			name:    "unknown network",
			storeID: testStoreID,
			setup: func(d deps) {
				d.networks.EXPECT().Network("BTC").Return(entity.NetworkDescriptor{}, false)
			},
			want: entity.ErrNotFound,
		},
		{
			name:    "invoice not found",
			storeID: testStoreID,
			setup: func(d deps) {
				d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
				d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).
					Return(entity.Invoice{}, entity.ErrNotFound)
			},
			want: entity.ErrNotFound,
		},
		{
			name:    "wrong store",
			storeID: "another-store",
			setup: func(d deps) {
				d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
				d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(newInvoice(), nil)
			},
			want: entity.ErrNotFound,
		},
		{
			name:    "settled invoice",
			storeID: testStoreID,
			setup: func(d deps) {
				inv := newInvoice()
				inv.Status = entity.InvoiceStatusSettled

				d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
				d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(inv, nil)
			},
			want: entity.ErrInvalidState,
		},
		{
			name:    "expired invoice",
			storeID: testStoreID,
			setup: func(d deps) {
				inv := newInvoice()
				inv.ExpiresAt = time.Now().Add(-time.Minute)

				d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
				d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(inv, nil)
			},
			want: entity.ErrExpired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t)
			tt.setup(d)

			_, err := s.ResolvePayRequest(context.Background(), tt.storeID, "BTC", testInvoiceID, nil)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_ResolvePayRequest_RejectedMethod(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	inv := newInvoice()
	inv.PaymentMethods[0].State = fsm.PayStateRejected

	d.networks.EXPECT().Network("BTC").Return(btcNetwork(), true)
	d.repo.EXPECT().Invoice(context.Background(), testInvoiceID).Return(inv, nil)

	amount := entity.LightMoney(25_000)

	_, err := s.ResolvePayRequest(context.Background(), testStoreID, "BTC", testInvoiceID, &amount)
	require.ErrorIs(t, err, entity.ErrInvalidState)
}

func TestService_UpdateSettlementStatus(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	methods := []entity.LightningPaymentMethod{
		{
			InvoiceID: "INV-settled",
			ID:        entity.NewLNURLPayMethodID("BTC"),
			State:     fsm.PayStateIssued,
			Details:   entity.PaymentMethodDetails{BOLT11: "lnbc1", NodeInvoiceID: "rhash1", Amount: 1000},
		},
		{
			InvoiceID: "INV-pending",
			ID:        entity.NewLNURLPayMethodID("BTC"),
			State:     fsm.PayStateIssued,
			Details:   entity.PaymentMethodDetails{BOLT11: "lnbc2", NodeInvoiceID: "rhash2", Amount: 1000},
		},
	}

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	d.repo.EXPECT().IssuedPaymentMethods(context.Background()).Return(methods, nil)
	d.resolver.EXPECT().Resolve(methods[0]).Return(client, nil)
	d.resolver.EXPECT().Resolve(methods[1]).Return(client, nil)
	client.EXPECT().LookupInvoice(context.Background(), "rhash1").
		Return(entity.NodeInvoice{ID: "rhash1", Settled: true}, nil)
	client.EXPECT().LookupInvoice(context.Background(), "rhash2").
		Return(entity.NodeInvoice{ID: "rhash2", Settled: false}, nil)
	d.repo.EXPECT().SetPaymentMethodState(context.Background(), "INV-settled", methods[0].ID, fsm.PayStateSettled).Return(nil)
	d.repo.EXPECT().SetInvoiceStatus(context.Background(), "INV-settled", entity.InvoiceStatusSettled).Return(nil)
	d.producer.EXPECT().SendInvoiceSettled(context.Background(), "INV-settled", methods[0].ID)

	err := s.UpdateSettlementStatus(context.Background())
	require.NoError(t, err)
}

func TestService_RejectExpiredInvoices(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	d.repo.EXPECT().RejectExpired(context.Background(), gomock.Any()).Return(nil)

	err := s.RejectExpiredInvoices(context.Background())
	require.NoError(t, err)
}

func TestService_PaymentMethods_Defaults(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	d.repo.EXPECT().
		PaymentMethods(context.Background(), entity.PaymentMethodFilter{
			Page:    1,
			Limit:   50,
			SortBy:  entity.SortByCreatedAt,
			OrderBy: entity.DESC,
		}).
		Return(nil, 0, nil)

	_, _, err := s.PaymentMethods(context.Background(), entity.PaymentMethodFilter{})
	require.NoError(t, err)
}

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	inv := entity.Invoice{
		ID:        testInvoiceID,
		StoreID:   testStoreID,
		ExpiresAt: time.Now().Add(time.Hour),
		PaymentMethods: []entity.LightningPaymentMethod{
			{ID: entity.NewLNURLPayMethodID("BTC"), AmountDue: decimal.RequireFromString("0.001")},
		},
	}

	d.repo.EXPECT().
		CreateInvoice(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.Invoice) error {
			require.Equal(t, entity.InvoiceStatusNew, got.Status)
			require.Equal(t, fsm.PayStateAwaitingAmount, got.PaymentMethods[0].State)
			require.Equal(t, testInvoiceID, got.PaymentMethods[0].InvoiceID)
			return nil
		})

	_, err := s.CreateInvoice(context.Background(), inv)
	require.NoError(t, err)

	_, err = s.CreateInvoice(context.Background(), entity.Invoice{StoreID: testStoreID, ExpiresAt: time.Now().Add(time.Hour)})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
