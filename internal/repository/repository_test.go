package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lngate/lnurlpay/internal/entity"
	"github.com/lngate/lnurlpay/internal/fsm"
	"github.com/lngate/lnurlpay/internal/repository"
	"github.com/lngate/lnurlpay/pkg/postgres"
)

func TestRepository_CreateInvoice(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	inv := newInvoice(t)

	err := repo.CreateInvoice(context.Background(), inv)
	require.NoError(t, err)

	got, err := repo.Invoice(context.Background(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.StoreID, got.StoreID)
	require.Equal(t, entity.InvoiceStatusNew, got.Status)
	require.Len(t, got.PaymentMethods, 1)

	m := got.PaymentMethods[0]
	require.Equal(t, entity.NewLNURLPayMethodID("BTC"), m.ID)
	require.True(t, m.AmountDue.Equal(inv.PaymentMethods[0].AmountDue))
	require.False(t, m.Details.Issued())
}

func TestRepository_Invoice_NotFound(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	_, err := repo.Invoice(context.Background(), uuid.Must(uuid.NewV4()).String())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_UpdateDetails(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	inv := newInvoice(t)
	methodID := inv.PaymentMethods[0].ID

	err := repo.CreateInvoice(context.Background(), inv)
	require.NoError(t, err)

	details := entity.PaymentMethodDetails{
		BOLT11:        "lnbc250n1first",
		NodeInvoiceID: "rhash1",
		Amount:        entity.LightMoney(25_000),
	}

	err = repo.UpdateDetails(context.Background(), inv.ID, methodID, details)
	require.NoError(t, err)

	got, err := repo.PaymentMethod(context.Background(), inv.ID, methodID)
	require.NoError(t, err)
	require.Equal(t, details, got.Details)
	require.Equal(t, fsm.PayStateIssued, got.State)

	// A second writer must not overwrite the stored payment request.
	err = repo.UpdateDetails(context.Background(), inv.ID, methodID, entity.PaymentMethodDetails{
		BOLT11:        "lnbc250n1second",
		NodeInvoiceID: "rhash2",
		Amount:        entity.LightMoney(50_000),
	})
	require.ErrorIs(t, err, entity.ErrAlreadyIssued)

	got, err = repo.PaymentMethod(context.Background(), inv.ID, methodID)
	require.NoError(t, err)
	require.Equal(t, details, got.Details)
}

func TestRepository_UpdateDetails_NotFound(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	err := repo.UpdateDetails(
		context.Background(),
		uuid.Must(uuid.NewV4()).String(),
		entity.NewLNURLPayMethodID("BTC"),
		entity.PaymentMethodDetails{BOLT11: "lnbc1"},
	)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_RejectExpired(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	overdue := newInvoice(t)
	overdue.ExpiresAt = time.Now().Add(-time.Hour)

	alive := newInvoice(t)

	for _, inv := range []entity.Invoice{overdue, alive} {
		err := repo.CreateInvoice(context.Background(), inv)
		require.NoError(t, err)
	}

	err := repo.RejectExpired(context.Background(), time.Now())
	require.NoError(t, err)

	got, err := repo.Invoice(context.Background(), overdue.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusExpired, got.Status)
	require.Equal(t, fsm.PayStateRejected, got.PaymentMethods[0].State)

	got, err = repo.Invoice(context.Background(), alive.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusNew, got.Status)
	require.Equal(t, fsm.PayStateAwaitingAmount, got.PaymentMethods[0].State)
}

func TestRepository_PaymentMethods_Filter(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	inv := newInvoice(t)

	err := repo.CreateInvoice(context.Background(), inv)
	require.NoError(t, err)

	err = repo.UpdateDetails(context.Background(), inv.ID, inv.PaymentMethods[0].ID, entity.PaymentMethodDetails{
		BOLT11:        "lnbc250n1filter",
		NodeInvoiceID: "rhash-filter",
		Amount:        entity.LightMoney(25_000),
	})
	require.NoError(t, err)

	issued := true
	state := fsm.PayStateIssued

	methods, total, err := repo.PaymentMethods(context.Background(), entity.PaymentMethodFilter{
		State:   &state,
		Issued:  &issued,
		Page:    1,
		Limit:   100,
		SortBy:  entity.SortByCreatedAt,
		OrderBy: entity.DESC,
	})
	require.NoError(t, err)
	require.NotZero(t, total)

	var found bool

	for _, m := range methods {
		require.True(t, m.Details.Issued())

		if m.InvoiceID == inv.ID {
			found = true
		}
	}

	require.True(t, found)
}

func newInvoice(t *testing.T) entity.Invoice {
	t.Helper()

	now := time.Now().Truncate(time.Millisecond)

	return entity.Invoice{
		ID:        uuid.Must(uuid.NewV4()).String(),
		StoreID:   uuid.Must(uuid.NewV4()).String(),
		Status:    entity.InvoiceStatusNew,
		ExpiresAt: now.Add(time.Hour),
		PaymentMethods: []entity.LightningPaymentMethod{
			{
				ID:        entity.NewLNURLPayMethodID("BTC"),
				AmountDue: decimal.RequireFromString("0.00000025"),
				State:     fsm.PayStateAwaitingAmount,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	err = postgres.UpMigrations(dsn)
	require.NoError(t, err)

	repo := repository.New(pool)

	return repo
}
