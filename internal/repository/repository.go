package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lngate/lnurlpay/internal/entity"
	"github.com/lngate/lnurlpay/internal/fsm"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// Invoice loads an invoice together with its payment methods.
func (r *Repository) Invoice(ctx context.Context, id string) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"

	inv, err := scanInvoice(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return entity.Invoice{}, err
	}

	q = selectMethod + " WHERE invoice_id = $1"

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	defer rows.Close()

	for rows.Next() {
		m, err := scanMethod(rows)
		if err != nil {
			return entity.Invoice{}, err
		}

		inv.PaymentMethods = append(inv.PaymentMethods, m)
	}

	return inv, nil
}

func (r *Repository) PaymentMethod(
	ctx context.Context,
	invoiceID string,
	id entity.PaymentMethodID,
) (entity.LightningPaymentMethod, error) {
	q := selectMethod + " WHERE invoice_id = $1 AND crypto_code = $2 AND payment_type = $3"
	return scanMethod(r.db.QueryRow(ctx, q, invoiceID, id.CryptoCode, id.Type))
}

// UpdateDetails stores the issued payment request. The guard on bolt11 makes
// the first writer win: when another request already issued, no row matches
// and entity.ErrAlreadyIssued is returned so the caller can adopt the stored
// record.
func (r *Repository) UpdateDetails(
	ctx context.Context,
	invoiceID string,
	id entity.PaymentMethodID,
	details entity.PaymentMethodDetails,
) error {
	const q = `
	UPDATE lightning_payment_methods
	SET bolt11 = $1, node_invoice_id = $2, amount_msat = $3, state = $4, updated_at = $5
	WHERE invoice_id = $6 AND crypto_code = $7 AND payment_type = $8
		AND (bolt11 IS NULL OR bolt11 = '')
	`

	result, err := r.db.Exec(
		ctx,
		q,
		details.BOLT11,
		details.NodeInvoiceID,
		details.Amount.MilliSatoshis(),
		fsm.PayStateIssued,
		time.Now(),
		invoiceID,
		id.CryptoCode,
		id.Type,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		_, err := r.PaymentMethod(ctx, invoiceID, id)
		if err != nil {
			return err
		}

		return entity.ErrAlreadyIssued
	}

	return nil
}

func (r *Repository) SetPaymentMethodState(
	ctx context.Context,
	invoiceID string,
	id entity.PaymentMethodID,
	state string,
) error {
	const q = `
	UPDATE lightning_payment_methods
	SET state = $1, updated_at = $2
	WHERE invoice_id = $3 AND crypto_code = $4 AND payment_type = $5
	`

	result, err := r.db.Exec(ctx, q, state, time.Now(), invoiceID, id.CryptoCode, id.Type)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetInvoiceStatus(ctx context.Context, id string, status entity.InvoiceStatus) error {
	const q = `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, time.Now(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// IssuedPaymentMethods lists payment methods waiting for settlement on the
// node.
func (r *Repository) IssuedPaymentMethods(ctx context.Context) (methods []entity.LightningPaymentMethod, err error) {
	q := selectMethod + " WHERE state = $1"

	rows, err := r.db.Query(ctx, q, fsm.PayStateIssued)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		m, err := scanMethod(rows)
		if err != nil {
			return nil, err
		}

		methods = append(methods, m)
	}

	return methods, nil
}

// RejectExpired rejects the payment methods of overdue invoices and marks
// those invoices expired.
func (r *Repository) RejectExpired(ctx context.Context, now time.Time) error {
	const qMethods = `
	UPDATE lightning_payment_methods m
	SET state = $1, updated_at = $2
	FROM invoices i
	WHERE i.id = m.invoice_id
		AND i.expires_at < $3
		AND i.status IN ($4, $5)
		AND m.state <> $6
	`

	_, err := r.db.Exec(
		ctx,
		qMethods,
		fsm.PayStateRejected,
		now,
		now,
		entity.InvoiceStatusNew,
		entity.InvoiceStatusProcessing,
		fsm.PayStateSettled,
	)
	if err != nil {
		return fmt.Errorf("reject payment methods: %w", err)
	}

	const qInvoices = `
	UPDATE invoices
	SET status = $1, updated_at = $2
	WHERE expires_at < $3 AND status IN ($4, $5)
	`

	_, err = r.db.Exec(
		ctx,
		qInvoices,
		entity.InvoiceStatusExpired,
		now,
		now,
		entity.InvoiceStatusNew,
		entity.InvoiceStatusProcessing,
	)
	if err != nil {
		return fmt.Errorf("expire invoices: %w", err)
	}

	return nil
}

func (r *Repository) PaymentMethods(
	ctx context.Context,
	f entity.PaymentMethodFilter,
) ([]entity.LightningPaymentMethod, int, error) {
	stmt := sq.Select(
		"invoice_id",
		"crypto_code",
		"payment_type",
		"amount_due",
		"external_node",
		"state",
		"bolt11",
		"node_invoice_id",
		"amount_msat",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("lightning_payment_methods").PlaceholderFormat(sq.Dollar)

	stmt = applyPaymentMethodFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	methods := make([]entity.LightningPaymentMethod, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var m entity.LightningPaymentMethod

		var count int

		var amountMsat int64

		err = rows.Scan(
			&m.InvoiceID,
			&m.ID.CryptoCode,
			&m.ID.Type,
			&m.AmountDue,
			(*zeronull.Text)(&m.ExternalNode),
			&m.State,
			(*zeronull.Text)(&m.Details.BOLT11),
			(*zeronull.Text)(&m.Details.NodeInvoiceID),
			&amountMsat,
			&m.CreatedAt,
			&m.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		m.Details.Amount = entity.LightMoney(amountMsat)
		totalCount = count

		methods = append(methods, m)
	}

	return methods, totalCount, nil
}

func applyPaymentMethodFilter(stmt sq.SelectBuilder, f entity.PaymentMethodFilter) sq.SelectBuilder {
	if f.State != nil {
		stmt = stmt.Where(sq.Eq{"state": *f.State})
	}

	if f.Issued != nil {
		if *f.Issued {
			stmt = stmt.Where(sq.And{sq.NotEq{"bolt11": nil}, sq.NotEq{"bolt11": ""}})
		} else {
			stmt = stmt.Where(sq.Or{sq.Eq{"bolt11": nil}, sq.Eq{"bolt11": ""}})
		}
	}

	return stmt
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) error {
	const qInvoice = `
	INSERT INTO invoices (
		id,
		store_id,
		status,
		top_up,
		expires_at,
		created_at,
		updated_at
	)
	VALUES ( $1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		qInvoice,
		inv.ID,
		inv.StoreID,
		inv.Status,
		inv.TopUp,
		inv.ExpiresAt,
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	const qMethod = `
	INSERT INTO lightning_payment_methods (
		invoice_id,
		crypto_code,
		payment_type,
		amount_due,
		external_node,
		state,
		bolt11,
		node_invoice_id,
		amount_msat,
		created_at,
		updated_at
	)
	VALUES ( $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, m := range inv.PaymentMethods {
		_, err := r.db.Exec(
			ctx,
			qMethod,
			inv.ID,
			m.ID.CryptoCode,
			m.ID.Type,
			m.AmountDue,
			zeronull.Text(m.ExternalNode),
			m.State,
			zeronull.Text(m.Details.BOLT11),
			zeronull.Text(m.Details.NodeInvoiceID),
			m.Details.Amount.MilliSatoshis(),
			m.CreatedAt,
			m.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert payment method %s: %w", m.ID, err)
		}
	}

	return nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.StoreID,
		&inv.Status,
		&inv.TopUp,
		&inv.ExpiresAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}

func scanMethod(row pgx.Row) (m entity.LightningPaymentMethod, err error) {
	var amountMsat int64

	err = row.Scan(
		&m.InvoiceID,
		&m.ID.CryptoCode,
		&m.ID.Type,
		&m.AmountDue,
		(*zeronull.Text)(&m.ExternalNode),
		&m.State,
		(*zeronull.Text)(&m.Details.BOLT11),
		(*zeronull.Text)(&m.Details.NodeInvoiceID),
		&amountMsat,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.LightningPaymentMethod{}, entity.ErrNotFound
		}

		return entity.LightningPaymentMethod{}, err
	}

	m.Details.Amount = entity.LightMoney(amountMsat)

	return m, nil
}
