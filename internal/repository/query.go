package repository

const (
	selectInvoice = `SELECT
		id,
		store_id,
		status,
		top_up,
		expires_at,
		created_at,
		updated_at
	FROM invoices`

	selectMethod = `SELECT
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
	FROM lightning_payment_methods`
)
