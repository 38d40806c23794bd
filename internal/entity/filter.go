package entity

type PaymentMethodFilter struct {
	State   *string
	Issued  *bool
	Page    uint64
	Limit   uint64
	SortBy  PaymentMethodSortCol
	OrderBy OrderByCol
}

type PaymentMethodSortCol string

const (
	SortByInvoiceID PaymentMethodSortCol = "invoice_id"
	SortByCreatedAt PaymentMethodSortCol = "created_at"
	SortByUpdatedAt PaymentMethodSortCol = "updated_at"
)

func (c PaymentMethodSortCol) String() string {
	return string(c)
}

func (c PaymentMethodSortCol) IsValid() bool {
	switch c {
	case SortByInvoiceID, SortByCreatedAt, SortByUpdatedAt:
		return true
	}

	return false
}

type OrderByCol string

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) String() string {
	return string(o)
}

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
