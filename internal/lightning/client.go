package lightning

import (
	"context"
	"time"

	"github.com/lngate/lnurlpay/internal/entity"
)

//go:generate mockgen -source=client.go -destination=../mocks/lightning_client.go -package=mocks

// Client talks to a Lightning node. CreateInvoice must commit to the
// description hash passed in params, not to a plain description.
type Client interface {
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (entity.NodeInvoice, error)
	LookupInvoice(ctx context.Context, id string) (entity.NodeInvoice, error)
}

type CreateInvoiceParams struct {
	Amount          entity.LightMoney
	DescriptionHash string
	Expiry          time.Duration
}
