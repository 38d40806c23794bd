package lightning

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lngate/lnurlpay/internal/entity"
	"github.com/lngate/lnurlpay/pkg/lnconnect"
)

// CreateClientFunc builds a Client from parsed connection settings.
type CreateClientFunc func(settings lnconnect.Settings) (Client, error)

// Resolver picks the lightning node for a payment method. A connection
// string configured on the method itself wins; otherwise the internal node
// configured for the method's crypto code is used.
type Resolver struct {
	create CreateClientFunc

	mu       sync.Mutex
	internal map[string]string
	cache    map[string]Client
}

// NewResolver wires a resolver over the internal node connection strings,
// keyed by crypto code.
func NewResolver(internalNodes map[string]string, create CreateClientFunc) *Resolver {
	internal := make(map[string]string, len(internalNodes))
	for code, conn := range internalNodes {
		internal[strings.ToUpper(code)] = conn
	}

	return &Resolver{
		create:   create,
		internal: internal,
		cache:    make(map[string]Client),
	}
}

// Resolve returns the client for the given payment method, building and
// caching it on first use. entity.ErrConfigurationMissing is returned when
// neither the method nor the gateway configures a node for the crypto code.
func (r *Resolver) Resolve(method entity.LightningPaymentMethod) (Client, error) {
	conn := strings.TrimSpace(method.ExternalNode)
	if conn == "" {
		conn = r.internal[strings.ToUpper(method.ID.CryptoCode)]
	}

	if conn == "" {
		return nil, fmt.Errorf("no lightning node for %s: %w", method.ID, entity.ErrConfigurationMissing)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.cache[conn]; ok {
		return client, nil
	}

	settings, err := lnconnect.Parse(conn)
	if err != nil {
		return nil, fmt.Errorf("connection string of %s: %w: %w", method.ID, entity.ErrConfigurationMissing, err)
	}

	client, err := r.create(settings)
	if err != nil {
		return nil, fmt.Errorf("create client for %s: %w", method.ID, err)
	}
	r.cache[conn] = client

	return client, nil
}
