// Package network keeps the static registry of payment networks the gateway
// serves.
package network

import (
	"strings"

	"github.com/lngate/lnurlpay/internal/entity"
)

type Provider struct {
	networks map[string]entity.NetworkDescriptor
}

// NewProvider registers one lightning-capable network per configured crypto
// code.
func NewProvider(cryptoCodes []string) *Provider {
	networks := make(map[string]entity.NetworkDescriptor, len(cryptoCodes))
	for _, code := range cryptoCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}

		networks[code] = entity.NetworkDescriptor{
			CryptoCode:       code,
			Name:             code,
			SupportLightning: true,
		}
	}

	return &Provider{networks: networks}
}

// Network looks a network up by crypto code, case-insensitively.
func (p *Provider) Network(cryptoCode string) (entity.NetworkDescriptor, bool) {
	n, ok := p.networks[strings.ToUpper(cryptoCode)]
	return n, ok
}
