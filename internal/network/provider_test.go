package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProvider_Network(t *testing.T) {
	t.Parallel()

	p := NewProvider([]string{"btc", " LTC ", ""})

	n, ok := p.Network("BTC")
	require.True(t, ok)
	require.Equal(t, "BTC", n.CryptoCode)
	require.True(t, n.SupportLightning)

	_, ok = p.Network("ltc")
	require.True(t, ok)

	_, ok = p.Network("DOGE")
	require.False(t, ok)
}
