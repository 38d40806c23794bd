package lnconnect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse("type=lnd-rest;server=https://lnd.example.com:8080/;macaroonhex=0201036c6e64")
	require.NoError(t, err)

	require.Equal(t, TypeLNDRest, s.Type)
	require.Equal(t, "https://lnd.example.com:8080/", s.Server.String())
	require.Equal(t, []byte{0x02, 0x01, 0x03, 0x6c, 0x6e, 0x64}, s.Macaroon)
	require.Equal(t, "0201036c6e64", s.MacaroonHex)
	require.False(t, s.AllowInsecure)
}

func TestParse_CaseAndWhitespace(t *testing.T) {
	t.Parallel()

	s, err := Parse(" Type=LND-REST; Server=https://lnd.local ; MacaroonHex=AB ;AllowInsecure=True")
	require.NoError(t, err)

	require.Equal(t, TypeLNDRest, s.Type)
	require.Equal(t, "ab", s.MacaroonHex)
	require.True(t, s.AllowInsecure)
}

func TestParse_InsecureServer(t *testing.T) {
	t.Parallel()

	_, err := Parse("type=lnd-rest;server=http://lnd.local;macaroonhex=ab")
	require.Error(t, err)

	s, err := Parse("type=lnd-rest;server=http://lnd.local;macaroonhex=ab;allowinsecure=true")
	require.NoError(t, err)
	require.Equal(t, "http", s.Server.Scheme)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty", raw: "  ", want: ErrEmpty},
		{name: "unknown type", raw: "type=clightning;server=https://x;macaroonhex=ab", want: ErrUnknownType},
		{name: "missing server", raw: "type=lnd-rest;macaroonhex=ab", want: ErrMissingServer},
		{name: "missing macaroon", raw: "type=lnd-rest;server=https://x", want: ErrMissingMacaroon},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.raw)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_BadPairs(t *testing.T) {
	t.Parallel()

	_, err := Parse("type=lnd-rest;server=https://x;macaroonhex=zz")
	require.Error(t, err)

	_, err = Parse("type=lnd-rest;nonsense;server=https://x;macaroonhex=ab")
	require.Error(t, err)

	_, err = Parse("type=lnd-rest;server=https://x;macaroonhex=ab;color=red")
	require.Error(t, err)
}
