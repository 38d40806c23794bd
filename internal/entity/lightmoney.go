package entity

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// LightMoney is a millisatoshi denominated amount. The full bitcoin supply
// in millisatoshis fits an int64, so arithmetic stays exact without decimals.
type LightMoney int64

const (
	MilliSatoshi LightMoney = 1
	Satoshi                 = 1000 * MilliSatoshi
	BTC                     = 100_000_000 * Satoshi
)

// MaxSendable is the protocol ceiling for payer-chosen amounts: the whole
// bitcoin supply.
const MaxSendable = 21_000_000 * BTC

// LightMoneyFromBTC converts a BTC denominated decimal into millisatoshis.
// Amounts with sub-millisatoshi precision, negative amounts and amounts above
// the supply are rejected.
func LightMoneyFromBTC(btc decimal.Decimal) (LightMoney, error) {
	msat := btc.Mul(decimal.New(1, 11))
	if !msat.IsInteger() {
		return 0, fmt.Errorf("%s BTC has sub-millisatoshi precision: %w", btc, ErrInvalidArgument)
	}

	m := LightMoney(msat.IntPart())
	if m < 0 || m > MaxSendable {
		return 0, fmt.Errorf("%s BTC is out of range: %w", btc, ErrInvalidArgument)
	}

	return m, nil
}

// ParseLightMoney parses a positive millisatoshi amount from its decimal
// string form, as LNURL callbacks carry it.
func ParseLightMoney(s string) (LightMoney, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, ErrInvalidArgument)
	}

	if n <= 0 {
		return 0, fmt.Errorf("amount %d is not positive: %w", n, ErrInvalidArgument)
	}

	return LightMoney(n), nil
}

func (m LightMoney) MilliSatoshis() int64 {
	return int64(m)
}

func (m LightMoney) String() string {
	return strconv.FormatInt(int64(m), 10) + " msat"
}
