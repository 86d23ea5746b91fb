package currency

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	INR Code = "INR"
)

// Base is the currency every exchange rate is expressed against.
const Base = USD

var ErrUnknownCurrency = errors.New("unknown currency")

var Codes = []Code{USD, EUR, GBP, INR}

type Info struct {
	Code         Code
	Symbol       string
	Name         string
	ExchangeRate decimal.Decimal
}

// Rate is one persisted observation of an exchange rate.
type Rate struct {
	Code      Code
	Value     decimal.Decimal
	UpdatedAt time.Time
}

// Approximate rates, units per 1 USD. Not refreshed; live values come from rates.Table.
var table = map[Code]Info{
	USD: {Code: USD, Symbol: "$", Name: "US Dollar", ExchangeRate: decimal.NewFromInt(1)},
	EUR: {Code: EUR, Symbol: "€", Name: "Euro", ExchangeRate: decimal.RequireFromString("0.85")},
	GBP: {Code: GBP, Symbol: "£", Name: "British Pound", ExchangeRate: decimal.RequireFromString("0.73")},
	INR: {Code: INR, Symbol: "₹", Name: "Indian Rupee", ExchangeRate: decimal.RequireFromString("83.0")},
}

func Lookup(code Code) (Info, error) {
	info, ok := table[code]
	if !ok {
		return Info{}, errors.Wrapf(ErrUnknownCurrency, "lookup %q", string(code))
	}
	return info, nil
}

// Parse accepts codes in any case, surrounded by whitespace.
func Parse(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, err := Lookup(code); err != nil {
		return "", err
	}
	return code, nil
}

func (c Code) Valid() bool {
	_, ok := table[c]
	return ok
}

func (c Code) String() string {
	return string(c)
}
