package budget

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrNoPayers      = errors.New("no member joined before the order")
	ErrNegativeTotal = errors.New("order total is negative")
)

type Member struct {
	Name     string
	JoinedAt time.Time
}

type Share struct {
	Member Member
	Amount decimal.Decimal
	// Exempt members joined after the order was placed.
	Exempt bool
}

var cent = decimal.New(1, -2)

// SplitEqually divides total among members who joined no later than orderedAt.
// Leftover cents go one each to the first payers, so the shares add up to the rounded total.
func SplitEqually(total decimal.Decimal, members []Member, orderedAt time.Time) ([]Share, error) {
	if total.IsNegative() {
		return nil, errors.Wrapf(ErrNegativeTotal, "split %s", total)
	}

	payers := 0
	for _, m := range members {
		if !m.JoinedAt.After(orderedAt) {
			payers++
		}
	}
	if payers == 0 {
		return nil, errors.Wrapf(ErrNoPayers, "split between %d members", len(members))
	}

	cents := total.Round(2).Shift(2).IntPart()
	each := cents / int64(payers)
	leftover := cents % int64(payers)

	shares := make([]Share, 0, len(members))
	for _, m := range members {
		if m.JoinedAt.After(orderedAt) {
			shares = append(shares, Share{Member: m, Amount: decimal.Zero, Exempt: true})
			continue
		}
		amount := each
		if leftover > 0 {
			amount++
			leftover--
		}
		shares = append(shares, Share{Member: m, Amount: decimal.NewFromInt(amount).Mul(cent)})
	}
	return shares, nil
}
