package grocery

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Category string

const (
	Produce   Category = "produce"
	Dairy     Category = "dairy"
	Meat      Category = "meat"
	Snacks    Category = "snacks"
	Beverages Category = "beverages"
	Other     Category = "other"
)

var Categories = []Category{Produce, Dairy, Meat, Snacks, Beverages, Other}

var ErrInvalidItem = errors.New("invalid item")

// Item is a priced list entry. Price is kept in the base currency.
type Item struct {
	ID        int64
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Category  Category
	Purchased bool
	Created   time.Time
}

func (i Item) Cost() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.Wrap(ErrInvalidItem, "empty name")
	}
	if i.Quantity < 1 {
		return errors.Wrapf(ErrInvalidItem, "quantity %d", i.Quantity)
	}
	if i.Price.IsNegative() {
		return errors.Wrapf(ErrInvalidItem, "price %s", i.Price)
	}
	return nil
}

// ParseCategory maps unknown input to Other.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c
		}
	}
	return Other
}
