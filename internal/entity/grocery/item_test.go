package grocery

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_Item_Cost(t *testing.T) {
	item := Item{Name: "Milk", Quantity: 3, Price: decimal.RequireFromString("1.25")}
	assert.Equal(t, "3.75", item.Cost().String())
}

func Test_Item_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"ok", Item{Name: "Bread", Quantity: 1, Price: decimal.Zero}, false},
		{"empty name", Item{Name: " ", Quantity: 1}, true},
		{"zero quantity", Item{Name: "Eggs", Quantity: 0}, true},
		{"negative price", Item{Name: "Eggs", Quantity: 2, Price: decimal.NewFromInt(-1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidItem))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_ParseCategory(t *testing.T) {
	assert.Equal(t, Dairy, ParseCategory("Dairy"))
	assert.Equal(t, Other, ParseCategory("tools"))
}
