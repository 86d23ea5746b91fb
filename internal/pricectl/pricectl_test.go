package pricectl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

func run(t *testing.T, args ...string) (string, error) {
	flagRates, flagRaw, flagCurrency = "", false, string(currency.Base)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Convert(t *testing.T) {
	out, err := run(t, "convert", "10", "USD", "INR")
	require.NoError(t, err)
	assert.Equal(t, "₹830.00\n", out)

	out, err = run(t, "convert", "8.5", "eur", "usd", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	_, err = run(t, "convert", "10", "USD", "JPY")
	assert.Error(t, err)
}

func Test_Format(t *testing.T) {
	out, err := run(t, "format", "1234567.891", "USD")
	require.NoError(t, err)
	assert.Equal(t, "$1,234,567.89\n", out)

	out, err = run(t, "format", "10", "GBP")
	require.NoError(t, err)
	assert.Equal(t, "£7.30\n", out)

	_, err = run(t, "format", "ten", "USD")
	assert.Error(t, err)
}

func Test_RatesOverride(t *testing.T) {
	rates := writeFile(t, "rates.toml", "[rates]\nEUR = 0.5\n")

	out, err := run(t, "format", "10", "EUR", "--rates", rates)
	require.NoError(t, err)
	assert.Equal(t, "€5.00\n", out)

	bad := writeFile(t, "bad.toml", "[rates]\nUSD = 2\n")
	_, err = run(t, "format", "10", "EUR", "--rates", bad)
	assert.Error(t, err)
}

func Test_Currencies(t *testing.T) {
	out, err := run(t, "currencies")
	require.NoError(t, err)
	assert.Contains(t, out, "INR  ₹  Indian Rupee   83\n")
	assert.Contains(t, out, "USD  $  US Dollar      1\n")
}

func Test_Summary(t *testing.T) {
	items := writeFile(t, "items.toml", `
[[item]]
name = "Milk"
price = 1.5
quantity = 2
category = "dairy"
purchased = true

[[item]]
name = "Bread"
price = 2
`)

	out, err := run(t, "summary", items, "--currency", "usd")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"Items:     1/2 purchased (50%)\n"+
		"Total:     $5.00\n"+
		"Purchased: $3.00\n"+
		"Remaining: $2.00\n"+
		"  other      $2.00\n", out)
}

func Test_Summary_ShouldRejectInvalidItem(t *testing.T) {
	items := writeFile(t, "items.toml", "[[item]]\nname = \"\"\nprice = 1\n")
	_, err := run(t, "summary", items)
	assert.Error(t, err)
}
