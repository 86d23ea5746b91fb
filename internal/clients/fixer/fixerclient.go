package fixer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/logger"
)

const (
	latestRatesUrl = "https://api.apilayer.com/fixer/latest"
	baseParam      = "base"
	relativesParam = "symbols"
	requestTimeout = 10 * time.Second
)

type config interface {
	ApiKey() string
	URL() string
}

type Client struct {
	apiKey string
	url    string
	client *http.Client
}

type ratesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
}

func New(config config) *Client {
	url := config.URL()
	if url == "" {
		url = latestRatesUrl
	}
	return &Client{
		apiKey: config.ApiKey(),
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) GetRates(ctx context.Context, base currency.Code, relatives []currency.Code) (map[currency.Code]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	symbols := make([]string, 0, len(relatives))
	for _, code := range relatives {
		symbols = append(symbols, code.String())
	}

	req.Header.Set("apikey", c.apiKey)
	q := req.URL.Query()
	q.Add(baseParam, base.String())
	q.Add(relativesParam, strings.Join(symbols, ","))
	req.URL.RawQuery = q.Encode()

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting fixer")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}
	logger.Info("new response from fixer", zap.Int("status", res.StatusCode), zap.ByteString("body", body))

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fixer responded with status %d", res.StatusCode)
	}

	rates := ratesResponse{}
	err = json.Unmarshal(body, &rates)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	if !rates.Success {
		return nil, errors.New("error from fixer (success = false)")
	}

	result := make(map[currency.Code]decimal.Decimal, len(rates.Rates))
	for name, val := range rates.Rates {
		result[currency.Code(name)] = decimal.NewFromFloat(val)
	}
	return result, nil
}
