package config

import "max.ks1230/grocery-bot/internal/entity/currency"

const (
	RatesSourceStatic = "static"
	RatesSourceFixer  = "fixer"
	RatesSourceStored = "stored"
)

type AppConfig struct {
	DefaultCurrencyName     string `yaml:"default-currency"`
	RatesSourceName         string `yaml:"rates-source"`
	RatePullingDelayMinutes int64  `yaml:"rate-pulling-delay-minutes"`
	MetricsAddress          string `yaml:"metrics-address"`
	AcceptorPort            int    `yaml:"acceptor-port"`
	AcceptorAddress         string `yaml:"acceptor-address"`
}

// DefaultCurrency is used for users who never picked one.
func (s *AppConfig) DefaultCurrency() currency.Code {
	if s.DefaultCurrencyName == "" {
		return currency.USD
	}
	return currency.Code(s.DefaultCurrencyName)
}

func (s *AppConfig) RatesSource() string {
	if s.RatesSourceName == "" {
		return RatesSourceStatic
	}
	return s.RatesSourceName
}

func (s *AppConfig) PullingDelayMinutes() int64 {
	return s.RatePullingDelayMinutes
}

func (s *AppConfig) MetricsAddr() string {
	return s.MetricsAddress
}

func (s *AppConfig) Port() int {
	return s.AcceptorPort
}

func (s *AppConfig) AcceptorAddr() string {
	return s.AcceptorAddress
}
