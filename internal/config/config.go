package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "data/config.yaml"

	configFileEnv    = "CONFIG_FILE"
	telegramTokenEnv = "TELEGRAM_TOKEN"
	fixerAPIKeyEnv   = "FIXER_API_KEY"
	dbPasswordEnv    = "DB_PASSWORD"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Fixer     FixerConfig     `yaml:"fixer"`
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

// New loads .env (if present), then the YAML file named by CONFIG_FILE or data/config.yaml.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = defaultConfigFile
	}
	return NewFromFile(path)
}

func NewFromFile(path string) (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.applyEnv()
	if err = s.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

// applyEnv lets secrets live outside the config file.
func (s *Service) applyEnv() {
	if v := os.Getenv(telegramTokenEnv); v != "" {
		s.config.Telegram.ApiToken = v
	}
	if v := os.Getenv(fixerAPIKeyEnv); v != "" {
		s.config.Fixer.FixerApiKey = v
	}
	if v := os.Getenv(dbPasswordEnv); v != "" {
		s.config.Storage.Pswd = v
	}
}

func (s *Service) validate() error {
	if !s.config.App.DefaultCurrency().Valid() {
		return errors.Errorf("unknown default currency %q", s.config.App.DefaultCurrencyName)
	}
	switch s.config.App.RatesSource() {
	case RatesSourceStatic:
	case RatesSourceFixer, RatesSourceStored:
		if s.config.App.PullingDelayMinutes() <= 0 {
			return errors.New("rate-pulling-delay-minutes must be positive")
		}
	default:
		return errors.Errorf("unknown rates source %q", s.config.App.RatesSourceName)
	}
	switch s.config.Storage.Driver() {
	case "memory", "sqlite", "postgres":
	default:
		return errors.Errorf("unknown storage driver %q", s.config.Storage.DriverName)
	}
	return nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Fixer() *FixerConfig {
	return &s.config.Fixer
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
