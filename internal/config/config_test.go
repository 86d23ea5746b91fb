package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_NewFromFile_ShouldParseSections(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: tg-token
app:
  default-currency: INR
  rates-source: fixer
  rate-pulling-delay-minutes: 30
  acceptor-port: 8081
storage:
  driver: sqlite
  path: /tmp/grocery.db
kafka:
  brokers: [localhost:9092]
  reports-topic: budget-reports
memcached:
  hosts: [localhost:11211]
`)
	cfg, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "tg-token", cfg.Telegram().Token())
	assert.Equal(t, currency.INR, cfg.App().DefaultCurrency())
	assert.Equal(t, RatesSourceFixer, cfg.App().RatesSource())
	assert.Equal(t, int64(30), cfg.App().PullingDelayMinutes())
	assert.Equal(t, 8081, cfg.App().Port())
	assert.Equal(t, "sqlite", cfg.Storage().Driver())
	assert.Equal(t, "/tmp/grocery.db", cfg.Storage().Path())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka().Brokers())
	assert.Equal(t, []string{"localhost:11211"}, cfg.Memcached().Hosts())
}

func Test_NewFromFile_Defaults(t *testing.T) {
	cfg, err := NewFromFile(writeConfig(t, "telegram:\n  token: x\n"))
	require.NoError(t, err)

	assert.Equal(t, currency.USD, cfg.App().DefaultCurrency())
	assert.Equal(t, RatesSourceStatic, cfg.App().RatesSource())
	assert.Equal(t, "memory", cfg.Storage().Driver())
}

func Test_NewFromFile_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(telegramTokenEnv, "from-env")
	t.Setenv(fixerAPIKeyEnv, "fixer-env")

	cfg, err := NewFromFile(writeConfig(t, "telegram:\n  token: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Telegram().Token())
	assert.Equal(t, "fixer-env", cfg.Fixer().ApiKey())
}

func Test_NewFromFile_Invalid(t *testing.T) {
	bodies := []string{
		"app:\n  default-currency: JPY\n",
		"app:\n  rates-source: fixer\n",
		"app:\n  rates-source: magic\n",
		"storage:\n  driver: mysql\n",
		"telegram: [",
	}
	for _, body := range bodies {
		_, err := NewFromFile(writeConfig(t, body))
		assert.Error(t, err, body)
	}

	_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
