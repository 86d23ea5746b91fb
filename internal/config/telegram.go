package config

type TelegramConfig struct {
	ApiToken       string `yaml:"token"`
	TimeoutSeconds int    `yaml:"handle-timeout-seconds"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) HandleTimeoutSeconds() int {
	if t.TimeoutSeconds <= 0 {
		return 5
	}
	return t.TimeoutSeconds
}
