package config

type FixerConfig struct {
	FixerApiKey string `yaml:"api-key"`
	Endpoint    string `yaml:"url"`
}

func (f *FixerConfig) ApiKey() string {
	return f.FixerApiKey
}

// URL is empty unless overridden; the client then uses the public endpoint.
func (f *FixerConfig) URL() string {
	return f.Endpoint
}
