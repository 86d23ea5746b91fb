package config

type MemcachedConfig struct {
	NodeHosts  []string `yaml:"hosts"`
	TTLSeconds int32    `yaml:"ttl-seconds"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

// TTL of cached budget texts, in seconds. Zero means no expiry.
func (s *MemcachedConfig) TTL() int32 {
	return s.TTLSeconds
}

func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}
