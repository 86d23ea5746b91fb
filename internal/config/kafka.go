package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	RepTopic   string   `yaml:"reports-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) ReportsTopic() string {
	if s.RepTopic == "" {
		return "budget-reports"
	}
	return s.RepTopic
}

// Enabled is false when no brokers are configured; /report is then unavailable.
func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
