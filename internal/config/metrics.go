package config

type MetricsConfig struct {
	Gateway string `yaml:"pushgateway-url" validate:"omitempty,url"`
	JobName string `yaml:"job" validate:"required"`
}

func (m *MetricsConfig) PushgatewayURL() string {
	return m.Gateway
}

func (m *MetricsConfig) Job() string {
	return m.JobName
}
