package config

type TracingConfig struct {
	On            bool   `yaml:"enabled"`
	Service       string `yaml:"service-name" validate:"required"`
	AgentHostPort string `yaml:"agent" validate:"omitempty,hostname_port"`
}

func (t *TracingConfig) Enabled() bool {
	return t.On
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) Agent() string {
	return t.AgentHostPort
}
