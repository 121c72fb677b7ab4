package config

import "time"

type PriceNodeConfig struct {
	URL            string `yaml:"base-url" validate:"required,url"`
	Agent          string `yaml:"user-agent"`
	TimeoutSeconds int64  `yaml:"timeout-seconds" validate:"gte=0"`
}

func (p *PriceNodeConfig) BaseURL() string {
	return p.URL
}

func (p *PriceNodeConfig) UserAgent() string {
	return p.Agent
}

// Timeout of zero leaves the http client without a deadline.
func (p *PriceNodeConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}
