package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile          = "data/config.yaml"
	configEnvKey        = "TRADE_TOOLS_CONFIG"
	defaultPriceNodeURL = "https://price.bisq.wiz.biz"
)

type config struct {
	Form      FormConfig      `yaml:"form"`
	PriceNode PriceNodeConfig `yaml:"pricenode"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	path := os.Getenv(configEnvKey)
	if path == "" {
		path = configFile
	}
	return Load(path)
}

// Load reads the yaml file at path. A missing file is not an error, defaults are used instead.
func Load(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading config file")
	}

	if err == nil {
		err = yaml.Unmarshal(rawYAML, &s.config)
		if err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	err = validator.New().Struct(&s.config)
	if err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return s, nil
}

func defaults() config {
	return config{
		PriceNode: PriceNodeConfig{URL: defaultPriceNodeURL},
		Memcached: MemcachedConfig{TTLSeconds: 60},
		Tracing:   TracingConfig{Service: "trade-test-tools", AgentHostPort: "127.0.0.1:6831"},
		Metrics:   MetricsConfig{JobName: "trade-test-tools"},
	}
}

func (s *Service) Form() *FormConfig {
	return &s.config.Form
}

func (s *Service) PriceNode() *PriceNodeConfig {
	return &s.config.PriceNode
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}
