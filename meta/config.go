package meta

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"

	"statline/metrics"
)

// ApplicationConfig is a top-level block for application-level meta configuration.
type ApplicationConfig struct {
	SentryDSN string `yaml:"sentry_dsn"`
}

// MetricsConfig is a top-level block for metric name formatting configuration.
type MetricsConfig struct {
	GlobalPrefix       []string `yaml:"global_prefix"`
	PrependHost        bool     `yaml:"prepend_host"`
	PrependHostReverse bool     `yaml:"prepend_host_reverse"`
	Host               string   `yaml:"host"`
}

// StatsdConfig is a top-level block for statsd transport configuration.
type StatsdConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Delimiter string `yaml:"delimiter"`
}

// Config describes all application configuration options.
type Config struct {
	Application *ApplicationConfig `yaml:"application"`
	Metrics     *MetricsConfig     `yaml:"metrics"`
	Statsd      *StatsdConfig      `yaml:"statsd"`
}

// ParseConfig parses a Config struct instance from a file specified as a path on disk.
func ParseConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading config: err=%v", err)
	}

	var cfg *Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing config: err=%v", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Apply writes the parsed settings into the process-wide metrics configuration. Users
// can omit any block entirely to keep the corresponding defaults.
func (c *Config) Apply() {
	if c.Metrics != nil {
		metrics.SetGlobalPrefix(metrics.Path(c.Metrics.GlobalPrefix...))
		metrics.SetPrependHost(c.Metrics.PrependHost)
		metrics.SetPrependHostReverse(c.Metrics.PrependHostReverse)

		if c.Metrics.Host != "" {
			metrics.SetHost(metrics.Token(c.Metrics.Host))
		}
	}

	if c.Statsd != nil {
		if c.Statsd.Host != "" {
			metrics.SetStatsdHost(c.Statsd.Host)
		}

		if c.Statsd.Port != 0 {
			metrics.SetStatsdPort(c.Statsd.Port)
		}

		if c.Statsd.Delimiter != "" {
			metrics.SetStatsdDelimiter(c.Statsd.Delimiter)
		}
	}
}

// validate the contents of the configuration. Returns an error if validation failed; nil otherwise.
func (c *Config) validate() error {
	if c.Statsd != nil {
		if c.Statsd.Port < 0 || c.Statsd.Port > 65535 {
			return fmt.Errorf("config: statsd port out of range: port=%d", c.Statsd.Port)
		}
	}

	return nil
}
