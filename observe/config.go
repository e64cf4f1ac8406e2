package observe

import (
	"github.com/kbukum/resultiter/errors"
)

const defaultInstrumentationName = "github.com/kbukum/resultiter"

// Config selects which decorators Sequence and Drain apply.
type Config struct {
	Enabled     bool   `yaml:"enabled" mapstructure:"enabled"`
	LogFailures bool   `yaml:"log_failures" mapstructure:"log_failures"`
	Metrics     bool   `yaml:"metrics" mapstructure:"metrics"`
	Tracing     bool   `yaml:"tracing" mapstructure:"tracing"`
	MeterName   string `yaml:"meter_name" mapstructure:"meter_name"`
	TracerName  string `yaml:"tracer_name" mapstructure:"tracer_name"`
}

// ApplyDefaults applies default values to the observe configuration.
func (c *Config) ApplyDefaults() {
	if c.MeterName == "" {
		c.MeterName = defaultInstrumentationName
	}
	if c.TracerName == "" {
		c.TracerName = defaultInstrumentationName
	}
}

// Validate validates the observe configuration.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Metrics && c.MeterName == "" {
		return errors.InvalidConfig("observe.meter_name", "is required when metrics are enabled")
	}
	if c.Tracing && c.TracerName == "" {
		return errors.InvalidConfig("observe.tracer_name", "is required when tracing is enabled")
	}
	return nil
}
