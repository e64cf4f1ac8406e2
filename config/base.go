package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/resultiter/errors"
	"github.com/kbukum/resultiter/logger"
)

var validEnvironments = []string{"development", "staging", "production"}

// BaseConfig holds the fields every program built on this module shares.
// Programs extend it by embedding it in their own config structs.
//
//	type IngestConfig struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    Observe observe.Config `yaml:"observe" mapstructure:"observe"`
//	}
type BaseConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
		if c.Logging.Level == "" {
			c.Logging.Level = "debug"
		}
	}
	c.Logging.ApplyDefaults()
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	if c.Name == "" {
		return errors.InvalidConfig("name", "is required")
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		return errors.InvalidConfig("environment",
			fmt.Sprintf("must be one of %v (got: %s)", validEnvironments, c.Environment))
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig("logging", err.Error()).WithCause(err)
	}
	return nil
}
