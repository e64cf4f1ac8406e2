// Package config loads configuration for programs built on this module.
//
// Load reads an optional YAML file and an optional .env file with Viper and
// godotenv, then overlays environment variables. Variable names map onto
// nested keys by splitting on underscores, so OBSERVE_METER_NAME fills
// observe.meter_name.
//
// # Usage
//
//	var cfg IngestConfig
//	if err := config.Load("ingest", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
package config
