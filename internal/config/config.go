// Package config defines the runtime configuration for promo-planner and
// loads it from an optional YAML file. Reference data (stores, categories,
// price tables) is compiled in; configuration covers logging, output, the
// profit target, and the optional server and history features.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/jackmart/promo-planner/pkg/constants"
)

// Configuration holds all configuration for promo-planner.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Planner PlannerConfig `yaml:"planner,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format      string `yaml:"format,omitempty"`      // pretty, csv
	PlanFile    string `yaml:"planFile,omitempty"`    // plan detail CSV path
	SummaryFile string `yaml:"summaryFile,omitempty"` // plan summary CSV path
	TopN        int    `yaml:"topN,omitempty"`        // campaigns printed per store
}

// PlannerConfig holds plan selection options.
type PlannerConfig struct {
	TargetPerStore float64 `yaml:"targetPerStore,omitempty"` // daily incremental-profit target (Rupiah)
}

// ServerConfig holds the embedded HTTP API options.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// HistoryConfig holds the optional sqlite plan history options.
type HistoryConfig struct {
	DatabasePath string `yaml:"databasePath,omitempty"` // empty disables history
}

// Default returns the configuration used when no config file is given.
func Default() *Configuration {
	conf := &Configuration{}
	conf.applyDefaults()
	return conf
}

// LoadConfiguration loads the YAML-formatted configuration at the given path.
// An empty path yields the defaults; a missing or malformed file is an error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return Default(), nil
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file not readable: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills any unset fields with the documented defaults.
func (c *Configuration) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Output.PlanFile == "" {
		c.Output.PlanFile = constants.DefaultPlanFile
	}
	if c.Output.SummaryFile == "" {
		c.Output.SummaryFile = constants.DefaultSummaryFile
	}
	if c.Output.TopN <= 0 {
		c.Output.TopN = constants.DefaultTopN
	}
	if c.Planner.TargetPerStore <= 0 {
		c.Planner.TargetPerStore = constants.DefaultTargetPerStore
	}
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
}
