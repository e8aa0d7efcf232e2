package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoggerConfig holds the settings of the process logger.
type LoggerConfig struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `yaml:"level"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `yaml:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stderr"] so that logs never mix with command output.
	OutputPaths []string `yaml:"outputPaths"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	DisableCaller bool `yaml:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `yaml:"disableStacktrace"`
}

// Config is the content of the YAML configuration file.
type Config struct {
	// SRSPath is the JSON trusted setup file.
	SRSPath string `yaml:"srsPath"`
	// DataPath is the CSV file of address,amount allocations.
	DataPath string `yaml:"dataPath"`
	// NumGoRoutines used per multi exponentiation, 0 means one per CPU core.
	NumGoRoutines int          `yaml:"numGoRoutines"`
	Logger        LoggerConfig `yaml:"logger"`
}

var (
	errMissingSRSPath  = errors.New("srsPath must be set")
	errMissingDataPath = errors.New("dataPath must be set")
)

// DefaultConfig returns the configuration used for every key the
// configuration file leaves out.
func DefaultConfig() Config {
	return Config{
		NumGoRoutines: 0,
		Logger: LoggerConfig{
			Level:       "info",
			Encoding:    "console",
			OutputPaths: []string{"stderr"},
		},
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the paths needed to build a scheme are set.
func (c *Config) Validate() error {
	if c.SRSPath == "" {
		return errMissingSRSPath
	}
	if c.DataPath == "" {
		return errMissingDataPath
	}
	return nil
}
