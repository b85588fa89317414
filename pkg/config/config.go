package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultSrvPort          = "8080"
	defaultConcurrencyLimit = 10
	defaultRateLimit        = 100
	defaultFetchTimeout     = 10
	defaultLogLevel         = "info"
	defaultOutputDir        = "."
)

type Config struct {
	StopWordsFile    string `yaml:"stop_words_file"`
	BuiltinStopWords bool   `yaml:"builtin_stop_words"`
	OutputDir        string `yaml:"output_dir"`
	SrvPort          string `yaml:"srv_port"`
	DSN              string `yaml:"pg_dsn"`
	ConcurrencyLimit int    `yaml:"concurrency_limit"`
	RateLimit        int    `yaml:"rate_limit"`
	FetchTimeout     int    `yaml:"fetch_timeout"`
	LogLevel         string `yaml:"log_level"`
}

// Load reads the yaml file at path and fills in defaults for anything left empty.
func Load(path string) (*Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	err = yaml.UnmarshalStrict(yamlFile, c)
	if err != nil {
		return nil, err
	}
	c.setDefaults()

	return c, nil
}

// Default is the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.setDefaults()

	return c
}

func (c *Config) setDefaults() {
	if c.SrvPort == "" {
		c.SrvPort = defaultSrvPort
	}
	if c.ConcurrencyLimit <= 0 {
		c.ConcurrencyLimit = defaultConcurrencyLimit
	}
	if c.RateLimit <= 0 {
		c.RateLimit = defaultRateLimit
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultFetchTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}
