// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"
)

// Options holds the configuration values for the application.
type Options struct {
	// BaseURL is the base address of the platform REST API.
	BaseURL string

	// Timeout is the per-request timeout applied by the API client.
	Timeout time.Duration

	// DataDir is the directory holding the durable key-value storage.
	DataDir string

	// LogLevel sets the logging verbosity ("debug", "info", "warn", "error").
	LogLevel string

	// Config is the path to the Config file.
	Config string
}

// fileOptions mirrors Options for the JSON config file, with the
// timeout expressed in seconds.
type fileOptions struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	DataDir        string `json:"data_dir"`
	LogLevel       string `json:"log_level"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.BaseURL, "u", "http://localhost:5000", "API base URL")
	flag.DurationVar(&options.Timeout, "t", 10*time.Second, "API request timeout")
	flag.StringVar(&options.DataDir, "d", ".wellness", "durable storage directory")
	flag.StringVar(&options.LogLevel, "l", "info", "log level")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			var fo fileOptions
			if err := json.Unmarshal(data, &fo); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
			if fo.BaseURL != "" {
				options.BaseURL = fo.BaseURL
			}
			if fo.TimeoutSeconds > 0 {
				options.Timeout = time.Duration(fo.TimeoutSeconds) * time.Second
			}
			if fo.DataDir != "" {
				options.DataDir = fo.DataDir
			}
			if fo.LogLevel != "" {
				options.LogLevel = fo.LogLevel
			}
		}
	}

	// Environment variables win over both flags and the config file.
	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		options.BaseURL = baseURL
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		options.DataDir = dataDir
	}

	return options
}
