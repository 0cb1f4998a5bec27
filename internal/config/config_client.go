// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the top-level configuration container for the client
// application. It is populated by merging environment variables and
// command-line flags; unlike the server, the client needs neither a
// database DSN nor the token signing key.
type ClientConfig struct {
	// Adapter holds connection settings for the remote server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Session holds local session persistence settings.
	Session ClientSession `envPrefix:"SESSION_"`

	// Workers holds background worker settings.
	Workers ClientWorkers `envPrefix:"WORKERS_"`
}

// ClientAdapter holds connection settings for the remote server.
type ClientAdapter struct {
	// ServerAddress is the base address of the server,
	// e.g. "http://localhost:8080" or "localhost:8080".
	// Env: ADAPTER_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the per-request timeout for calls to the server.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientSession holds local session persistence settings.
type ClientSession struct {
	// FilePath is the location of the encrypted session file. When empty,
	// a "session.json" file next to the executable is used.
	// Env: SESSION_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// ClientWorkers holds background worker settings.
type ClientWorkers struct {
	// HealthPollInterval is how often the background worker probes the
	// server for availability.
	// Env: WORKERS_HEALTH_POLL_INTERVAL
	HealthPollInterval time.Duration `env:"HEALTH_POLL_INTERVAL"`
}

// Client default values applied when no source supplies a value.
const (
	DefaultAdapterAddress     = "http://localhost:8080"
	DefaultAdapterTimeout     = 10 * time.Second
	DefaultHealthPollInterval = 30 * time.Second
	DefaultSessionFileName    = "session.json"
)

// GetClientConfig loads and merges the client configuration from environment
// variables and command-line flags (first non-zero value wins per field),
// then applies defaults.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	config := new(ClientConfig)
	for _, cfg := range []*ClientConfig{envCfg, parseClientFlags()} {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return config, nil
}

// parseClientFlags parses all client configuration flags.
//
// Flags:
//
//	-server-address server base address, e.g. http://localhost:8080
//	-session-file encrypted session file path
//	-request-timeout request timeout (e.g., "10s")
func parseClientFlags() *ClientConfig {
	var serverAddress string
	var sessionFile string
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "server-address", "", "Server base address")
	flag.StringVar(&sessionFile, "session-file", "", "Encrypted session file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")

	flag.Parse()

	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  serverAddress,
			RequestTimeout: requestTimeout,
		},
		Session: ClientSession{
			FilePath: sessionFile,
		},
	}
}

func (cfg *ClientConfig) applyDefaults() error {
	if cfg.Adapter.ServerAddress == "" {
		cfg.Adapter.ServerAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Workers.HealthPollInterval == 0 {
		cfg.Workers.HealthPollInterval = DefaultHealthPollInterval
	}

	if cfg.Session.FilePath == "" {
		executablePath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve default session file path: %w", err)
		}
		cfg.Session.FilePath = filepath.Join(filepath.Dir(executablePath), DefaultSessionFileName)
	}

	return nil
}
