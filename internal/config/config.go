// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container shared by the
// notes server and the notes client. It aggregates all sub-configurations
// and is populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as secrets, token
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds timings of the client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// EnvelopeSecret is the process-wide secret protecting note fields on
	// the client. Rotating it makes previously sealed values unreadable.
	// Env: APP_ENVELOPE_SECRET
	EnvelopeSecret string `env:"ENVELOPE_SECRET"`

	// AdminPassword guards sensitive client actions behind a second
	// confirmation.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// UnlimitedAccount is the email of the single account exempt from the
	// storage quota.
	// Env: APP_UNLIMITED_ACCOUNT
	UnlimitedAccount string `env:"UNLIMITED_ACCOUNT"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for request body integrity checking
	// (the HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// RequireEmailVerification blocks sign-in of unverified accounts.
	// Env: APP_REQUIRE_EMAIL_VERIFICATION
	RequireEmailVerification bool `env:"REQUIRE_EMAIL_VERIFICATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log file path.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the attachment object storage settings.
	Files Files `envPrefix:"FILES_"`

	// Redis holds the token store settings.
	Redis Redis `envPrefix:"REDIS_"`

	// Local holds the client-side SQLite settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for attachment buckets.
type Files struct {
	// Dir is the root directory of the "images" and "voice" buckets.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Redis holds connection settings for the token store.
type Redis struct {
	// Addr is the Redis address in host:port form.
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`

	// Password is the optional Redis password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database index.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Local holds client-side storage settings.
type Local struct {
	// DSN is the SQLite file with the local session and export history.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`

	// ExportDir is where export files are written.
	// Env: STORAGE_LOCAL_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the notes server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds timings of the client background jobs.
type Workers struct {
	// BackupCheckDelay is the settle delay before the once-per-session
	// automatic backup check runs.
	// Env: WORKERS_BACKUP_CHECK_DELAY
	BackupCheckDelay time.Duration `env:"BACKUP_CHECK_DELAY"`

	// InactivityTimeout is the window after which an idle session is
	// logged out.
	// Env: WORKERS_INACTIVITY_TIMEOUT
	InactivityTimeout time.Duration `env:"INACTIVITY_TIMEOUT"`

	// WatchInterval is how often the client polls the notes revision.
	// Env: WORKERS_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// Defaults returns the configuration used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-notes-keeper",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "debug",
		},
		Storage: Storage{
			Files: Files{Dir: "attachments"},
			Local: Local{DSN: "notes-client.db", ExportDir: "."},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			BackupCheckDelay:  5 * time.Second,
			InactivityTimeout: 8 * time.Hour,
			WatchInterval:     30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Later sources override earlier non-zero fields:
//  1. Defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags parsed into fs (may be nil)
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig returns the merged configuration checked for everything
// the notes server needs to start.
func GetServerConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
