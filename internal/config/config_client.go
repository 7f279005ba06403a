package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// EnvelopeSecret seeds the key that seals note fields.
	EnvelopeSecret string
	// AdminPassword guards sensitive actions. Empty disables them.
	AdminPassword string
	// UnlimitedAccount is the email exempt from the storage quota.
	UnlimitedAccount string
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// LogLevel is the minimal log level.
	LogLevel string
	// LogFile is the log destination.
	LogFile string
	// Version is reported by the version command.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the local SQLite file.
	DSN string
	// ExportDir is where export files are written.
	ExportDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BackupCheckDelay is the settle delay of the automatic backup check.
	BackupCheckDelay time.Duration
	// InactivityTimeout is the idle window of the session guard.
	InactivityTimeout time.Duration
	// WatchInterval defines how often the notes revision is polled.
	WatchInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			EnvelopeSecret:   cfg.App.EnvelopeSecret,
			AdminPassword:    cfg.App.AdminPassword,
			UnlimitedAccount: cfg.App.UnlimitedAccount,
			HashKey:          cfg.App.HashKey,
			LogLevel:         cfg.App.LogLevel,
			LogFile:          cfg.App.LogFile,
			Version:          cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:       cfg.Storage.Local.DSN,
			ExportDir: cfg.Storage.Local.ExportDir,
		},
		Workers: ClientWorkers{
			BackupCheckDelay:  cfg.Workers.BackupCheckDelay,
			InactivityTimeout: cfg.Workers.InactivityTimeout,
			WatchInterval:     cfg.Workers.WatchInterval,
		},
	}
}
