package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.Storage.DB.DSN = "postgres://localhost/notes"
	cfg.App.TokenSignKey = "sign"
	return cfg
}

func validClientConfig() *ClientConfig {
	cfg := Defaults()
	cfg.App.EnvelopeSecret = "secret"
	return NewClientConfig(cfg)
}

func TestValidate_NegativeDuration(t *testing.T) {
	cfg := Defaults()
	cfg.Workers.WatchInterval = -time.Second

	assert.ErrorIs(t, cfg.validate(), ErrInvalidConfigs)
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Defaults().validate())
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty files dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.Dir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing adapter timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero watch interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.WatchInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "missing envelope secret",
			mutate:  func(cfg *ClientConfig) { cfg.App.EnvelopeSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
