package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		EnvelopeSecret           string   `json:"envelope_secret"`
		AdminPassword            string   `json:"admin_password"`
		UnlimitedAccount         string   `json:"unlimited_account"`
		TokenSignKey             string   `json:"token_sign_key"`
		TokenIssuer              string   `json:"token_issuer"`
		TokenDuration            Duration `json:"token_duration"`
		HashKey                  string   `json:"hash_key"`
		RequireEmailVerification bool     `json:"require_email_verification"`
		Version                  string   `json:"version"`
		LogLevel                 string   `json:"log_level"`
		LogFile                  string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir string `json:"dir"`
		} `json:"files,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		Local struct {
			DSN       string `json:"dsn"`
			ExportDir string `json:"export_dir"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		BackupCheckDelay  Duration `json:"backup_check_delay"`
		InactivityTimeout Duration `json:"inactivity_timeout"`
		WatchInterval     Duration `json:"watch_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EnvelopeSecret:           jsonCfg.App.EnvelopeSecret,
			AdminPassword:            jsonCfg.App.AdminPassword,
			UnlimitedAccount:         jsonCfg.App.UnlimitedAccount,
			TokenSignKey:             jsonCfg.App.TokenSignKey,
			TokenIssuer:              jsonCfg.App.TokenIssuer,
			TokenDuration:            time.Duration(jsonCfg.App.TokenDuration),
			HashKey:                  jsonCfg.App.HashKey,
			RequireEmailVerification: jsonCfg.App.RequireEmailVerification,
			Version:                  jsonCfg.App.Version,
			LogLevel:                 jsonCfg.App.LogLevel,
			LogFile:                  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{Dir: jsonCfg.Storage.Files.Dir},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			Local: Local{
				DSN:       jsonCfg.Storage.Local.DSN,
				ExportDir: jsonCfg.Storage.Local.ExportDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			BackupCheckDelay:  time.Duration(jsonCfg.Workers.BackupCheckDelay),
			InactivityTimeout: time.Duration(jsonCfg.Workers.InactivityTimeout),
			WatchInterval:     time.Duration(jsonCfg.Workers.WatchInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
