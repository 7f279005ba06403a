// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the invariants shared by every binary: durations must not
// be negative.
func (cfg *StructuredConfig) validate() error {
	durations := map[string]int64{
		"token duration":     int64(cfg.App.TokenDuration),
		"request timeout":    int64(cfg.Server.RequestTimeout),
		"adapter timeout":    int64(cfg.Adapter.RequestTimeout),
		"backup check delay": int64(cfg.Workers.BackupCheckDelay),
		"inactivity timeout": int64(cfg.Workers.InactivityTimeout),
		"watch interval":     int64(cfg.Workers.WatchInterval),
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%w: negative %s", ErrInvalidConfigs, name)
		}
	}

	return nil
}

// validateServer checks the settings the notes server cannot start without.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Files.Dir == "" {
		return fmt.Errorf("%w: empty files directory", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.WatchInterval == 0 || cfg.Workers.InactivityTimeout == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.EnvelopeSecret == "" {
		return fmt.Errorf("%w: envelope secret is required", ErrInvalidAppConfigs)
	}

	return nil
}
