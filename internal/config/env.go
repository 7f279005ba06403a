package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Sections are selected by
// the envPrefix tags of [StructuredConfig]: APP_, SERVER_, ADAPTER_,
// STORAGE_DB_ and so on.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: read environment: %w", err)
	}

	// secrets are often exported from files with a trailing newline
	cfg.App.EnvelopeSecret = strings.TrimSpace(cfg.App.EnvelopeSecret)
	cfg.App.AdminPassword = strings.TrimSpace(cfg.App.AdminPassword)
	return nil
}
