package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

type adminGate struct {
	password string
}

// NewAdminGate returns a gate checking against password. An empty password
// disables every action behind the gate.
func NewAdminGate(password string) AdminGate {
	return &adminGate{password: password}
}

func (g *adminGate) Confirm(password string) error {
	if g.password == "" {
		return ErrAdminGateDisabled
	}
	if !utils.SecretsEqual(password, g.password) {
		return ErrAdminPasswordMismatch
	}
	return nil
}
