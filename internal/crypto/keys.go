// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"

	"golang.org/x/crypto/argon2"
)

// ErrEmptySecret is returned when the envelope secret is not configured.
var ErrEmptySecret = errors.New("envelope secret is empty")

// appSalt domain-separates the master key of this application from any other
// use of the same secret.
var appSalt = []byte("go-notes-keeper/master-key/v1")

// Argon2id parameters recommended by OWASP (2024).
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	keyLen       uint32 = 32 // 256 bits
)

// StaticKeyProvider serves one process-wide key derived from the configured
// secret. The key is derived once at construction.
type StaticKeyProvider struct {
	secret    []byte
	masterKey []byte
}

// NewStaticKeyProvider derives the master key from secret with Argon2id.
func NewStaticKeyProvider(secret string) (*StaticKeyProvider, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &StaticKeyProvider{
		secret:    []byte(secret),
		masterKey: argon2.IDKey([]byte(secret), appSalt, argonTime, argonMemory, argonThreads, keyLen),
	}, nil
}

// MasterKey implements [KeyProvider].
func (p *StaticKeyProvider) MasterKey() ([]byte, error) {
	return p.masterKey, nil
}

// Passphrase implements [KeyProvider].
func (p *StaticKeyProvider) Passphrase() []byte {
	return p.secret
}
