// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"golang.org/x/crypto/hkdf"
)

// Marker is the prefix every sealed value starts with. It is the base64 form
// of the "Salted__" header shared with the legacy passphrase format.
const Marker = "U2FsdGVkX1"

const (
	saltSize  = 8
	nonceSize = 12
	hkdfInfo  = "go-notes-keeper envelope v1"
)

var saltedHeader = []byte("Salted__")

var (
	// ErrMalformed is returned for sealed values whose layout is broken.
	ErrMalformed = errors.New("malformed sealed value")
	// ErrEmptyPlaintext is returned when a sealed value opens to nothing.
	ErrEmptyPlaintext = errors.New("sealed value opens to empty plaintext")
)

// OpenKind describes what Inspect found.
type OpenKind int

const (
	// Plain means the value carried no marker and was passed through.
	Plain OpenKind = iota
	// Decrypted means the value was sealed and opened successfully.
	Decrypted
	// Corrupted means the value was sealed but could not be opened. Value
	// holds the original input.
	Corrupted
)

func (k OpenKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Decrypted:
		return "decrypted"
	case Corrupted:
		return "corrupted"
	default:
		return fmt.Sprintf("OpenKind(%d)", int(k))
	}
}

// OpenResult is the outcome of [Envelope.Inspect].
type OpenResult struct {
	Kind  OpenKind
	Value string
	Err   error
}

// Envelope seals note fields with AES-256-GCM.
//
// Layout: base64std("Salted__" || salt[8] || nonce[12] || ciphertext||tag).
// The AES key is HKDF-SHA256 of the master key with the per-value salt.
type Envelope struct {
	keys   KeyProvider
	logger *logger.Logger
	rand   io.Reader
}

// NewEnvelope returns an Envelope drawing keys from keys.
func NewEnvelope(keys KeyProvider, log *logger.Logger) *Envelope {
	return &Envelope{
		keys:   keys,
		logger: log,
		rand:   rand.Reader,
	}
}

// IsSealed reports whether value carries the envelope marker.
func IsSealed(value string) bool {
	return strings.HasPrefix(value, Marker)
}

// Seal implements [Sealer]. Empty plaintext is returned as is.
func (e *Envelope) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(e.rand, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	gcm, err := e.gcm(salt)
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, len(saltedHeader)+saltSize+nonceSize+len(plaintext)+gcm.Overhead())
	blob = append(blob, saltedHeader...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), saltedHeader)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (e *Envelope) Open(value string) string {
	return e.Inspect(value).Value
}

// Inspect implements [Sealer]. Failures are logged and reported as
// [Corrupted] with the original value.
func (e *Envelope) Inspect(value string) OpenResult {
	if !IsSealed(value) {
		return OpenResult{Kind: Plain, Value: value}
	}

	plaintext, err := e.open(value)
	if err == nil && plaintext == "" {
		err = ErrEmptyPlaintext
	}
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "*Envelope.Inspect").
			Int("length", len(value)).
			Msg("failed to open sealed value, returning it as is")
		return OpenResult{Kind: Corrupted, Value: value, Err: err}
	}

	return OpenResult{Kind: Decrypted, Value: plaintext}
}

func (e *Envelope) open(value string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(blob) < len(saltedHeader)+saltSize || !bytes.Equal(blob[:len(saltedHeader)], saltedHeader) {
		return "", ErrMalformed
	}

	salt := blob[len(saltedHeader) : len(saltedHeader)+saltSize]
	body := blob[len(saltedHeader)+saltSize:]

	plaintext, gcmErr := e.openGCM(salt, body)
	if gcmErr == nil {
		return plaintext, nil
	}

	plaintext, legacyErr := openLegacy(e.keys.Passphrase(), salt, body)
	if legacyErr == nil {
		return plaintext, nil
	}

	return "", errors.Join(gcmErr, legacyErr)
}

func (e *Envelope) openGCM(salt, body []byte) (string, error) {
	gcm, err := e.gcm(salt)
	if err != nil {
		return "", err
	}
	if len(body) < nonceSize+gcm.Overhead() {
		return "", ErrMalformed
	}

	plaintext, err := gcm.Open(nil, body[:nonceSize], body[nonceSize:], saltedHeader)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}

	return string(plaintext), nil
}

func (e *Envelope) gcm(salt []byte) (cipher.AEAD, error) {
	master, err := e.keys.MasterKey()
	if err != nil {
		return nil, fmt.Errorf("get master key: %w", err)
	}

	key := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, salt, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}
