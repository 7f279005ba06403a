package service

import (
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/require"
)

var testSession = models.Session{UserID: 1, Email: "user@example.com", Token: "token-1"}

// newTestSealer — настоящий конверт со статическим ключом
func newTestSealer(t *testing.T) crypto.Sealer {
	t.Helper()
	keys, err := crypto.NewStaticKeyProvider("test-envelope-secret")
	require.NoError(t, err)
	return crypto.NewEnvelope(keys, logger.Nop())
}

func seal(t *testing.T, s crypto.Sealer, v string) string {
	t.Helper()
	out, err := s.Seal(v)
	require.NoError(t, err)
	return out
}

func strPtr(s string) *string {
	return &s
}
