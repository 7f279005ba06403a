package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Sealer protects a single string field before it leaves the client and
// recovers it on the way back.
//
// Open never fails: values that are not sealed, or that cannot be opened
// with the current key, are returned unchanged.
type Sealer interface {
	// Seal encrypts plaintext. The result always starts with [Marker]
	// unless plaintext is empty.
	Seal(plaintext string) (string, error)

	// Open returns the plaintext of a sealed value, or value itself.
	Open(value string) string

	// Inspect is Open with the outcome spelled out.
	Inspect(value string) OpenResult
}

// KeyProvider hands out the key material of the envelope.
type KeyProvider interface {
	// MasterKey returns the 32-byte key from which per-value keys are
	// derived.
	MasterKey() ([]byte, error)

	// Passphrase returns the raw secret, used only to read values written
	// in the legacy passphrase format.
	Passphrase() []byte
}
