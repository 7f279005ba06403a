package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fixedKeys is a KeyProvider with precomputed material, so tests do not pay
// for Argon2id on every run.
type fixedKeys struct {
	master     []byte
	passphrase []byte
	err        error
}

func (k fixedKeys) MasterKey() ([]byte, error) { return k.master, k.err }
func (k fixedKeys) Passphrase() []byte         { return k.passphrase }

func newTestEnvelope(master byte, passphrase string) *Envelope {
	return NewEnvelope(fixedKeys{
		master:     bytes.Repeat([]byte{master}, 32),
		passphrase: []byte(passphrase),
	}, logger.Nop())
}

// legacyEncrypt writes plaintext the way "openssl enc -aes-256-cbc -md md5" does.
func legacyEncrypt(t *testing.T, passphrase, salt, plaintext []byte) []byte {
	t.Helper()
	key, iv := evpBytesToKey(passphrase, salt, 32, aes.BlockSize)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	pad := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(append([]byte{}, plaintext...), bytes.Repeat([]byte{byte(pad)}, pad)...)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

// ── Seal ──────────────────────────────────────────────────────────────────────

func TestSeal_HasMarker(t *testing.T) {
	env := newTestEnvelope(0x01, "secret")

	sealed, err := env.Seal("<p>hello</p>")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, Marker))
	assert.True(t, IsSealed(sealed))
}

func TestSeal_IsRandomized(t *testing.T) {
	env := newTestEnvelope(0x01, "secret")

	a, err := env.Seal("same text")
	require.NoError(t, err)
	b, err := env.Seal("same text")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSeal_EmptyStaysEmpty(t *testing.T) {
	env := newTestEnvelope(0x01, "secret")

	sealed, err := env.Seal("")

	require.NoError(t, err)
	assert.Empty(t, sealed)
	assert.Equal(t, "", env.Open(sealed))
}

func TestSeal_RandomSourceFailure(t *testing.T) {
	env := newTestEnvelope(0x01, "secret")
	env.rand = failingReader{}

	_, err := env.Seal("text")

	assert.Error(t, err)
}

func TestSeal_KeyProviderFailure(t *testing.T) {
	env := NewEnvelope(fixedKeys{err: assert.AnError}, logger.Nop())

	_, err := env.Seal("text")

	assert.ErrorIs(t, err, assert.AnError)
}

// ── Open / Inspect ────────────────────────────────────────────────────────────

func TestOpen_RoundTrip(t *testing.T) {
	env := newTestEnvelope(0x02, "secret")
	values := []string{"a", "Заметка о погоде", "<h1>Title</h1><p>body</p>", "  spaced  ", "😀 emoji"}

	for _, v := range values {
		sealed, err := env.Seal(v)
		require.NoError(t, err)

		res := env.Inspect(sealed)
		assert.Equal(t, Decrypted, res.Kind)
		assert.Equal(t, v, res.Value)
		assert.Equal(t, v, env.Open(sealed))
	}
}

func TestOpen_PlainPassThrough(t *testing.T) {
	env := newTestEnvelope(0x02, "secret")

	res := env.Inspect("legacy plaintext note")

	assert.Equal(t, Plain, res.Kind)
	assert.Equal(t, "legacy plaintext note", res.Value)
	assert.NoError(t, res.Err)
}

func TestOpen_WrongKeyReturnsOriginal(t *testing.T) {
	// "abcde" gives a 33-byte body, which the legacy CBC reader rejects.
	sealed, err := newTestEnvelope(0x03, "one").Seal("abcde")
	require.NoError(t, err)

	res := newTestEnvelope(0x04, "two").Inspect(sealed)

	assert.Equal(t, Corrupted, res.Kind)
	assert.Equal(t, sealed, res.Value)
	assert.Error(t, res.Err)
}

func TestOpen_WrongKey_BlockAlignedBody(t *testing.T) {
	// 4 байта дают тело 32 байта: GCM не проходит, и значение уходит в CBC
	sealer := newTestEnvelope(0x03, "one")
	opener := newTestEnvelope(0x04, "two")

	for i := range 5000 {
		sealed, err := sealer.Seal("abcd")
		require.NoError(t, err)

		res := opener.Inspect(sealed)
		if res.Kind != Corrupted || res.Value != sealed {
			t.Fatalf("attempt %d: got kind %s value %q, want the sealed value back", i, res.Kind, res.Value)
		}
	}
}

func TestOpenLegacy_RejectsNonUTF8(t *testing.T) {
	salt := []byte("12345678")
	ciphertext := legacyEncrypt(t, []byte("pass"), salt, []byte{0xff, 0xfe, 'x'})

	_, err := openLegacy([]byte("pass"), salt, ciphertext)
	assert.ErrorIs(t, err, errNotUTF8)

	ciphertext = legacyEncrypt(t, []byte("pass"), salt, []byte("заметка"))
	got, err := openLegacy([]byte("pass"), salt, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "заметка", got)
}

func TestOpen_MalformedValues(t *testing.T) {
	env := newTestEnvelope(0x05, "secret")
	tests := []struct {
		name  string
		value string
	}{
		{name: "marker only", value: Marker},
		{name: "not base64", value: Marker + "!!!"},
		{name: "header without salt", value: base64.StdEncoding.EncodeToString([]byte("Salted__ab"))},
		{name: "salt without body", value: base64.StdEncoding.EncodeToString([]byte("Salted__12345678"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, IsSealed(tt.value))

			res := env.Inspect(tt.value)

			assert.Equal(t, Corrupted, res.Kind)
			assert.Equal(t, tt.value, res.Value)
			assert.Equal(t, tt.value, env.Open(tt.value))
		})
	}
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	env := newTestEnvelope(0x06, "secret")
	sealed, err := env.Seal("abcde")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(blob)

	res := env.Inspect(tampered)

	assert.Equal(t, Corrupted, res.Kind)
	assert.Equal(t, tampered, res.Value)
}

func TestOpen_LegacyPassphraseFormat(t *testing.T) {
	// openssl enc -aes-256-cbc -md md5 -pass pass:correct-horse
	const legacy = "U2FsdGVkX18vSyZjCYWi5md60XGLJUmK/xwn+JU1IWzW5xne5lwfmjWYejWSUI4k"
	env := newTestEnvelope(0x07, "correct-horse")

	res := env.Inspect(legacy)

	assert.Equal(t, Decrypted, res.Kind)
	assert.Equal(t, "legacy note body", res.Value)
}

func TestOpen_LegacyWrongPassphrase(t *testing.T) {
	const legacy = "U2FsdGVkX18vSyZjCYWi5md60XGLJUmK/xwn+JU1IWzW5xne5lwfmjWYejWSUI4k"
	env := newTestEnvelope(0x07, "battery-staple")

	assert.Equal(t, legacy, env.Open(legacy))
}

func TestOpenKind_String(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "decrypted", Decrypted.String())
	assert.Equal(t, "corrupted", Corrupted.String())
	assert.Equal(t, "OpenKind(9)", OpenKind(9).String())
}

// ── properties ────────────────────────────────────────────────────────────────

func TestEnvelope_Properties(t *testing.T) {
	env := newTestEnvelope(0x08, "secret")

	rapid.Check(t, func(t *rapid.T) {
		plaintext := rapid.StringN(1, 512, -1).Draw(t, "plaintext")

		sealed, err := env.Seal(plaintext)
		if err != nil {
			t.Fatalf("seal: %v", err)
		}
		if !strings.HasPrefix(sealed, Marker) {
			t.Fatalf("sealed value %q has no marker", sealed)
		}
		if got := env.Open(sealed); got != plaintext {
			t.Fatalf("round trip: got %q, want %q", got, plaintext)
		}
	})
}

func TestEnvelope_UnmarkedValuesPassThrough(t *testing.T) {
	env := newTestEnvelope(0x09, "secret")

	rapid.Check(t, func(t *rapid.T) {
		value := rapid.String().
			Filter(func(s string) bool { return !strings.HasPrefix(s, Marker) }).
			Draw(t, "value")

		if got := env.Open(value); got != value {
			t.Fatalf("got %q, want %q", got, value)
		}
	})
}

// ── StaticKeyProvider ─────────────────────────────────────────────────────────

func TestStaticKeyProvider(t *testing.T) {
	p1, err := NewStaticKeyProvider("process secret")
	require.NoError(t, err)
	p2, err := NewStaticKeyProvider("process secret")
	require.NoError(t, err)

	k1, err := p1.MasterKey()
	require.NoError(t, err)
	k2, err := p2.MasterKey()
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.Equal(t, []byte("process secret"), p1.Passphrase())

	env := NewEnvelope(p1, logger.Nop())
	sealed, err := env.Seal("shared")
	require.NoError(t, err)
	assert.Equal(t, "shared", NewEnvelope(p2, logger.Nop()).Open(sealed))
}

func TestStaticKeyProvider_EmptySecret(t *testing.T) {
	p, err := NewStaticKeyProvider("")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

// ── legacy helpers ────────────────────────────────────────────────────────────

func TestEvpBytesToKey_Lengths(t *testing.T) {
	key, iv := evpBytesToKey([]byte("pass"), []byte("12345678"), 32, 16)

	assert.Len(t, key, 32)
	assert.Len(t, iv, 16)
}

func TestPkcs7Unpad(t *testing.T) {
	out, err := pkcs7Unpad(append([]byte("abc"), bytes.Repeat([]byte{13}, 13)...))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	_, err = pkcs7Unpad(append([]byte("abc"), 0, 0))
	assert.ErrorIs(t, err, errBadPadding)

	_, err = pkcs7Unpad([]byte{1, 2, 3, 2})
	assert.ErrorIs(t, err, errBadPadding)
}
