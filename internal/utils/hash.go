package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"hash"
	"sync"
)

// bodySigners hands out HMAC-SHA256 instances keyed with the body hash key.
// [InitHasherPool] must run before the first [Hash].
var bodySigners sync.Pool

func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	bodySigners = sync.Pool{New: func() any { return hmac.New(sha256.New, key) }}
}

// Hash signs data with the pooled key.
func Hash(data []byte) []byte {
	h := bodySigners.Get().(hash.Hash)
	defer bodySigners.Put(h)

	h.Reset()
	h.Write(data)
	return h.Sum(nil)
}

// VerifyHash reports whether hexSum is the signature of data. Malformed hex
// never verifies.
func VerifyHash(data []byte, hexSum string) bool {
	want, err := hex.DecodeString(hexSum)
	return err == nil && hmac.Equal(Hash(data), want)
}

// HashString signs data with hashKey directly, bypassing the pool.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// SHA256Hex is the checksum of stored attachments.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SecretsEqual compares two secrets in constant time.
func SecretsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
