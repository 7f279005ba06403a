package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // required by the legacy key derivation
	"errors"
	"unicode/utf8"
)

var (
	errBadPadding = errors.New("legacy: bad padding")
	errNotUTF8    = errors.New("legacy: plaintext is not utf-8")
)

// openLegacy decrypts values written in the OpenSSL "enc" passphrase format:
// AES-256-CBC keyed by EVP_BytesToKey(MD5, passphrase, salt), PKCS#7 padded.
// CBC has no authentication: a wrong key still yields valid padding about
// once in 256 tries, so output that is not UTF-8 text is rejected.
func openLegacy(passphrase, salt, ciphertext []byte) (string, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrMalformed
	}

	key, iv := evpBytesToKey(passphrase, salt, 32, aes.BlockSize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", errNotUTF8
	}

	return string(plaintext), nil
}

// evpBytesToKey is OpenSSL's EVP_BytesToKey with MD5 and one iteration.
func evpBytesToKey(passphrase, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	var derived, prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New() //nolint:gosec
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}

	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, errBadPadding
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errBadPadding
		}
	}

	return b[:len(b)-n], nil
}
