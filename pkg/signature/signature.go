package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"
)

type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// Verify checks that header carries a valid hex HMAC of the raw request
// body. An "algorithm=" prefix on the header value (e.g. "sha256=...") is
// stripped before comparison. Missing secret, header or body fail closed:
// the function returns false and never errors.
func Verify(rawBody []byte, header, secret string, algo Algorithm) bool {
	if secret == "" || header == "" || len(rawBody) == 0 {
		return false
	}

	header = strings.TrimPrefix(header, string(algo)+"=")

	expected, err := hex.DecodeString(header)
	if err != nil {
		return false
	}

	var newHash func() hash.Hash
	switch algo {
	case SHA256:
		newHash = sha256.New
	case SHA512:
		newHash = sha512.New
	default:
		return false
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(rawBody)
	return hmac.Equal(mac.Sum(nil), expected)
}
