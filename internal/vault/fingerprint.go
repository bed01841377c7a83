package vault

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the lowercase hex SHA-256 digest of content. The
// same digest is used as the ETag on API responses and as the
// precondition value for conflict checks.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// MatchFingerprint reports whether a client-supplied fingerprint refers
// to content. Clients echo ETag headers back, so weak validators and
// surrounding quotes are tolerated and hex digits compare
// case-insensitively.
func MatchFingerprint(expected string, content []byte) bool {
	expected = strings.TrimSpace(expected)
	expected = strings.TrimPrefix(expected, "W/")
	expected = strings.Trim(expected, `"`)
	return strings.EqualFold(expected, Fingerprint(content))
}
