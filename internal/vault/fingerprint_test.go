package vault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	// sha256("hello world")
	const want = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

	got := Fingerprint([]byte("hello world"))
	assert.Equal(t, want, got)
	assert.Len(t, got, 64)
	assert.Equal(t, strings.ToLower(got), got)
}

func TestFingerprintChangesWithContent(t *testing.T) {
	a := Fingerprint([]byte("one\n"))
	b := Fingerprint([]byte("two\n"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Fingerprint([]byte("one\n")))
}

func TestMatchFingerprint(t *testing.T) {
	content := []byte("hello world")
	digest := Fingerprint(content)

	tests := []struct {
		name     string
		expected string
		want     bool
	}{
		{name: "bare digest", expected: digest, want: true},
		{name: "quoted etag", expected: `"` + digest + `"`, want: true},
		{name: "weak etag", expected: `W/"` + digest + `"`, want: true},
		{name: "uppercase hex", expected: strings.ToUpper(digest), want: true},
		{name: "surrounding space", expected: " " + digest + " ", want: true},
		{name: "wrong digest", expected: "deadbeef", want: false},
		{name: "empty", expected: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFingerprint(tt.expected, content))
		})
	}
}
