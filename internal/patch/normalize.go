package patch

import "strings"

// Repair normalizes a diff payload before parsing. Clients mangle
// payloads in predictable ways: CRLF line endings, JSON-escaped
// newlines arriving as literal backslash-n, or whole deltas collapsed
// onto a single line. Each step is idempotent and the function is total;
// well-formed input passes through unchanged.
//
// Steps, in order:
//  1. CRLF becomes LF.
//  2. Literal `\n` sequences become real newlines.
//  3. If the payload still has no newline at all, insert one before each
//     line marker. The two-space context marker goes first so it cannot
//     split the other markers.
//  4. Guarantee a trailing newline.
func Repair(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	if strings.Contains(text, `\n`) {
		text = strings.ReplaceAll(text, `\n`, "\n")
	}

	if !strings.Contains(text, "\n") {
		text = strings.ReplaceAll(text, "  ", "\n  ")
		text = strings.ReplaceAll(text, "+ ", "\n+ ")
		text = strings.ReplaceAll(text, "- ", "\n- ")
		text = strings.ReplaceAll(text, "? ", "\n? ")
		text = strings.TrimLeft(text, "\n")
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return text
}
