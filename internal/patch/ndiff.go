package patch

import (
	"fmt"
	"strings"
)

// applyNDiff restores the new file content from a tagged-line delta.
// Context ("  ") and insert ("+ ") lines carry the new text; delete
// ("- ") and intraline hint ("? ") lines describe the old text and are
// dropped. A tagged-line delta is self-contained, so the old content is
// never consulted. Any line that does not start with one of the four
// tags fails the whole delta.
func applyNDiff(delta string) (string, error) {
	var b strings.Builder
	for i, line := range splitLines(delta) {
		if len(line) < 2 {
			return "", fmt.Errorf("%w %q on line %d", ErrUnknownTag, line, i+1)
		}
		tag, rest := line[:2], line[2:]
		switch tag {
		case "  ", "+ ":
			b.WriteString(rest)
			b.WriteByte('\n')
		case "- ", "? ":
			// old-side lines
		default:
			return "", fmt.Errorf("%w %q on line %d", ErrUnknownTag, tag, i+1)
		}
	}
	return b.String(), nil
}
