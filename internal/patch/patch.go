// Package patch applies line-oriented deltas to text files. A delta is
// either a tagged-line diff (difflib ndiff style), a unified diff, or a
// full-content replacement. Parsing and applying are pure; callers own
// all file I/O.
package patch

import (
	"fmt"
	"strings"
)

// Kind discriminates the supported delta formats. The set is closed:
// handlers pick the kind once at the request boundary and everything
// downstream switches on it.
type Kind string

const (
	// KindNDiff is a tagged-line delta ("  ", "+ ", "- ", "? " prefixes).
	KindNDiff Kind = "ndiff"

	// KindUnified is a unified diff with ---/+++ headers and @@ hunks.
	KindUnified Kind = "unified"

	// KindFullReplace carries the complete new content verbatim.
	KindFullReplace Kind = "replace"
)

// Delta is a parsed, normalized patch payload.
type Delta struct {
	Kind Kind
	Text string
}

// NewFullReplace wraps complete file content as a delta. The content is
// written exactly as provided, no normalization applied.
func NewFullReplace(content string) Delta {
	return Delta{Kind: KindFullReplace, Text: content}
}

// Parse normalizes a raw diff payload and detects its format. Detection
// is a heuristic: anything that opens with "---" or mentions "@@" is
// routed to the unified parser, everything else is treated as a
// tagged-line delta. The parsers reject what the heuristic lets through.
func Parse(raw string) (Delta, error) {
	if raw == "" {
		return Delta{}, ErrEmptyDelta
	}
	text := Repair(raw)
	return Delta{Kind: detectKind(text), Text: text}, nil
}

func detectKind(text string) Kind {
	if strings.HasPrefix(strings.TrimLeft(text, " \t\n"), "---") || strings.Contains(text, "@@") {
		return KindUnified
	}
	return KindNDiff
}

// Apply produces the new file content for a delta. target is the
// vault-relative path being patched, used by the unified applier to
// reject diffs aimed at a different file. old is the current content;
// tagged-line and full-replace deltas do not consult it.
func (d Delta) Apply(target, old string) (string, error) {
	switch d.Kind {
	case KindFullReplace:
		return d.Text, nil
	case KindNDiff:
		return applyNDiff(d.Text)
	case KindUnified:
		return applyUnified(target, d.Text, old)
	default:
		return "", fmt.Errorf("%w: unknown delta kind %q", ErrMalformed, d.Kind)
	}
}

// splitLines splits text on LF. Unlike strings.Split, a trailing
// newline does not produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
