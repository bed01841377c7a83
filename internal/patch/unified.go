package patch

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// applyUnified parses a unified diff and applies its hunks to old,
// returning the new content. The diff must target a single file, and
// that file must plausibly be the one the caller is patching.
func applyUnified(target, delta, old string) (string, error) {
	fd, err := parseUnified(delta)
	if err != nil {
		return "", err
	}

	if name := diffTarget(fd); !matchesTarget(target, name) {
		return "", fmt.Errorf("%w: diff is for %q, request is for %q", ErrTargetMismatch, name, target)
	}

	return applyHunks(fd.Hunks, old)
}

func parseUnified(delta string) (*diff.FileDiff, error) {
	if !hasFileHeaders(delta) {
		return nil, ErrMissingHeader
	}

	fds, err := diff.NewMultiFileDiffReader(strings.NewReader(delta)).ReadAllFiles()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch {
	case len(fds) == 0:
		return nil, ErrMissingHeader
	case len(fds) > 1:
		return nil, ErrMultiFile
	case len(fds[0].Hunks) == 0:
		return nil, ErrNoHunks
	}

	return fds[0], nil
}

func hasFileHeaders(delta string) bool {
	var sawOrig, sawNew bool
	for _, line := range strings.Split(delta, "\n") {
		switch {
		case strings.HasPrefix(line, "--- "):
			sawOrig = true
		case strings.HasPrefix(line, "+++ "):
			sawNew = true
		}
		if sawOrig && sawNew {
			return true
		}
	}
	return false
}

// diffTarget extracts the file path a diff is aimed at. The new-side
// name wins; git-style a/ and b/ prefixes are stripped.
func diffTarget(fd *diff.FileDiff) string {
	name := fd.NewName
	if name == "" || name == "/dev/null" {
		name = fd.OrigName
	}
	name = strings.TrimPrefix(name, "a/")
	name = strings.TrimPrefix(name, "b/")
	return name
}

// matchesTarget decides whether a diff's declared path plausibly refers
// to the requested path. Clients emit anything from bare basenames to
// absolute paths here, so this stays a heuristic: exact match, matching
// basenames, or one path containing the other.
func matchesTarget(reqPath, diffPath string) bool {
	if diffPath == "" {
		return false
	}
	reqPath = filepath.ToSlash(reqPath)
	if diffPath == reqPath {
		return true
	}
	if path.Base(diffPath) == path.Base(reqPath) {
		return true
	}
	return strings.Contains(reqPath, diffPath) || strings.Contains(diffPath, reqPath)
}

// applyHunks walks the hunks in order over the old content. Every
// context and delete line is checked against the file at its expected
// offset; any disagreement fails the whole patch rather than applying
// it somewhere it no longer fits.
func applyHunks(hunks []*diff.Hunk, old string) (string, error) {
	origLines := splitLines(old)
	out := make([]string, 0, len(origLines))
	idx := 0

	for _, hunk := range hunks {
		start := int(hunk.OrigStartLine) - 1
		if hunk.OrigLines == 0 {
			// a zero-length range addresses the gap after the given line
			start = int(hunk.OrigStartLine)
		}
		if start < 0 || start > len(origLines) {
			return "", fmt.Errorf("%w: hunk start %d out of range", ErrHunkMismatch, hunk.OrigStartLine)
		}
		if start < idx {
			return "", fmt.Errorf("%w: hunks overlap at line %d", ErrHunkMismatch, hunk.OrigStartLine)
		}

		out = append(out, origLines[idx:start]...)
		idx = start

		for _, line := range splitLines(string(hunk.Body)) {
			switch {
			case strings.HasPrefix(line, "+"):
				out = append(out, line[1:])
			case strings.HasPrefix(line, "-"):
				if idx >= len(origLines) || origLines[idx] != line[1:] {
					return "", fmt.Errorf("%w: removed line %d differs from file", ErrHunkMismatch, idx+1)
				}
				idx++
			case strings.HasPrefix(line, `\`):
				// "\ No newline at end of file"
			case line == "" || strings.HasPrefix(line, " "):
				want := ""
				if line != "" {
					want = line[1:]
				}
				if idx >= len(origLines) || origLines[idx] != want {
					return "", fmt.Errorf("%w: context line %d differs from file", ErrHunkMismatch, idx+1)
				}
				out = append(out, origLines[idx])
				idx++
			default:
				return "", fmt.Errorf("%w: unexpected hunk line %q", ErrMalformed, line)
			}
		}
	}

	out = append(out, origLines[idx:]...)
	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n") + "\n", nil
}
