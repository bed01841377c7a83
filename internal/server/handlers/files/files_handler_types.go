package files

import (
	"github.com/vaultmd/vaultd/internal/patch"
)

type CreateFileRequest struct {
	Path    string `json:"path" binding:"required"`
	Content string `json:"content"`
}

type ReplaceFileRequest struct {
	Path    string `json:"path" binding:"required"`
	Content string `json:"content"`
}

// PatchFileRequest carries one of two delta forms: Diff holds a
// line-oriented diff (ndiff or unified), Content holds full replacement
// text. Diff wins when both are set. ExpectedFingerprint makes the
// patch conditional on the file's current content; the If-Match header
// is accepted as an alternative carrier.
type PatchFileRequest struct {
	Path                string `json:"path" binding:"required"`
	Diff                string `json:"diff"`
	Content             string `json:"content"`
	ExpectedFingerprint string `json:"expectedFingerprint"`
}

// delta interprets the request body as a patch delta.
func (r *PatchFileRequest) delta() (patch.Delta, error) {
	switch {
	case r.Diff != "":
		return patch.Parse(r.Diff)
	case r.Content != "":
		return patch.NewFullReplace(r.Content), nil
	default:
		return patch.Delta{}, patch.ErrEmptyDelta
	}
}

type MutationResponse struct {
	Message     string `json:"message"`
	Fingerprint string `json:"fingerprint"`
}
