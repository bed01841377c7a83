package vaultsdk

// FileContent is the result of reading a file.
type FileContent struct {
	Path        string
	Content     string
	Fingerprint string
}

// CreateFileParams names a new file and its initial content.
type CreateFileParams struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// ReplaceFileParams names an existing file and its replacement content.
type ReplaceFileParams struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// PatchFileParams carries a delta for an existing file. Diff holds a
// line-oriented diff, Content full replacement text; Diff wins when
// both are set. ExpectedFingerprint, when set, makes the patch
// conditional on the file's current content.
type PatchFileParams struct {
	Path                string `json:"path"`
	Diff                string `json:"diff,omitempty"`
	Content             string `json:"content,omitempty"`
	ExpectedFingerprint string `json:"expectedFingerprint,omitempty"`
}

// MutationResponse acknowledges a create, replace or patch.
type MutationResponse struct {
	Message     string `json:"message"`
	Fingerprint string `json:"fingerprint"`
}
