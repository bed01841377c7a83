// Package files implements the vault file endpoints: read, create,
// replace and the line-oriented patch engine.
package files

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/vaultmd/vaultd/internal/patch"
	"github.com/vaultmd/vaultd/internal/server/handlers/api"
	"github.com/vaultmd/vaultd/internal/server/journal"
	"github.com/vaultmd/vaultd/internal/vault"
)

type FilesHandler struct {
	vault   *vault.Vault
	journal *journal.Service
}

// New builds the files handler. journal may be nil, in which case
// mutations are not recorded.
func New(v *vault.Vault, j *journal.Service) *FilesHandler {
	return &FilesHandler{vault: v, journal: j}
}

// Read serves the full file content as plain text. The fingerprint of
// the returned content travels in the ETag header; clients hand it back
// as a patch precondition.
func (h *FilesHandler) Read(ctx *gin.Context) {
	relPath := strings.TrimPrefix(ctx.Param("path"), "/")

	data, err := h.vault.ReadFile(relPath)
	if err != nil {
		api.AbortWithError(ctx, mapVaultError(err))
		return
	}

	ctx.Header(api.HeaderETag, vault.Fingerprint(data))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

// Create writes a new file, creating parent directories as needed.
func (h *FilesHandler) Create(ctx *gin.Context) {
	var req CreateFileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		api.AbortWithError(ctx, api.InvalidRequest(err))
		return
	}

	fingerprint, err := h.vault.CreateFile(req.Path, []byte(req.Content))
	if err != nil {
		api.AbortWithError(ctx, mapVaultError(err))
		return
	}

	h.record(req.Path, journal.OpCreate, fingerprint, len(req.Content))

	ctx.Header(api.HeaderETag, fingerprint)
	ctx.PureJSON(http.StatusCreated, &MutationResponse{
		Message:     "created",
		Fingerprint: fingerprint,
	})
}

// Replace overwrites an existing file with the supplied content.
func (h *FilesHandler) Replace(ctx *gin.Context) {
	var req ReplaceFileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		api.AbortWithError(ctx, api.InvalidRequest(err))
		return
	}

	fingerprint, err := h.vault.ReplaceFile(req.Path, []byte(req.Content))
	if err != nil {
		api.AbortWithError(ctx, mapVaultError(err))
		return
	}

	h.record(req.Path, journal.OpReplace, fingerprint, len(req.Content))

	ctx.Header(api.HeaderETag, fingerprint)
	ctx.PureJSON(http.StatusOK, &MutationResponse{
		Message:     "replaced",
		Fingerprint: fingerprint,
	})
}

// Patch applies a client-supplied delta to an existing file. The
// request carries either a line diff (ndiff or unified) or replacement
// content, optionally guarded by an expected fingerprint. Any failure
// before the final write leaves the file untouched.
func (h *FilesHandler) Patch(ctx *gin.Context) {
	var req PatchFileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		api.AbortWithError(ctx, api.InvalidRequest(err))
		return
	}

	current, err := h.vault.ReadFile(req.Path)
	if err != nil {
		api.AbortWithError(ctx, mapVaultError(err))
		return
	}

	expected := req.ExpectedFingerprint
	if expected == "" {
		expected = ctx.GetHeader("If-Match")
	}
	if expected != "" && !vault.MatchFingerprint(expected, current) {
		api.AbortWithError(ctx, api.Conflict(fmt.Errorf("fingerprint mismatch for %s", req.Path)))
		return
	}

	delta, err := req.delta()
	if err != nil {
		api.AbortWithError(ctx, mapPatchError(err))
		return
	}

	newContent, err := delta.Apply(req.Path, string(current))
	if err != nil {
		api.AbortWithError(ctx, mapPatchError(err))
		return
	}

	fingerprint, err := h.vault.ReplaceFile(req.Path, []byte(newContent))
	if err != nil {
		api.AbortWithError(ctx, mapVaultError(err))
		return
	}

	h.record(req.Path, journal.OpPatch, fingerprint, len(newContent))

	ctx.Header(api.HeaderETag, fingerprint)
	ctx.PureJSON(http.StatusOK, &MutationResponse{
		Message:     "patched",
		Fingerprint: fingerprint,
	})
}

// record logs and journals a successful mutation. The journal is
// observational, so journal failures are logged and swallowed.
func (h *FilesHandler) record(path string, op journal.Op, fingerprint string, size int) {
	slog.Info("vault write", "op", op, "path", path, "size", humanize.Bytes(uint64(size)))

	if h.journal == nil {
		return
	}
	if _, err := h.journal.Record(path, op, fingerprint, int64(size)); err != nil {
		slog.Warn("journal record failed", "path", path, "op", op, "error", err)
	}
}

func mapVaultError(err error) *api.Error {
	switch {
	case errors.Is(err, vault.ErrInvalidPath):
		return api.InvalidPath(err)
	case errors.Is(err, vault.ErrNotExist):
		return api.NotFound(err)
	case errors.Is(err, vault.ErrExist):
		return api.AlreadyExists(err)
	case errors.Is(err, vault.ErrEmptyContent):
		return api.EmptyInput(err)
	default:
		return api.Internal(err)
	}
}

func mapPatchError(err error) *api.Error {
	switch {
	case errors.Is(err, patch.ErrEmptyDelta):
		return api.EmptyInput(err)
	case errors.Is(err, patch.ErrMalformed):
		return api.MalformedDelta(err)
	default:
		return api.Internal(err)
	}
}
