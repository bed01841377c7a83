// Package search implements substring search over vault file contents
// and file names.
package search

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultmd/vaultd/internal/server/handlers/api"
	"github.com/vaultmd/vaultd/internal/vault"
)

type SearchHandler struct {
	vault *vault.Vault
}

func New(v *vault.Vault) *SearchHandler {
	return &SearchHandler{vault: v}
}

// Content returns the vault-relative paths of searchable files whose
// content contains the query, in walk order.
func (h *SearchHandler) Content(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		api.AbortWithError(ctx, api.InvalidRequest(err))
		return
	}
	if req.Query == "" {
		api.AbortWithError(ctx, api.EmptyInput(errors.New("empty search query")))
		return
	}

	matches, err := h.vault.SearchContent(req.Query)
	if err != nil {
		api.AbortWithError(ctx, api.Internal(err))
		return
	}

	ctx.PureJSON(http.StatusOK, &SearchResponse{Matches: matches})
}

// Filename returns the vault-relative paths of files whose name
// contains the query, in walk order.
func (h *SearchHandler) Filename(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		api.AbortWithError(ctx, api.InvalidRequest(err))
		return
	}
	if req.Query == "" {
		api.AbortWithError(ctx, api.EmptyInput(errors.New("empty search query")))
		return
	}

	matches, err := h.vault.SearchFilename(req.Query)
	if err != nil {
		api.AbortWithError(ctx, api.Internal(err))
		return
	}

	ctx.PureJSON(http.StatusOK, &SearchResponse{Matches: matches})
}
