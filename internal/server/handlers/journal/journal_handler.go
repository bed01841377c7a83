// Package journal exposes the read-only revision journal endpoint.
package journal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultmd/vaultd/internal/server/handlers/api"
	journalsvc "github.com/vaultmd/vaultd/internal/server/journal"
)

type JournalHandler struct {
	journal *journalsvc.Service
}

func New(j *journalsvc.Service) *JournalHandler {
	return &JournalHandler{journal: j}
}

// List returns recent revisions, newest first, optionally filtered to a
// single vault path.
func (h *JournalHandler) List(ctx *gin.Context) {
	var req ListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		api.AbortWithError(ctx, api.InvalidRequest(err))
		return
	}

	entries, err := h.journal.List(req.Path, req.Limit)
	if err != nil {
		api.AbortWithError(ctx, api.Internal(err))
		return
	}

	ctx.PureJSON(http.StatusOK, &ListResponse{Revisions: entries})
}
