package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultmd/vaultd/internal/server/handlers/api"
)

// ErrorHandler renders errors recorded on the gin context. Typed
// *api.Error values map to their own status and envelope; anything else
// becomes a generic 500. Server errors are logged with their cause,
// which never reaches the client.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 {
			return
		}

		err := ctx.Errors.Last().Err

		var apiErr *api.Error
		if !errors.As(err, &apiErr) {
			apiErr = api.Internal(err)
		}

		if apiErr.Status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"code", apiErr.Code,
				"method", ctx.Request.Method,
				"path", ctx.Request.URL.Path,
				"status", apiErr.Status,
				"error", apiErr.Internal,
			)
		} else {
			slog.Warn("request rejected",
				"code", apiErr.Code,
				"method", ctx.Request.Method,
				"path", ctx.Request.URL.Path,
				"status", apiErr.Status,
			)
		}

		if ctx.Writer.Written() {
			return
		}
		ctx.PureJSON(apiErr.Status, apiErr)
	}
}
