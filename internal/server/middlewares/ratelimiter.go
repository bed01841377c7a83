package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	"github.com/vaultmd/vaultd/internal/server/handlers/api"
)

var rateLimitStore = memory.NewStore()

// RateLimiter limits requests per client IP. The rate uses
// ulule/limiter's formatted syntax, e.g. "120-M" for 120 per minute.
func RateLimiter(formattedRate string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", formattedRate, err)
	}

	lim := limiter.New(rateLimitStore, rate)
	return mgin.NewMiddleware(
		lim,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.PureJSON(http.StatusTooManyRequests, api.RateLimited())
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			c.PureJSON(http.StatusInternalServerError, api.Internal(err))
		}),
	), nil
}
