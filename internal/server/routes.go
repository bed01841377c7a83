package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultmd/vaultd/internal/server/handlers/daily"
	"github.com/vaultmd/vaultd/internal/server/handlers/files"
	journalHandler "github.com/vaultmd/vaultd/internal/server/handlers/journal"
	"github.com/vaultmd/vaultd/internal/server/handlers/search"
	"github.com/vaultmd/vaultd/internal/server/middlewares"
	"github.com/vaultmd/vaultd/internal/version"
)

func SetupRoutes(svc *Services, config *Config) (http.Handler, error) {
	r := gin.New()

	filesH := files.New(svc.Vault, svc.Journal)
	searchH := search.New(svc.Vault)
	dailyH := daily.New(svc.Daily)
	journalH := journalHandler.New(svc.Journal)

	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.GZIP())
	r.Use(middlewares.CORS())
	if config.HTTP.TLSEnabled() {
		r.Use(middlewares.HSTS())
	}
	r.Use(middlewares.ErrorHandler())

	r.GET("/", IndexHandler)
	r.GET("/healthz", HealthHandler)

	v1 := r.Group("/api/v1")
	if config.HTTP.RateLimit != "" {
		rl, err := middlewares.RateLimiter(config.HTTP.RateLimit)
		if err != nil {
			return nil, err
		}
		v1.Use(rl)
	}
	{
		// files
		v1.GET("/files/*path", filesH.Read)
		v1.POST("/files", filesH.Create)
		v1.PUT("/files", filesH.Replace)
		v1.PATCH("/files", filesH.Patch)

		// search
		v1.GET("/search/content", searchH.Content)
		v1.GET("/search/filename", searchH.Filename)

		// daily note
		v1.GET("/daily-note", dailyH.Get)

		// revision journal
		v1.GET("/journal", journalH.List)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
		})
	})

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "method not allowed",
		})
	})

	return r.Handler(), nil
}

func IndexHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, version.DetailedWithApp())
}

func HealthHandler(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
