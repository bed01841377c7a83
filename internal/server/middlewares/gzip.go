package middlewares

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Everything the vault serves is text, so no extension exclusions.
var gzipExcludedPaths = []string{
	"/healthz",
}

func GZIP() gin.HandlerFunc {
	return gzip.Gzip(
		gzip.BestSpeed,
		gzip.WithExcludedPaths(gzipExcludedPaths),
	)
}
