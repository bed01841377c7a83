package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// HSTS sets strict transport and content-type headers. Applied only
// when the server terminates TLS itself.
func HSTS() gin.HandlerFunc {
	return secure.New(secure.Config{
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		IENoOpen:             true,
		SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
	})
}
