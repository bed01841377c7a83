package api

import "github.com/gin-gonic/gin"

// HeaderETag carries the content fingerprint on reads and mutations.
const HeaderETag = "ETag"

// AbortWithError records err on the context and stops the handler
// chain. The ErrorHandler middleware renders the response.
func AbortWithError(ctx *gin.Context, err *Error) {
	ctx.Error(err)
	ctx.Abort()
}
