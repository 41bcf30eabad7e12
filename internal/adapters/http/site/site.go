// Package site serves the embedded getting-started guide.
package site

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Register attaches the embedded guide under /docs.
func Register(_ context.Context, router *gin.Engine) {
	if router == nil {
		panic("router is nil")
	}

	router.StaticFS("/docs", FS())
}
