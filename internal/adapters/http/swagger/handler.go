// Package swagger serves the embedded OpenAPI document and its viewer.
package swagger

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register attaches the API reference routes to router.
// Routes:
//
//	GET /api-docs      -> ReDoc HTML viewer
//	GET /openapi.yaml  -> embedded OpenAPI document
func Register(_ context.Context, router *gin.Engine) {
	if router == nil {
		panic("router is nil")
	}

	router.GET("/api-docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})

	router.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", OpenAPI)
	})
}

// Minimal HTML that loads ReDoc and points it at /openapi.yaml.
const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>salut API Docs</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc spec-url="/openapi.yaml"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`
