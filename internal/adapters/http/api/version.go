package api

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// VersionDependencies defines the interface for version reporting.
type VersionDependencies interface {
	Version() string
}

// versionResponse mirrors the JSON shape of GET /version.
type versionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// VersionHandler handles build version requests.
type VersionHandler struct {
	deps VersionDependencies
}

// NewVersionHandler creates a new version handler.
func NewVersionHandler(deps VersionDependencies) *VersionHandler {
	return &VersionHandler{deps: deps}
}

// HandleVersion handles GET /version.
func (h *VersionHandler) HandleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, versionResponse{
		Version:   h.deps.Version(),
		GoVersion: runtime.Version(),
	})
}
