package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder-backend/internal/shared/config"
	"cv-builder-backend/internal/shared/server/middleware"
)

// RouteRegistrar lets feature handlers attach their routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries everything NewRouter needs to assemble the HTTP surface.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
}

// NewRouter builds the gin engine with the shared middleware chain and
// mounts all feature routes under /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Session())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(deps.Config.CORSAllowOrigin))

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": deps.Config.Env})
	})

	for _, h := range deps.Handlers {
		h.RegisterRoutes(api)
	}

	return r
}

// Addr formats the listen address for the configured port.
func Addr(port string) string {
	return fmt.Sprintf(":%s", port)
}
