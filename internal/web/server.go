package web

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"dotsandboxes/internal/app"
)

// NewServer wires the API routes and returns the engine.
func NewServer(svc *app.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	pprof.Register(r)

	h := &handlers{svc: svc}
	api := r.Group("/api")
	api.POST("/games", h.create)
	api.GET("/games/:id", h.get)
	api.POST("/games/:id/moves", h.move)
	api.POST("/games/:id/reset", h.reset)

	return r
}
