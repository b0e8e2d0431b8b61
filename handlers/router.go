package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the proxy routes onto a gin engine with the default
// logger and recovery middleware.
func NewRouter(queryHandler *QueryHandler, bundleHandler *BundleHandler) *gin.Engine {
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/query", queryHandler.ProxyQuery)
	}

	// Everything else is the client bundle
	r.NoRoute(bundleHandler.ServeBundle)

	return r
}
