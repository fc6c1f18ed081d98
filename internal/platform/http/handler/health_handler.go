// Package handler provides the HTTP handlers for platform level endpoints.
package handler

import "github.com/gin-gonic/gin"

// Status handles the /api/status endpoint used for uptime checks.
// It responds per HTTP method and prevents caching.
func Status(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
