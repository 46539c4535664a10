package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the website frontend can call this
// backend from another origin. The configured frontend URL is always
// allowed; localhost origins are allowed outside release mode.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool
		if origin == "" || origin == frontendURL {
			isAllowed = true
		}
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			c.Header("Access-Control-Max-Age", "86400")
		}
		// If not allowed, no CORS headers are sent - browser will block the request

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
