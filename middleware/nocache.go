package middleware

import "github.com/gin-gonic/gin"

// NoCache disables response caching everywhere so admin views never serve
// stale content.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
