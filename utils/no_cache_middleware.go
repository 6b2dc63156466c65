package utils

import (
	"github.com/gin-gonic/gin"
)

// NoCacheMiddleware marks responses as non-cacheable so polling clients
// always see fresh posts.
func NoCacheMiddleware(c *gin.Context) {
	c.Header("cache-control", "no-cache")
	c.Next()
}
