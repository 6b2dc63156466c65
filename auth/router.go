package auth

import (
	"net/http"

	"board/config"
	"board/handlers"

	"github.com/gin-gonic/gin"
)

// Router is a wrapper that gates routes behind the admin key. The check
// runs before the wrapped handler touches the request body, and the
// routes stay disabled entirely while no key is configured.
type Router struct {
	Base *gin.Engine
}

const KeyHeader = "X-Admin-Key"

func (ar *Router) baseExec(c *gin.Context, handler gin.HandlerFunc) {
	if config.ADMIN_API_KEY == "" || c.GetHeader(KeyHeader) != config.ADMIN_API_KEY {
		c.JSON(http.StatusForbidden, handlers.AccessDeniedResponse)
		return
	}
	handler(c)
}

func (ar *Router) POST(path string, handler gin.HandlerFunc) {
	ar.Base.POST(path, func(c *gin.Context) {
		ar.baseExec(c, handler)
	})
}

func (ar *Router) GET(path string, handler gin.HandlerFunc) {
	ar.Base.GET(path, func(c *gin.Context) {
		ar.baseExec(c, handler)
	})
}
