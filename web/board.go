package web

import (
	"net/http"

	"board/config"
	"board/models"

	"github.com/gin-gonic/gin"
)

func BoardView(c *gin.Context) {
	posts, err := models.PostsLatest(config.POST_LIST_LIMIT)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "board.tmpl", gin.H{
			"error": "something went wrong",
		})
		return
	}
	c.HTML(http.StatusOK, "board.tmpl", gin.H{
		"posts": posts,
	})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
