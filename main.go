package main

import (
	"log"
	"strings"
	"time"

	"board/auth"
	"board/cache"
	"board/config"
	"board/db"
	"board/handlers"
	"board/models"
	"board/utils"
	"board/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	db.Init()
	models.Init()
	cache.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.Use(utils.RequestIDMiddleware)
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", auth.KeyHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/healthz"})))
	}
	router.Use(utils.NoCacheMiddleware)

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	router.GET("/healthz", handlers.Health)
	// Board API
	router.GET("/api/posts", handlers.PostList)
	router.POST("/api/posts", handlers.PostCreate)
	// Admin write path, stays disabled unless ADMIN_API_KEY is configured
	adminRouter := &auth.Router{Base: router}
	adminRouter.POST("/api/posts/admin", handlers.PostCreate)

	/*
	 *	Web interface
	 */
	router.GET("/", web.BoardView)
	router.GET("/robots.txt", web.DisallowRobots)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
