package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"board/config"
	"board/db"
	"board/handlers"
	"board/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setAdminKey(t *testing.T, key string) {
	t.Helper()
	prev := config.ADMIN_API_KEY
	config.ADMIN_API_KEY = key
	t.Cleanup(func() { config.ADMIN_API_KEY = prev })
}

func postAdmin(router *gin.Engine, key, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/posts/admin", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(KeyHeader, key)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRouterKeyGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ar := &Router{Base: router}
	called := false
	ar.POST("/api/posts/admin", func(c *gin.Context) {
		called = true
		c.Status(http.StatusCreated)
	})

	// No key configured: forbidden regardless of the header
	setAdminKey(t, "")
	w := postAdmin(router, "anything", `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)

	setAdminKey(t, "secret")
	w = postAdmin(router, "wrong", `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)

	w = postAdmin(router, "secret", `{}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, called)
}

func TestAdminPostCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	db.Instance = gdb
	models.Init()

	router := gin.New()
	ar := &Router{Base: router}
	ar.POST("/api/posts/admin", handlers.PostCreate)

	setAdminKey(t, "secret")
	w := postAdmin(router, "secret", `{"author":"Admin","content":"pinned notice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Post models.Post `json:"post"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pinned notice", resp.Post.Content)

	// Validation still applies on the admin path
	w = postAdmin(router, "secret", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
