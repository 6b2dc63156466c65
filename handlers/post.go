package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"board/cache"
	"board/config"
	"board/models"

	"github.com/gin-gonic/gin"
)

type PostCreateRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// validate trims both fields and returns the post to store, or the
// per-field failure details. An author that is empty after trimming is
// stored as NULL.
func (r *PostCreateRequest) validate() (post models.Post, details map[string]string) {
	fail := func(field, msg string) {
		if details == nil {
			details = map[string]string{}
		}
		details[field] = msg
	}
	content := strings.TrimSpace(r.Content)
	if content == "" {
		fail("content", "must not be empty")
	} else if utf8.RuneCountInString(content) > config.POST_MAX_LENGTH {
		fail("content", "must be at most 500 characters")
	}
	author := strings.TrimSpace(r.Author)
	if utf8.RuneCountInString(author) > config.AUTHOR_MAX_LENGTH {
		fail("author", "must be at most 32 characters")
	}
	if details != nil {
		return
	}
	post.Content = content
	if author != "" {
		post.Author = &author
	}
	return
}

func PostList(c *gin.Context) {
	if cache.Instance != nil {
		if val, err := cache.Instance.Get(c, cache.PostsKey); err == nil && val != "" {
			var posts []models.Post
			if json.Unmarshal([]byte(val), &posts) == nil {
				c.JSON(http.StatusOK, gin.H{"posts": posts})
				return
			}
		}
	}
	posts, err := models.PostsLatest(config.POST_LIST_LIMIT)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	if cache.Instance != nil {
		if b, err := json.Marshal(posts); err == nil {
			_ = cache.Instance.Set(c, cache.PostsKey, string(b))
		}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func PostCreate(c *gin.Context) {
	r := PostCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, BadJSONResponse)
		return
	}
	post, details := r.validate()
	if details != nil {
		c.JSON(http.StatusBadRequest, ValidationResponse{Error: "Validation failed", Details: details})
		return
	}
	if err := post.Create(); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}
	if cache.Instance != nil {
		_ = cache.Instance.Del(c, cache.PostsKey)
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}
