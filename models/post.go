package models

import (
	"time"

	"board/db"
)

// Post is a single board message. Posts are insert-only: no updates or
// deletes go through this model.
type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Author    *string   `gorm:"size:32" json:"author"`
	Content   string    `gorm:"type:text;not null;check:chk_posts_content,length(content) BETWEEN 1 AND 500" json:"content"`
	CreatedAt time.Time `gorm:"index:posts_created" json:"created_at"`
}

// contentCheckExpr returns the stored-length bound for the dialect.
// MySQL's length() counts bytes; the bound is in characters.
func contentCheckExpr(dialect string) string {
	if dialect == "mysql" {
		return "char_length(content) BETWEEN 1 AND 500"
	}
	return "length(content) BETWEEN 1 AND 500"
}

func (p *Post) Create() error {
	return db.Instance.Create(p).Error
}

// PostsLatest returns up to limit posts, newest first. ID breaks ties for
// posts created within the same timestamp granularity.
func PostsLatest(limit int) (posts []Post, err error) {
	err = db.Instance.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).
		Error
	return
}
