package models

import (
	"board/db"
)

func Init() {
	db.Instance.AutoMigrate(&Post{})

	// The check from the struct tag uses length(), which MySQL counts in
	// bytes. Replace it there so multibyte content within the character
	// bound still inserts.
	if db.Instance.Dialector.Name() == "mysql" {
		db.Instance.Exec("ALTER TABLE posts DROP CHECK chk_posts_content")
		db.Instance.Exec("ALTER TABLE posts ADD CONSTRAINT chk_posts_content CHECK (" + contentCheckExpr("mysql") + ")")
	}
}
