package db

import (
	"board/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init picks the first configured store: Postgres (hosted), then MySQL,
// then the local SQLite file.
func Init() {
	var dialector gorm.Dialector
	if config.DATABASE_DSN != "" {
		dialector = postgres.Open(config.DATABASE_DSN)
	} else if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		dialector = sqlite.Open(config.SQLITE_FILE)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
