package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true

	DATABASE_DSN = ""         // Postgres will be used if this is set
	MYSQL_DSN    = ""         // MySQL will be used if DATABASE_DSN is not configured and this is set
	SQLITE_FILE  = "board.db" // SQLite is the local dev fallback

	ADMIN_API_KEY = "" // The admin write endpoint stays disabled while this is empty

	REDIS_ADDR        = "" // Post list caching is enabled if this is set, e.g. "127.0.0.1:6379"
	REDIS_DB          = 0
	CACHE_TTL_SECONDS = 30

	POST_LIST_LIMIT   = 50
	POST_MAX_LENGTH   = 500
	AUTHOR_MAX_LENGTH = 32
)

func init() {
	load()
}

// load applies the startup fallback chain: process env vars win over the
// .env local override, which wins over the compiled defaults.
func load() {
	// Local override file, ignored by version control. Real env vars win.
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("DATABASE_DSN", &DATABASE_DSN)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("ADMIN_API_KEY", &ADMIN_API_KEY)
	readEnvString("REDIS_ADDR", &REDIS_ADDR)
	readEnvInt("REDIS_DB", &REDIS_DB)
	readEnvInt("CACHE_TTL_SECONDS", &CACHE_TTL_SECONDS)
	readEnvInt("POST_LIST_LIMIT", &POST_LIST_LIMIT)
	readEnvInt("POST_MAX_LENGTH", &POST_MAX_LENGTH)
	readEnvInt("AUTHOR_MAX_LENGTH", &AUTHOR_MAX_LENGTH)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
