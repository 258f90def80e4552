package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Backend identifies which persistence store the gateway talks to. The
// decision is made once at startup; nothing downstream re-checks it.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMySQL    Backend = "mysql"
	BackendSQLite   Backend = "sqlite"
)

type Config struct {
	AppPort string

	// Remote hosted store, preferred when configured.
	DatabaseURL string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// Local durable fallback store.
	SQLitePath string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppPort:     getenv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		MySQLHost: os.Getenv("MYSQL_HOST"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "rentdesk"),
		MySQLUser: getenv("MYSQL_USER", "rentdesk"),
		MySQLPass: getenv("MYSQL_PASS", "rentdesk"),

		SQLitePath: getenv("SQLITE_PATH", "rentdesk.db"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

// SelectedBackend prefers the remote store and falls back to the local one:
// DATABASE_URL → postgres, MYSQL_HOST → mysql, otherwise sqlite.
func (c *Config) SelectedBackend() Backend {
	if c.DatabaseURL != "" {
		return BackendPostgres
	}
	if c.MySQLHost != "" {
		return BackendMySQL
	}
	return BackendSQLite
}

// Validate fails fast at startup so no per-call "is the backend configured"
// guard is needed anywhere else.
func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.SelectedBackend() {
	case BackendMySQL:
		if c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
