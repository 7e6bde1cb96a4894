package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/rogerio-castellano/store-dashboard/internal/config"
)

// Dialect captures the placeholder style of the underlying driver.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func DialectFor(driver string) Dialect {
	if driver == config.DriverPostgres {
		return Postgres
	}
	return SQLite
}

// Rebind rewrites '?' placeholders to the dialect's native form. Queries in
// this project never contain a literal '?' inside string constants.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 1
	for _, r := range query {
		if r == '?' {
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DB is the connection provider handed to repositories. Connections are
// taken from the pool per statement and returned when the statement ends.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects with the configured driver and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database url not configured")
	}

	sqlDB, err := sql.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{DB: sqlDB, Dialect: DialectFor(cfg.Driver)}, nil
}

// Wrap adapts an already opened handle, e.g. one produced by sqlmock.
func Wrap(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{DB: sqlDB, Dialect: dialect}
}
