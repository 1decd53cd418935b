package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vytor/chessroyale/internal/logger"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Dialect identifies the SQL backend behind a connection string.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "postgres"
)

// DialectFor picks the backend from the connection string scheme.
func DialectFor(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return Postgres
	}
	return SQLite
}

type DB struct {
	*sql.DB
	dialect Dialect
	builder squirrel.StatementBuilderType
	log     *logger.Logger
}

// Open connects to dsn, applies pending migrations and returns the handle.
// The handle is meant to be opened once at startup and closed at shutdown.
func Open(dsn string) (*DB, error) {
	log := logger.Default().WithPrefix("db")

	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("empty connection string")
	}

	dialect := DialectFor(dsn)
	driverDSN := dsn
	if dialect == SQLite {
		driverDSN = sqliteDSN(dsn)
	}
	log.Info("opening %s database", dialect)

	sqlDB, err := sql.Open(string(dialect), driverDSN)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	if dialect == SQLite {
		sqlDB.SetMaxOpenConns(1) // single writer; also keeps :memory: on one connection
	}

	db := &DB{
		DB:      sqlDB,
		dialect: dialect,
		builder: builderFor(dialect),
		log:     log,
	}

	log.Debug("applying migrations")
	if err := db.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	if strings.Contains(path, ":memory:") {
		return path + sep + "_busy_timeout=5000"
	}
	return path + sep + "_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL"
}

func builderFor(d Dialect) squirrel.StatementBuilderType {
	if d == Postgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Dialect reports the backend this handle talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Builder returns a squirrel builder using the dialect's placeholder format.
func (db *DB) Builder() squirrel.StatementBuilderType {
	return db.builder
}

func (db *DB) applyMigrations(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	dir := "migrations/sqlite"
	if db.dialect == Postgres {
		dir = "migrations/postgres"
	}
	entries, err := migrationsFS.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		version := entry.Name()
		applied, err := db.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			db.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile(dir + "/" + version)
		if err != nil {
			return err
		}
		db.log.Info("applying migration: %s", version)
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			db.log.Error("migration %s failed: %v", version, err)
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		insert, args, err := db.builder.Insert("schema_migrations").Columns("version").Values(version).ToSql()
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, insert, args...); err != nil {
			return err
		}
		db.log.Info("migration %s applied successfully", version)
	}
	return nil
}

func (db *DB) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := db.builder.Select("version").From("schema_migrations").Where(squirrel.Eq{"version": version}).ToSql()
	if err != nil {
		return false, err
	}
	var v string
	err = db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
