// Package state records conversion history in a local sqlite database.
package state

import (
	"database/sql"
	"embed"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/log"

	// Register migrate's sqlite3 driver.
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"

	// Register sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Conversion is one recorded template conversion.
type Conversion struct {
	ID          int64
	Slug        string
	Source      string
	ContentHash []byte
	CreatedAt   time.Time
}

// Connect opens the state database, creating its directory if needed.
func Connect(cfg *config.Settings) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.StateDBPath), 0750); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", cfg.StateDBPath)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Up runs database migrations to the latest version, creating the database
// directory if needed. Callers run Up before Connect, so the directory must
// exist by the time migrate opens the database.
func Up(cfg *config.Settings, logger log.Logger) error {
	if err := os.MkdirAll(filepath.Dir(cfg.StateDBPath), 0750); err != nil {
		return err
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, "sqlite3://"+cfg.StateDBPath)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	logger.Debug("State database migrations applied", "path", cfg.StateDBPath)
	return nil
}

// Store provides access to recorded conversions.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create records a conversion.
func (s *Store) Create(c *Conversion) error {
	result, err := s.db.Exec(
		"INSERT INTO conversions (slug, source, content_hash) VALUES (?, ?, ?)",
		c.Slug, c.Source, c.ContentHash,
	)
	if err != nil {
		return err
	}

	c.ID, err = result.LastInsertId()
	return err
}

// List returns all recorded conversions, most recent first.
func (s *Store) List() ([]Conversion, error) {
	rows, err := s.db.Query(
		"SELECT id, slug, source, content_hash, created_at FROM conversions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.Slug, &c.Source, &c.ContentHash, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
