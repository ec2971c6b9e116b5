package config

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider stores configuration in a SQLite database. Unlike the
// YAML backend it supports writes, so a management UI can update the
// running configuration in place.
type SQLiteProvider struct {
	db *sql.DB
}

// NewSQLiteProvider opens (and if needed initializes) the database.
func NewSQLiteProvider(path string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening config database %s: %v", path, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing config schema: %v", err)
	}

	return &SQLiteProvider{db: db}, nil
}

// LoadConfig reads the stored configuration. An empty database yields
// the defaults.
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	cfg := &ConfigData{}

	var data string
	err := s.db.QueryRow(`SELECT data FROM config WHERE id = 1`).Scan(&data)
	switch {
	case err == sql.ErrNoRows:
		// Nothing stored yet, fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("error reading config row: %v", err)
	default:
		if err := json.Unmarshal([]byte(data), cfg); err != nil {
			return nil, fmt.Errorf("error parsing stored config: %v", err)
		}
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// SaveConfig replaces the stored configuration.
func (s *SQLiteProvider) SaveConfig(cfg *ConfigData) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO config (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, string(data))
	if err != nil {
		return fmt.Errorf("error writing config row: %v", err)
	}
	return nil
}

// IsReadOnly always returns false for the SQLite backend.
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close releases the database handle.
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
