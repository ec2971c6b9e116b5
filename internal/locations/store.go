// Package locations persists the user's saved locations in SQLite. A user
// keeps at most one location per type: saving a second "home" replaces the
// first.
package locations

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// LocationType labels a saved location's role.
type LocationType string

const (
	TypeHome    LocationType = "home"
	TypeWork    LocationType = "work"
	TypeTravel  LocationType = "travel"
	TypeOther   LocationType = "other"
	TypeCurrent LocationType = "current"
)

// ValidTypes lists the accepted location types.
var ValidTypes = []LocationType{TypeHome, TypeWork, TypeTravel, TypeOther, TypeCurrent}

// Location is one saved place.
type Location struct {
	Name      string       `json:"name"`
	Latitude  float64      `json:"lat"`
	Longitude float64      `json:"lon"`
	Type      LocationType `json:"type"`
	Timezone  string       `json:"timezone,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Store is a SQLite-backed locations repository.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

const schema = `
CREATE TABLE IF NOT EXISTS locations (
	type       TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	latitude   REAL NOT NULL,
	longitude  REAL NOT NULL,
	timezone   TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL
);`

// NewStore opens (and creates if necessary) the locations database at path.
// Use ":memory:" for an ephemeral store.
func NewStore(path string, logger *zap.SugaredLogger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening locations database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating locations table: %w", err)
	}

	logger.Debugf("locations store ready at %s", path)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func validType(t LocationType) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Save inserts or replaces the location for its type.
func (s *Store) Save(loc Location) error {
	if loc.Name == "" {
		return fmt.Errorf("location name is required")
	}
	if !validType(loc.Type) {
		return fmt.Errorf("invalid location type %q", loc.Type)
	}

	_, err := s.db.Exec(`
		INSERT INTO locations (type, name, latitude, longitude, timezone, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(type) DO UPDATE SET
			name = excluded.name,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			timezone = excluded.timezone,
			updated_at = excluded.updated_at`,
		string(loc.Type), loc.Name, loc.Latitude, loc.Longitude, loc.Timezone, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("error saving location: %w", err)
	}

	s.logger.Infow("saved location", "type", loc.Type, "name", loc.Name)
	return nil
}

// Get returns the location saved under a type.
func (s *Store) Get(t LocationType) (*Location, error) {
	row := s.db.QueryRow(`
		SELECT type, name, latitude, longitude, timezone, updated_at
		FROM locations WHERE type = ?`, string(t))

	var loc Location
	err := row.Scan(&loc.Type, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.Timezone, &loc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no %s location saved", t)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading location: %w", err)
	}
	return &loc, nil
}

// List returns all saved locations ordered by type.
func (s *Store) List() ([]Location, error) {
	rows, err := s.db.Query(`
		SELECT type, name, latitude, longitude, timezone, updated_at
		FROM locations ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("error listing locations: %w", err)
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		var loc Location
		if err := rows.Scan(&loc.Type, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.Timezone, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

// Delete removes the location saved under a type. Deleting a type with no
// saved location is not an error.
func (s *Store) Delete(t LocationType) error {
	if _, err := s.db.Exec(`DELETE FROM locations WHERE type = ?`, string(t)); err != nil {
		return fmt.Errorf("error deleting location: %w", err)
	}
	return nil
}
