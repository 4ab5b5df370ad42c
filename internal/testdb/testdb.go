// Package testdb поднимает базу данных в памяти для тестов.
// Схема повторяет продуктивные миграции; запросы репозиториев пишутся
// через bindvar "?", поэтому работают и на PostgreSQL, и на SQLite.
package testdb

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    is_staff BOOLEAN NOT NULL DEFAULT FALSE,
    is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE destinations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE locations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    location_type TEXT NOT NULL,
    destination_id TEXT NOT NULL REFERENCES destinations (id),
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE lands (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    park_id TEXT NOT NULL REFERENCES locations (id),
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE experiences (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    experience_type TEXT NOT NULL,
    land_id TEXT REFERENCES lands (id),
    destination_id TEXT REFERENCES destinations (id),
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE experience_locations (
    experience_id TEXT NOT NULL REFERENCES experiences (id),
    location_id TEXT NOT NULL REFERENCES locations (id),
    PRIMARY KEY (experience_id, location_id)
);

CREATE TABLE trips (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_by TEXT NOT NULL REFERENCES users (id),
    destination_id TEXT NOT NULL REFERENCES destinations (id),
    start_date DATE NOT NULL,
    end_date DATE NOT NULL,
    last_content_update TIMESTAMP NOT NULL,
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE breaks (
    id TEXT PRIMARY KEY,
    location_id TEXT NOT NULL REFERENCES locations (id),
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE travel_events (
    id TEXT PRIMARY KEY,
    from_location_id TEXT REFERENCES locations (id),
    to_location_id TEXT REFERENCES locations (id),
    custom_from_location TEXT,
    custom_to_location TEXT,
    travel_type TEXT NOT NULL,
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE meals (
    id TEXT PRIMARY KEY,
    meal_experience_id TEXT NOT NULL REFERENCES experiences (id),
    meal_type TEXT NOT NULL,
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE itinerary_items (
    id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL REFERENCES trips (id),
    day DATE NOT NULL,
    activity_order INTEGER NOT NULL,
    start_time TEXT,
    end_time TEXT,
    notes TEXT,
    content_type TEXT,
    activity_id TEXT,
    date_created TIMESTAMP NOT NULL,
    date_updated TIMESTAMP NOT NULL,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);
`

// New создает чистую базу данных в памяти со схемой сервиса.
func New(tb testing.TB) *sqlx.DB {
	tb.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		tb.Fatalf("не удалось открыть базу в памяти: %v", err)
	}
	// база живет в единственном соединении
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		tb.Fatalf("не удалось применить схему: %v", err)
	}
	tb.Cleanup(func() { db.Close() })
	return db
}
