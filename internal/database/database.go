package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// schema is applied idempotently on every startup. There is no migration
// versioning; the tables are created once and never altered by the service.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	age INTEGER,
	profession TEXT,
	goals TEXT,
	experience TEXT,
	additional_info TEXT,
	payment_method TEXT,
	payment_amount REAL,
	payment_status TEXT DEFAULT 'pending',
	payment_id TEXT,
	order_id TEXT,
	signature TEXT,
	session_booked BOOLEAN DEFAULT 0,
	session_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	event_name TEXT NOT NULL,
	event_data TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	session_date DATETIME,
	session_type TEXT DEFAULT 'personality_development',
	status TEXT DEFAULT 'scheduled',
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (id)
);
`

// Open opens (creating if absent) the SQLite database at the given path,
// verifies connectivity and ensures the schema exists. The returned handle is
// shared by all repositories; callers own its lifecycle and must Close it on
// shutdown.
func Open(path string) (*sql.DB, error) {
	// Foreign keys stay off (the SQLite default): session and event rows may
	// reference users that were never created, and callers accept that.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing database schema: %w", err)
	}

	return db, nil
}
