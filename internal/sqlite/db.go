package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/quarrylabs/sitekeeper/internal/repository"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens (creating on first use) the database at path and applies any
// pending migrations. Failure to open or migrate wraps
// repository.ErrStoreUnavailable; callers must treat it as fatal to this
// session's persistence rather than retry silently.
func Open(dataSourceName string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", repository.ErrStoreUnavailable, err)
	}

	if _, err := sqlDB.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: configure database: %v", repository.ErrStoreUnavailable, err)
	}

	db := &DB{sqlDB}
	if err := db.Migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// migrations is the ordered list of schema versions. Entries are append-only
// and strictly additive: an upgrade may add tables or indexes but never drop
// or rewrite existing partitions.
var migrations = []string{
	`
-- Projects partition
CREATE TABLE projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    start_date TEXT NOT NULL DEFAULT '',
    end_date TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL CHECK(status IN ('planning', 'active', 'completed', 'paused')),
    budget REAL NOT NULL DEFAULT 0,
    progress INTEGER NOT NULL DEFAULT 0,
    location TEXT NOT NULL DEFAULT '',
    materials TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX idx_projects_status ON projects(status);

-- Workers partition
CREATE TABLE workers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    hourly_rate REAL NOT NULL DEFAULT 0,
    photo_ref TEXT NOT NULL DEFAULT '',
    skills TEXT NOT NULL DEFAULT '[]',
    status TEXT NOT NULL CHECK(status IN ('active', 'inactive')),
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX idx_workers_status ON workers(status);

-- Tasks partition. project_id is an opaque reference: no FK on purpose,
-- dangling references are tolerated and resolved to "unknown" on read.
CREATE TABLE tasks (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    assigned_to TEXT NOT NULL DEFAULT '[]',
    status TEXT NOT NULL CHECK(status IN ('pending', 'in-progress', 'completed')),
    priority TEXT NOT NULL CHECK(priority IN ('low', 'medium', 'high')),
    due_date TEXT NOT NULL DEFAULT '',
    progress INTEGER NOT NULL DEFAULT 0,
    materials TEXT NOT NULL DEFAULT '[]',
    images TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX idx_tasks_project ON tasks(project_id);
CREATE INDEX idx_tasks_status ON tasks(status);

-- Attendance partition
CREATE TABLE attendance (
    id TEXT PRIMARY KEY,
    worker_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    task_id TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    check_in TEXT NOT NULL,
    check_out TEXT NOT NULL DEFAULT '',
    hours_worked REAL NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX idx_attendance_worker ON attendance(worker_id);
CREATE INDEX idx_attendance_project ON attendance(project_id);
CREATE INDEX idx_attendance_date ON attendance(date);
`,
}

// Migrate applies pending schema versions, tracked via PRAGMA user_version.
// Re-running against an up-to-date database is a no-op.
func (db *DB) Migrate() error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("%w: read schema version: %v", repository.ErrStoreUnavailable, err)
	}

	if version > len(migrations) {
		return fmt.Errorf("%w: database schema version %d is newer than this build", repository.ErrStoreUnavailable, version)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("%w: apply migration %d: %v", repository.ErrStoreUnavailable, i+1, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("%w: record schema version: %v", repository.ErrStoreUnavailable, err)
		}
	}

	return nil
}

// SchemaVersion returns the applied schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("PRAGMA user_version").Scan(&version)
	return version, err
}
