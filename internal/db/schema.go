package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Every holding table carries the same
// envelope: TEXT uuid primary key, owner_id scoping the row to a user, and
// created_at/updated_at timestamps.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL,
    name          TEXT,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_active
    ON users(email) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS land (
    id               TEXT PRIMARY KEY,
    owner_id         TEXT NOT NULL REFERENCES users(id),
    name             TEXT NOT NULL,
    location         TEXT NOT NULL,
    area             REAL NOT NULL CHECK (area > 0),
    area_unit        TEXT NOT NULL DEFAULT 'acres',
    value            REAL NOT NULL CHECK (value > 0),
    acquisition_date DATETIME NOT NULL,
    status           TEXT NOT NULL DEFAULT 'active',
    description      TEXT,
    created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS labour (
    id                      TEXT PRIMARY KEY,
    owner_id                TEXT NOT NULL REFERENCES users(id),
    employee_name           TEXT NOT NULL,
    position                TEXT NOT NULL,
    department              TEXT NOT NULL,
    employee_type           TEXT NOT NULL DEFAULT 'full-time',
    salary                  REAL NOT NULL CHECK (salary > 0),
    hire_date               DATETIME NOT NULL,
    status                  TEXT NOT NULL DEFAULT 'active',
    skills                  TEXT,
    contact_info            TEXT,
    collaboration_type      TEXT,
    contribution_area       TEXT,
    network_value           REAL,
    projects_led            INTEGER,
    team_impact             TEXT,
    mentorship_role         TEXT,
    is_outsourced           INTEGER,
    team_size               INTEGER,
    impact_multiplier       REAL,
    collective_achievements TEXT,
    created_at              DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at              DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS capital (
    id               TEXT PRIMARY KEY,
    owner_id         TEXT NOT NULL REFERENCES users(id),
    name             TEXT NOT NULL,
    type             TEXT NOT NULL,
    category         TEXT NOT NULL,
    amount           REAL NOT NULL,
    currency         TEXT NOT NULL DEFAULT 'USD',
    acquisition_date DATETIME NOT NULL,
    maturity_date    DATETIME,
    status           TEXT NOT NULL DEFAULT 'active',
    description      TEXT,
    returns          REAL,
    created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS technology (
    id               TEXT PRIMARY KEY,
    owner_id         TEXT NOT NULL REFERENCES users(id),
    name             TEXT NOT NULL,
    type             TEXT NOT NULL,
    category         TEXT NOT NULL,
    manufacturer     TEXT,
    model            TEXT,
    serial_number    TEXT,
    purchase_date    DATETIME NOT NULL,
    purchase_price   REAL NOT NULL CHECK (purchase_price > 0),
    maintenance_cost REAL NOT NULL DEFAULT 0,
    status           TEXT NOT NULL DEFAULT 'operational',
    location         TEXT,
    specifications   TEXT,
    automation_level REAL,
    ai_capabilities  TEXT,
    created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS information (
    id               TEXT PRIMARY KEY,
    owner_id         TEXT NOT NULL REFERENCES users(id),
    title            TEXT NOT NULL,
    category         TEXT NOT NULL,
    type             TEXT NOT NULL,
    source           TEXT,
    acquisition_date DATETIME NOT NULL,
    confidentiality  TEXT NOT NULL DEFAULT 'internal',
    value            TEXT,
    file_url         TEXT,
    summary          TEXT,
    tags             TEXT,
    created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS business (
    id                   TEXT PRIMARY KEY,
    owner_id             TEXT NOT NULL REFERENCES users(id),
    name                 TEXT NOT NULL,
    industry             TEXT NOT NULL,
    registration_number  TEXT,
    established_date     DATETIME NOT NULL,
    ownership_percentage REAL NOT NULL CHECK (ownership_percentage BETWEEN 0 AND 100),
    investment_amount    REAL NOT NULL,
    current_value        REAL NOT NULL,
    status               TEXT NOT NULL DEFAULT 'active',
    location             TEXT,
    employees            INTEGER NOT NULL DEFAULT 0,
    annual_revenue       REAL,
    description          TEXT,
    website              TEXT,
    created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS content (
    id                    TEXT PRIMARY KEY,
    owner_id              TEXT NOT NULL REFERENCES users(id),
    title                 TEXT NOT NULL,
    content_type          TEXT NOT NULL,
    platform              TEXT NOT NULL,
    publication_date      DATETIME NOT NULL,
    audience_reach        REAL NOT NULL DEFAULT 0,
    view_count            REAL NOT NULL DEFAULT 0,
    engagement_rate       REAL NOT NULL DEFAULT 0,
    is_repeatable         INTEGER NOT NULL DEFAULT 1,
    distribution_channels TEXT NOT NULL DEFAULT '',
    production_cost       REAL NOT NULL DEFAULT 0,
    revenue_generated     REAL NOT NULL DEFAULT 0,
    content_url           TEXT,
    status                TEXT NOT NULL DEFAULT 'published',
    description           TEXT,
    created_at            DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at            DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
