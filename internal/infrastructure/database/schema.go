package database

import (
	"context"
	"fmt"
)

// Schema migration tooling is out of scope; the tables are created
// idempotently at startup instead.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS portfolio_data (
		id         SMALLINT PRIMARY KEY,
		document   JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		subject    TEXT NOT NULL,
		message    TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'unread',
		ip_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at
		ON contact_messages (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS analytics_events (
		id         UUID PRIMARY KEY,
		event_type TEXT NOT NULL,
		section    TEXT,
		ip_address TEXT,
		user_agent TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analytics_events_type_created_at
		ON analytics_events (event_type, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_login    TIMESTAMPTZ
	)`,
}

// Bootstrap creates the tables if they do not exist yet.
func (db *PostgresDB) Bootstrap(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
