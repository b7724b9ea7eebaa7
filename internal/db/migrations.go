package db

import (
	"database/sql"
	"fmt"
)

// Base schema - documents and cache rows use Snowflake IDs, batches use UUIDs.
const baseSchema = `
CREATE TABLE IF NOT EXISTS batches (
  id TEXT PRIMARY KEY,
  document_count INTEGER NOT NULL,
  translated_count INTEGER NOT NULL,
  error_count INTEGER NOT NULL,
  row_count INTEGER NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_batches_created_at ON batches(created_at);

CREATE TABLE IF NOT EXISTS batch_documents (
  id INTEGER PRIMARY KEY,
  batch_id TEXT NOT NULL,
  position INTEGER NOT NULL,
  file_name TEXT NOT NULL,
  status TEXT NOT NULL,
  total_pairs INTEGER NOT NULL DEFAULT 0,
  suspicious_translations INTEGER NOT NULL DEFAULT 0,
  average_confidence REAL NOT NULL DEFAULT 0,
  translated_file TEXT,
  error_message TEXT,
  created_at TEXT NOT NULL,
  FOREIGN KEY (batch_id) REFERENCES batches(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_batch_documents_batch_id ON batch_documents(batch_id, position);

CREATE TABLE IF NOT EXISTS translation_cache (
  id INTEGER PRIMARY KEY,
  source_lang TEXT NOT NULL,
  source_hash TEXT NOT NULL,
  source_text TEXT NOT NULL,
  translated_text TEXT NOT NULL,
  created_at TEXT NOT NULL,
  UNIQUE(source_lang, source_hash)
);

CREATE INDEX IF NOT EXISTS idx_translation_cache_created_at ON translation_cache(created_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: record the detected source language per document
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('batch_documents') WHERE name = 'source_lang'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check source_lang column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE batch_documents ADD COLUMN source_lang TEXT`); err != nil {
			return fmt.Errorf("add source_lang column: %w", err)
		}
	}

	return nil
}
