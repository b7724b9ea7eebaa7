package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"kvtranslate/backend/internal/snowflake"
)

//go:generate mockgen -source=translation_cache_repository.go -destination=mock/translation_cache_repository.go -package=mock

// sqliteMaxParams stays under SQLite's default bound-parameter limit.
const sqliteMaxParams = 500

// TranslationCacheRepository caches translated strings per source language.
type TranslationCacheRepository interface {
	GetBatch(ctx context.Context, sourceLang string, texts []string) (map[string]string, error)
	SaveBatch(ctx context.Context, sourceLang string, translations map[string]string) error
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type translationCacheRepository struct {
	db dbtx
}

func NewTranslationCacheRepository(db dbtx) TranslationCacheRepository {
	return &translationCacheRepository{db: db}
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// GetBatch returns cached translations keyed by source text. Texts without a
// cached translation are absent from the map.
func (r *translationCacheRepository) GetBatch(ctx context.Context, sourceLang string, texts []string) (map[string]string, error) {
	result := make(map[string]string)
	for start := 0; start < len(texts); start += sqliteMaxParams {
		end := min(start+sqliteMaxParams, len(texts))
		part := texts[start:end]

		args := make([]any, 0, len(part)+1)
		args = append(args, sourceLang)
		for _, text := range part {
			args = append(args, hashText(text))
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(part)), ",")

		rows, err := r.db.QueryContext(
			ctx,
			`SELECT source_text, translated_text FROM translation_cache
			 WHERE source_lang = ? AND source_hash IN (`+placeholders+`)`,
			args...,
		)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var source, translated string
			if err := rows.Scan(&source, &translated); err != nil {
				rows.Close()
				return nil, err
			}
			result[source] = translated
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return result, nil
}

func (r *translationCacheRepository) SaveBatch(ctx context.Context, sourceLang string, translations map[string]string) error {
	now := formatTime(time.Now())
	for source, translated := range translations {
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO translation_cache (id, source_lang, source_hash, source_text, translated_text, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(source_lang, source_hash) DO UPDATE SET
			   translated_text = excluded.translated_text,
			   created_at = excluded.created_at`,
			snowflake.NextID(), sourceLang, hashText(source), source, translated, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *translationCacheRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translation_cache WHERE created_at < ?`, formatTime(cutoff))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *translationCacheRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translation_cache`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
