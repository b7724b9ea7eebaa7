package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kvtranslate/backend/internal/model"
	"kvtranslate/backend/internal/snowflake"
)

//go:generate mockgen -source=batch_repository.go -destination=mock/batch_repository.go -package=mock

// BatchRepository stores the history of processed uploads.
type BatchRepository interface {
	Save(ctx context.Context, batch *model.Batch) error
	List(ctx context.Context, limit int) ([]model.BatchSummary, error)
	GetByID(ctx context.Context, id string) (model.BatchSummary, error)
	ListDocuments(ctx context.Context, batchID string) ([]model.BatchDocument, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type batchRepository struct {
	db *sql.DB
}

func NewBatchRepository(db *sql.DB) BatchRepository {
	return &batchRepository{db: db}
}

// Save writes the batch and its documents in one transaction.
func (r *batchRepository) Save(ctx context.Context, batch *model.Batch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	translated := batch.TranslatedCount()
	createdAt := formatTime(batch.CreatedAt)

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO batches (id, document_count, translated_count, error_count, row_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		batch.ID, len(batch.Documents), translated, len(batch.Documents)-translated, len(batch.Rows), createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for i, d := range batch.Documents {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO batch_documents (id, batch_id, position, file_name, status, total_pairs,
			   suspicious_translations, average_confidence, translated_file, error_message, source_lang, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snowflake.NextID(), batch.ID, i, d.FileName, string(d.Status), d.TotalPairs,
			d.SuspiciousTranslations, d.AverageConfidence, nullString(d.TranslatedFile), nullString(d.Error),
			nullString(d.SourceLanguage), createdAt,
		)
		if err != nil {
			return fmt.Errorf("insert document %q: %w", d.FileName, err)
		}
	}

	return tx.Commit()
}

func (r *batchRepository) List(ctx context.Context, limit int) ([]model.BatchSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, document_count, translated_count, error_count, row_count, created_at
		 FROM batches ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []model.BatchSummary{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *batchRepository) GetByID(ctx context.Context, id string) (model.BatchSummary, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, document_count, translated_count, error_count, row_count, created_at
		 FROM batches WHERE id = ?`,
		id,
	)
	return scanBatch(row)
}

func (r *batchRepository) ListDocuments(ctx context.Context, batchID string) ([]model.BatchDocument, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, batch_id, file_name, status, total_pairs, suspicious_translations, average_confidence,
		        translated_file, error_message, source_lang, created_at
		 FROM batch_documents WHERE batch_id = ? ORDER BY position`,
		batchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []model.BatchDocument{}
	for rows.Next() {
		var d model.BatchDocument
		var status, createdAt string
		var translatedFile, errorMessage, sourceLang sql.NullString
		if err := rows.Scan(&d.ID, &d.BatchID, &d.FileName, &status, &d.TotalPairs, &d.SuspiciousTranslations,
			&d.AverageConfidence, &translatedFile, &errorMessage, &sourceLang, &createdAt); err != nil {
			return nil, err
		}
		d.Status = model.DocumentStatus(status)
		d.TranslatedFile = translatedFile.String
		d.Error = errorMessage.String
		d.SourceLanguage = sourceLang.String
		d.CreatedAt, _ = parseTime(createdAt)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteBefore removes batches created before cutoff; documents cascade.
func (r *batchRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM batches WHERE created_at < ?`, formatTime(cutoff))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(s scanner) (model.BatchSummary, error) {
	var b model.BatchSummary
	var createdAt string
	if err := s.Scan(&b.ID, &b.DocumentCount, &b.TranslatedCount, &b.ErrorCount, &b.RowCount, &createdAt); err != nil {
		return model.BatchSummary{}, err
	}
	b.CreatedAt, _ = parseTime(createdAt)
	return b, nil
}
