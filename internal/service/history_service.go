package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kvtranslate/backend/internal/model"
	"kvtranslate/backend/internal/repository"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type HistoryService interface {
	List(ctx context.Context, limit int) ([]model.BatchSummary, error)
	Get(ctx context.Context, id string) (model.BatchDetail, error)
}

type historyService struct {
	batches repository.BatchRepository
}

func NewHistoryService(batches repository.BatchRepository) HistoryService {
	return &historyService{batches: batches}
}

func (s *historyService) List(ctx context.Context, limit int) ([]model.BatchSummary, error) {
	if limit < 0 {
		return nil, ErrInvalid
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	return s.batches.List(ctx, min(limit, maxHistoryLimit))
}

func (s *historyService) Get(ctx context.Context, id string) (model.BatchDetail, error) {
	if id == "" {
		return model.BatchDetail{}, ErrInvalid
	}
	summary, err := s.batches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BatchDetail{}, ErrNotFound
		}
		return model.BatchDetail{}, fmt.Errorf("get batch: %w", err)
	}
	docs, err := s.batches.ListDocuments(ctx, id)
	if err != nil {
		return model.BatchDetail{}, fmt.Errorf("list batch documents: %w", err)
	}
	return model.BatchDetail{BatchSummary: summary, Documents: docs}, nil
}
