package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/repository"
)

// SweepResult counts what one Sweep removed.
type SweepResult struct {
	CacheRows int64 `json:"cacheRows"`
	Batches   int64 `json:"batches"`
	Uploads   int   `json:"uploads"`
}

type MaintenanceService interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

type maintenanceService struct {
	cache     repository.TranslationCacheRepository
	batches   repository.BatchRepository
	storage   StorageService
	cacheTTL  time.Duration
	retention time.Duration
	now       func() time.Time
}

// NewMaintenanceService prunes the translation cache after cacheTTL and
// uploads and batch history after retention. A zero duration disables that pruning.
func NewMaintenanceService(
	cache repository.TranslationCacheRepository,
	batches repository.BatchRepository,
	storage StorageService,
	cacheTTL, retention time.Duration,
) MaintenanceService {
	return &maintenanceService{
		cache:     cache,
		batches:   batches,
		storage:   storage,
		cacheTTL:  cacheTTL,
		retention: retention,
		now:       time.Now,
	}
}

// Sweep runs every pruning step even if an earlier one fails and returns the joined errors.
func (s *maintenanceService) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	var errs []error
	now := s.now()

	if s.cacheTTL > 0 {
		n, err := s.cache.DeleteBefore(ctx, now.Add(-s.cacheTTL))
		if err != nil {
			errs = append(errs, fmt.Errorf("prune translation cache: %w", err))
		}
		result.CacheRows = n
	}

	if s.retention > 0 {
		cutoff := now.Add(-s.retention)
		n, err := s.batches.DeleteBefore(ctx, cutoff)
		if err != nil {
			errs = append(errs, fmt.Errorf("prune batch history: %w", err))
		}
		result.Batches = n

		removed, err := s.storage.PruneUploads(cutoff)
		if err != nil {
			errs = append(errs, fmt.Errorf("prune uploads: %w", err))
		}
		result.Uploads = removed
	}

	if err := errors.Join(errs...); err != nil {
		return result, err
	}
	logger.Info("maintenance sweep completed", "module", "service", "action", "sweep", "resource", "storage", "result", "ok",
		"cache_rows", result.CacheRows, "batches", result.Batches, "uploads", result.Uploads)
	return result, nil
}
