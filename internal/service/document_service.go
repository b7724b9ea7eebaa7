package service

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"kvtranslate/backend/internal/extract"
	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/model"
	"kvtranslate/backend/internal/report"
	"kvtranslate/backend/internal/repository"
	"kvtranslate/backend/internal/service/langdetect"
	"kvtranslate/backend/internal/service/translate"
)

// UploadedFile is a document staged on disk for processing.
type UploadedFile struct {
	Name string
	Path string
}

type DocumentService interface {
	// ProcessBatch runs every file through extraction, detection, translation
	// and scoring. Per-document failures are recorded in the batch; only
	// failures writing the cross-document outputs are returned.
	ProcessBatch(ctx context.Context, files []UploadedFile) (*model.Batch, error)
}

type documentService struct {
	extractor  extract.TextExtractor
	resolver   *langdetect.Resolver
	translator translate.Translator
	batches    repository.BatchRepository
	paths      Paths
	workers    int
	now        func() time.Time
}

// NewDocumentService builds the pipeline. batches may be nil to skip history.
func NewDocumentService(
	extractor extract.TextExtractor,
	resolver *langdetect.Resolver,
	translator translate.Translator,
	batches repository.BatchRepository,
	paths Paths,
	workers int,
) DocumentService {
	return &documentService{
		extractor:  extractor,
		resolver:   resolver,
		translator: translator,
		batches:    batches,
		paths:      paths,
		workers:    max(workers, 1),
		now:        time.Now,
	}
}

// documentOutcome is the per-document result before aggregation.
type documentOutcome struct {
	skipped bool
	result  model.DocumentResult
	rows    []model.TranslationRow
}

func failed(fileName, message string) documentOutcome {
	return documentOutcome{result: model.DocumentResult{
		FileName: fileName,
		Status:   model.DocumentError,
		Error:    message,
	}}
}

func (s *documentService) ProcessBatch(ctx context.Context, files []UploadedFile) (*model.Batch, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	start := s.now()
	batch := &model.Batch{ID: uuid.NewString(), CreatedAt: start.UTC()}

	// Index-addressed so aggregation keeps submission order with any worker count.
	outcomes := make([]documentOutcome, len(files))
	if s.workers == 1 {
		for i, f := range files {
			outcomes[i] = s.processDocument(ctx, f)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(s.workers)
		for i, f := range files {
			g.Go(func() error {
				outcomes[i] = s.processDocument(ctx, f)
				return nil
			})
		}
		_ = g.Wait()
	}

	var translated []model.DocumentResult
	for _, o := range outcomes {
		if o.skipped {
			continue
		}
		batch.Documents = append(batch.Documents, o.result)
		batch.Rows = append(batch.Rows, o.rows...)
		if o.result.Status == model.DocumentTranslated {
			translated = append(translated, o.result)
		}
	}

	if len(batch.Rows) > 0 {
		if err := report.WriteRows(filepath.Join(s.paths.Translations, CombinedReportName), batch.Rows); err != nil {
			return nil, fmt.Errorf("write combined report: %w", err)
		}
		batch.CombinedFile = CombinedReportName
	}
	if len(translated) > 0 {
		if err := report.WriteMetadata(filepath.Join(s.paths.Translations, MetadataFileName), translated); err != nil {
			return nil, fmt.Errorf("write metadata: %w", err)
		}
		batch.MetadataFile = MetadataFileName
	}

	if s.batches != nil {
		if err := s.batches.Save(ctx, batch); err != nil {
			logger.Warn("save batch history", "module", "service", "action", "save", "resource", "batch", "result", "failed", "batch_id", batch.ID, "error", err)
		}
	}

	logger.Info("batch processed", "module", "service", "action", "process", "resource", "batch", "result", "ok",
		"batch_id", batch.ID,
		"files", len(files),
		"documents", len(batch.Documents),
		"translated", len(translated),
		"rows", len(batch.Rows),
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)
	return batch, nil
}

func (s *documentService) processDocument(ctx context.Context, file UploadedFile) (out documentOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("document pipeline panicked", "module", "service", "action", "process", "resource", "document", "result", "failed", "file_name", file.Name, "panic", r, "stack", string(debug.Stack()))
			out = failed(file.Name, fmt.Sprint(r))
		}
	}()

	text, err := s.extractor.ExtractText(ctx, file.Path)
	if err != nil {
		logger.Warn("extract text", "module", "service", "action", "extract", "resource", "document", "result", "failed", "file_name", file.Name, "error", err)
		return failed(file.Name, err.Error())
	}

	pairs := extract.Pairs(text)
	if len(pairs) == 0 {
		logger.Info("document skipped", "module", "service", "action", "extract", "resource", "document", "result", "empty", "file_name", file.Name)
		return documentOutcome{skipped: true}
	}

	keys := make([]string, len(pairs))
	values := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
		values[i] = p.Value
	}

	lang := s.resolver.Resolve(strings.Join(values, " "))
	if !lang.OK() {
		logger.Warn("language not supported", "module", "service", "action", "detect", "resource", "document", "result", lang.Kind.String(), "file_name", file.Name, "code", lang.Code, "error", lang.Err)
		return failed(file.Name, UnsupportedLanguageMessage)
	}

	translatedKeys, err := s.translate(ctx, keys, lang.Tag)
	if err != nil {
		return failed(file.Name, err.Error())
	}
	translatedValues, err := s.translate(ctx, values, lang.Tag)
	if err != nil {
		return failed(file.Name, err.Error())
	}

	rows, result := ScoreDocument(file.Name, pairs, translatedKeys, translatedValues)
	result.SourceLanguage = lang.Code

	name := ReportName(file.Name)
	if err := report.WriteRows(filepath.Join(s.paths.Reports, name), rows); err != nil {
		logger.Error("write document report", "module", "service", "action", "write", "resource", "report", "result", "failed", "file_name", file.Name, "error", err)
		return failed(file.Name, err.Error())
	}
	result.TranslatedFile = name

	logger.Info("document translated", "module", "service", "action", "process", "resource", "document", "result", "ok",
		"file_name", file.Name,
		"source_lang", lang.Code,
		"pairs", len(pairs),
		"suspicious", result.SuspiciousTranslations,
	)
	return documentOutcome{result: result, rows: rows}
}

// translate calls the translator and rejects misaligned results.
func (s *documentService) translate(ctx context.Context, texts []string, tag string) ([]string, error) {
	out, err := s.translator.TranslateBatch(ctx, texts, tag)
	if err != nil {
		return nil, err
	}
	if len(out) != len(texts) {
		return nil, fmt.Errorf("%w: got %d, want %d", translate.ErrCountMismatch, len(out), len(texts))
	}
	return out, nil
}
