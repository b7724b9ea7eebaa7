package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/report"
)

type StorageService interface {
	// NewUploadDir creates a fresh staging directory for one upload request.
	NewUploadDir() (string, error)
	// SaveUpload writes r into dir under the base name of name.
	SaveUpload(dir, name string, r io.Reader) (UploadedFile, error)
	// ResolveDownload maps a report name to a file on disk.
	ResolveDownload(name string) (string, error)
	// BuildArchive zips every per-document workbook and the combined workbook.
	BuildArchive(ctx context.Context) (string, error)
	// PruneUploads removes staging directories older than cutoff.
	PruneUploads(cutoff time.Time) (int, error)
}

type storageService struct {
	paths Paths
}

func NewStorageService(paths Paths) StorageService {
	return &storageService{paths: paths}
}

func (s *storageService) NewUploadDir() (string, error) {
	dir := filepath.Join(s.paths.Uploads, time.Now().UTC().Format("20060102T150405")+"-"+uuid.NewString()[:8])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	return dir, nil
}

// cleanName strips any directory part of a client-supplied file name.
func cleanName(name string) (string, bool) {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "", false
	}
	return base, true
}

func (s *storageService) SaveUpload(dir, name string, r io.Reader) (UploadedFile, error) {
	base, ok := cleanName(name)
	if !ok {
		return UploadedFile{}, fmt.Errorf("%w: file name %q", ErrInvalid, name)
	}

	// One subdirectory per file keeps same-named uploads in a batch apart.
	fileDir, err := os.MkdirTemp(dir, "file-")
	if err != nil {
		return UploadedFile{}, fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(fileDir, base)
	f, err := os.Create(path)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return UploadedFile{}, fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return UploadedFile{}, fmt.Errorf("close upload: %w", err)
	}
	return UploadedFile{Name: base, Path: path}, nil
}

// ResolveDownload looks in the per-document reports first, then in the
// translations directory.
func (s *storageService) ResolveDownload(name string) (string, error) {
	base, ok := cleanName(name)
	if !ok || base != name {
		return "", ErrNotFound
	}
	for _, dir := range []string{s.paths.Reports, s.paths.Translations} {
		path := filepath.Join(dir, base)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", ErrNotFound
}

func (s *storageService) BuildArchive(ctx context.Context) (string, error) {
	entries, err := os.ReadDir(s.paths.Reports)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("list reports: %w", err)
	}

	var individual []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".xlsx") {
			individual = append(individual, filepath.Join(s.paths.Reports, e.Name()))
		}
	}
	sort.Strings(individual)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	zipPath := filepath.Join(s.paths.Translations, ArchiveFileName)
	combined := filepath.Join(s.paths.Translations, CombinedReportName)
	if err := report.BuildArchive(zipPath, individual, combined); err != nil {
		return "", fmt.Errorf("build archive: %w", err)
	}

	logger.Info("archive built", "module", "service", "action", "archive", "resource", "report", "result", "ok", "files", len(individual))
	return zipPath, nil
}

func (s *storageService) PruneUploads(cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(s.paths.Uploads)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.paths.Uploads, e.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}
