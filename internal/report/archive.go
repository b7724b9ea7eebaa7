package report

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// IndividualDir is the folder inside the archive holding per-document workbooks.
const IndividualDir = "individual_translations"

// BuildArchive zips the per-document workbooks under IndividualDir and the
// combined workbook at the root. An empty combined path or a missing combined
// file is skipped. The archive is written to a temp file and renamed into place.
func BuildArchive(zipPath string, individual []string, combined string) error {
	if err := os.MkdirAll(filepath.Dir(zipPath), 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(zipPath), ".archive-*.zip")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	zw := zip.NewWriter(tmp)
	for _, p := range individual {
		if err := addFile(zw, p, path.Join(IndividualDir, filepath.Base(p))); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	if combined != "" {
		if _, err := os.Stat(combined); err == nil {
			if err := addFile(zw, combined, filepath.Base(combined)); err != nil {
				_ = tmp.Close()
				return err
			}
		}
	}

	if err := zw.Close(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("close archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), zipPath)
}

func addFile(zw *zip.Writer, src, name string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(src), err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
