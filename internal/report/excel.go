package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"kvtranslate/backend/internal/model"
)

const sheet = "Sheet1"

var headers = []string{
	"PDF Name",
	"Original Key",
	"Original Value",
	"Translated Key",
	"Translated Value",
	"Confidence",
	"Suspicious",
}

// WriteRows writes rows as a single-sheet workbook at path, replacing any existing file.
func WriteRows(path string, rows []model.TranslationRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, r := range rows {
		values := []any{
			r.SourceDocument,
			r.OriginalKey,
			r.OriginalValue,
			r.TranslatedKey,
			r.TranslatedValue,
			r.Confidence,
			r.Suspicious,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "E", 36)
	_ = f.SetColWidth(sheet, "F", "G", 12)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// ReadRows loads a workbook written by WriteRows.
func ReadRows(path string) ([]model.TranslationRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("xlsx %s: missing header row", filepath.Base(path))
	}

	rows := make([]model.TranslationRow, 0, len(all)-1)
	for _, cells := range all[1:] {
		// GetRows trims trailing empty cells
		for len(cells) < len(headers) {
			cells = append(cells, "")
		}
		var confidence float64
		if cells[5] != "" {
			if _, err := fmt.Sscan(cells[5], &confidence); err != nil {
				return nil, fmt.Errorf("parse confidence %q: %w", cells[5], err)
			}
		}
		rows = append(rows, model.TranslationRow{
			SourceDocument:  cells[0],
			OriginalKey:     cells[1],
			OriginalValue:   cells[2],
			TranslatedKey:   cells[3],
			TranslatedValue: cells[4],
			Confidence:      confidence,
			Suspicious:      cells[6] == "TRUE",
		})
	}
	return rows, nil
}
