package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kvtranslate/backend/internal/model"
)

// Metadata is the summary file written next to the combined workbook.
type Metadata struct {
	Files []model.DocumentResult `json:"files"`
}

// WriteMetadata writes results as indented JSON under a "files" key.
func WriteMetadata(path string, results []model.DocumentResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metadata dir: %w", err)
	}
	if results == nil {
		results = []model.DocumentResult{}
	}
	data, err := json.MarshalIndent(Metadata{Files: results}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func ReadMetadata(path string) (Metadata, error) {
	var m Metadata
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = json.Unmarshal(data, &m)
	return m, err
}
