package service

import (
	"path/filepath"
	"strings"
)

const (
	CombinedReportName  = "all_translations.xlsx"
	MetadataFileName    = "translations_metadata.json"
	ArchiveFileName     = "all_translations.zip"
	ArchiveDownloadName = "translated_documents.zip"
)

// Paths locates the directories shared by the document and storage services.
type Paths struct {
	// Uploads holds one staging directory per upload request.
	Uploads string
	// Reports holds the per-document workbooks.
	Reports string
	// Translations holds the combined workbook, metadata and archive.
	Translations string
}

// ReportName returns the per-document workbook name for an uploaded file.
func ReportName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_translated.xlsx"
}
