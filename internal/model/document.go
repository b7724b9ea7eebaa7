package model

import "time"

// ExtractedPair is one key/value unit pulled from a document's text.
// Keys are not unique within a document.
type ExtractedPair struct {
	Key   string
	Value string
}

// TranslationRow is one translated pair. Rows are never modified after scoring.
type TranslationRow struct {
	SourceDocument  string  `json:"pdfName"`
	OriginalKey     string  `json:"originalKey"`
	OriginalValue   string  `json:"originalValue"`
	TranslatedKey   string  `json:"translatedKey"`
	TranslatedValue string  `json:"translatedValue"`
	Confidence      float64 `json:"confidence"`
	Suspicious      bool    `json:"suspicious"`
}

type DocumentStatus string

const (
	DocumentTranslated DocumentStatus = "translated"
	DocumentError      DocumentStatus = "error"
)

// DocumentResult is the per-document outcome of one upload.
type DocumentResult struct {
	FileName               string         `json:"fileName"`
	Status                 DocumentStatus `json:"status"`
	TotalPairs             int            `json:"totalPairs"`
	TranslationErrors      int            `json:"translationErrors"`
	SuspiciousTranslations int            `json:"suspiciousTranslations"`
	AverageConfidence      float64        `json:"averageConfidence"`
	SourceLanguage         string         `json:"sourceLanguage,omitempty"`
	TranslatedFile         string         `json:"translatedFile,omitempty"`
	Error                  string         `json:"error,omitempty"`
}

// Batch is everything produced by one upload request.
type Batch struct {
	ID           string
	CreatedAt    time.Time
	Documents    []DocumentResult
	Rows         []TranslationRow
	CombinedFile string
	MetadataFile string
}

// TranslatedCount returns how many documents finished with status translated.
func (b *Batch) TranslatedCount() int {
	n := 0
	for _, d := range b.Documents {
		if d.Status == DocumentTranslated {
			n++
		}
	}
	return n
}
