package model

import "time"

// BatchSummary is the persisted history record of an upload.
type BatchSummary struct {
	ID              string    `json:"id"`
	DocumentCount   int       `json:"documentCount"`
	TranslatedCount int       `json:"translatedCount"`
	ErrorCount      int       `json:"errorCount"`
	RowCount        int       `json:"rowCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BatchDocument is a persisted DocumentResult.
type BatchDocument struct {
	ID      int64  `json:"id,string"`
	BatchID string `json:"batchId"`
	DocumentResult
	CreatedAt time.Time `json:"createdAt"`
}

// BatchDetail is a batch with its documents in upload order.
type BatchDetail struct {
	BatchSummary
	Documents []BatchDocument `json:"documents"`
}
