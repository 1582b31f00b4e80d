package models

import "time"

// Operation kinds recorded in history.
const (
	KindSingle = "single"
	KindBatch  = "batch"
	KindFile   = "file"
)

// Operation outcomes recorded in history.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusPartial = "partial"
)

// HistoryEntry is one persisted record of a past operation. Fields that only
// make sense for one kind are omitted from JSON when empty: single sends fill
// URL/Emojis/ResultMessage, batch and file sends fill the counters, and only
// file sends fill SourceFile.
type HistoryEntry struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
	DurationMs   *int64    `json:"duration_ms,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`

	URL           string `json:"url,omitempty"`
	Emojis        string `json:"emojis,omitempty"`
	ResultMessage string `json:"result_message,omitempty"`

	TotalCount   int    `json:"total_count,omitempty"`
	SuccessCount *int   `json:"success_count,omitempty"`
	FailedCount  *int   `json:"failed_count,omitempty"`
	SourceFile   string `json:"source_file,omitempty"`
}

// DeriveBatchStatus maps aggregated per-item counters to an entry status:
// partial iff both sides are non-zero, success iff nothing failed.
func DeriveBatchStatus(successCount, failedCount int) string {
	switch {
	case successCount > 0 && failedCount > 0:
		return StatusPartial
	case failedCount == 0:
		return StatusSuccess
	default:
		return StatusFailed
	}
}
