package entity

import (
	"time"

	"github.com/google/uuid"
)

// IngestJob is the storage-agnostic view of a ledger row, used by the API
// and the XLSX export.
type IngestJob struct {
	ID           uuid.UUID  `json:"id"`
	Kind         string     `json:"kind"`
	MediaType    string     `json:"media_type,omitempty"`
	InputBytes   int64      `json:"input_bytes"`
	Units        int        `json:"units,omitempty"`
	Status       string     `json:"status"`
	ErrorKind    *string    `json:"error_kind,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	RequestID    string     `json:"request_id,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	DurationMS   int64      `json:"duration_ms,omitempty"`
}
