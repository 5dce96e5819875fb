package history

import "time"

// Status records how a transcode run ended.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

// Record is one transcode run as persisted in the history database.
type Record struct {
	ID           string
	InputPath    string
	OutputPath   string
	InputBytes   int64
	OutputBytes  int64
	PercentSaved float64
	ClipSeconds  float64
	WallSeconds  float64
	Status       Status
	Error        string
	CreatedAt    time.Time
}
