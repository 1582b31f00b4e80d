package models

// SingleResult is the rendered outcome of a single send. A collaborator
// failure is carried here (Failed + ErrorMessage + optional StatusCode)
// rather than as a Go error, so the operation loop always gets something to
// display and record.
type SingleResult struct {
	URL        string
	Emojis     string
	DurationMs int64

	Failed       bool
	StatusCode   int // 0 when the service supplied no HTTP code
	ErrorMessage string

	Message     string
	BotResponse string
	Reacts      string

	// PersistWarning is set when recording the entry to history failed;
	// the send outcome above still stands.
	PersistWarning string
}

// BatchSummary is the rendered outcome of an interactive or file batch.
type BatchSummary struct {
	Total      int // requests actually forwarded to the service
	Skipped    int // dropped by local validation before any network call
	DurationMs int64
	SourceFile string

	// Failed marks a whole-operation failure: the batch call raised before
	// producing per-item results.
	Failed       bool
	ErrorMessage string

	SuccessCount int
	FailedCount  int
	Status       string
	Results      []BatchItemResult

	// PersistWarning mirrors SingleResult.PersistWarning.
	PersistWarning string
}

// URLReport is the outcome of the side-effect-free URL check.
type URLReport struct {
	URL   string
	Valid bool

	// Extracted is true when the positional channel/post pattern matched.
	// Extraction failure is not an error, just omitted detail.
	Extracted bool
	ChannelID string
	PostID    string
}

// HistoryStats is derived from the in-memory history snapshot.
type HistoryStats struct {
	Total    int
	ByStatus map[string]int
	ByKind   map[string]int

	// WithDuration counts entries that recorded a duration; AvgDurationMs is
	// meaningful only when WithDuration > 0.
	WithDuration  int
	AvgDurationMs float64
}
