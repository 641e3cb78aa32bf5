// Package journal implements the mood journal: sentiment-labeled entries
// in the record store, newest first, plus the collective mood aggregation
// over the recent window.
package journal

// Entry is one journal entry. JSON field names are part of the backup
// interchange format and must not change.
type Entry struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// Timestamp is the creation time in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`

	// Emotions holds the labels assigned by the emotion service, highest
	// scoring first. Sentinel labels ("analysis error", "model
	// loading...") land here too; the mood aggregation filters them out.
	Emotions []string `json:"emotions"`

	// IsAnalyzed marks entries that have been through the labeling call.
	IsAnalyzed bool `json:"isAnalyzed"`
}

// RecordID implements store.Record.
func (e Entry) RecordID() string { return e.ID }

// SaveRequest is the POST /api/journal and PUT /api/journal/:id body.
type SaveRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MoodResponse is the GET /api/journal/mood body.
type MoodResponse struct {
	Mood string `json:"mood"`
}
