// Package store owns the on-disk representations of the client state: the
// settings document and the capped operation history, both UTF-8 JSON files
// at fixed per-user locations.
//
// Read failures degrade silently to defaults/empty (a missing or corrupt
// file is a recoverable first-run condition, not an error); write failures
// are returned to the caller, who reports them as non-fatal warnings. Every
// mutation is flushed synchronously with an atomic-enough single-file
// rewrite (temp file + rename).
package store

import "github.com/MKhiriev/go-channel-reactor/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository persists the user settings document.
type SettingsRepository interface {
	// Load reads the settings file. On a missing file, parse error, or I/O
	// failure it returns [models.DefaultSettings] without raising.
	Load() models.Settings

	// Save overwrites the settings file with pretty-printed JSON.
	Save(settings models.Settings) error
}

// HistoryRepository persists the operation history: a newest-first sequence
// capped at 100 entries.
type HistoryRepository interface {
	// All returns a copy of the in-memory history snapshot, newest first.
	All() []models.HistoryEntry

	// Append assigns the entry an ID and insertion timestamp, inserts it at
	// the front, truncates to the cap, and persists the whole sequence. The
	// stored entry is returned; a non-nil error means the in-memory state
	// was updated but the flush to disk failed.
	Append(entry models.HistoryEntry) (models.HistoryEntry, error)

	// Clear drops all entries and persists the empty sequence.
	Clear() error

	// Export writes the full current history to destinationPath using the
	// same schema as the canonical file, which is left untouched.
	Export(destinationPath string) error
}
