package store

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/utils"
	"github.com/MKhiriev/go-channel-reactor/models"
)

// historyCap bounds the persisted history sequence: after any insertion the
// oldest entries beyond the cap are discarded, never the newest.
const historyCap = 100

type fileHistoryRepository struct {
	path   string
	ids    *utils.UUIDGenerator
	logger *logger.Logger

	mu      sync.Mutex
	loaded  bool
	entries []models.HistoryEntry
}

// NewFileHistoryRepository constructs a [HistoryRepository] backed by the
// JSON document at path. The file is read lazily on first access and owned
// in memory afterwards; every mutation is flushed synchronously.
func NewFileHistoryRepository(path string, logger *logger.Logger) HistoryRepository {
	return &fileHistoryRepository{
		path:   path,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// ensureLoaded reads the history file once. Missing or corrupt files fall
// back to an empty sequence, mirroring the settings policy.
func (r *fileHistoryRepository) ensureLoaded() {
	if r.loaded {
		return
	}
	r.loaded = true

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn().Err(err).Str("path", r.path).Msg("cannot read history file, starting empty")
		}
		return
	}

	var entries []models.HistoryEntry
	if err = json.Unmarshal(raw, &entries); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("cannot parse history file, starting empty")
		return
	}

	if len(entries) > historyCap {
		entries = entries[:historyCap]
	}
	r.entries = entries
}

// All implements [HistoryRepository].
func (r *fileHistoryRepository) All() []models.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	snapshot := make([]models.HistoryEntry, len(r.entries))
	copy(snapshot, r.entries)
	return snapshot
}

// Append implements [HistoryRepository]. This is a read-modify-write over
// the whole file, acceptable because the sequence is capped and mutations
// happen at interactive cadence.
func (r *fileHistoryRepository) Append(entry models.HistoryEntry) (models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	entry.ID = r.ids.Generate()
	entry.Timestamp = time.Now().UTC()

	r.entries = append([]models.HistoryEntry{entry}, r.entries...)
	if len(r.entries) > historyCap {
		r.entries = r.entries[:historyCap]
	}

	return entry, writeJSONFile(r.path, r.entries)
}

// Clear implements [HistoryRepository].
func (r *fileHistoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	r.entries = nil
	return writeJSONFile(r.path, []models.HistoryEntry{})
}

// Export implements [HistoryRepository].
func (r *fileHistoryRepository) Export(destinationPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	entries := r.entries
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return writeJSONFile(destinationPath, entries)
}
