// Package service implements the operation logic between the terminal UI
// and the collaborators: session lifecycle, reaction sends with history
// recording, and history maintenance. The UI only collects input and
// renders what these services return.
package service

import (
	"context"

	"github.com/MKhiriev/go-channel-reactor/internal/adapter"
	"github.com/MKhiriev/go-channel-reactor/models"
)

// SessionService owns the persisted user settings and the authenticated
// service client handle.
type SessionService interface {
	// Initialize loads the settings document and, when a credential is
	// present, constructs the client handle. The credential is never
	// validated against the network here; a revoked key surfaces on the
	// first real send. Returns whether a usable client exists.
	Initialize() bool

	// SetCredential validates raw (non-empty after trimming), constructs a
	// client, and persists the credential. On failure the prior session
	// state is left unchanged. A failed settings flush is reported as
	// [ErrSettingsNotPersisted]: the credential is active for this run.
	SetCredential(raw string) error

	// Settings returns the current in-memory settings.
	Settings() models.Settings

	// UpdateSettings applies range-checked mutations (timeout > 0,
	// delay >= 0). Invalid input leaves the prior values untouched. When a
	// client exists it is rebuilt so the new timeout takes effect.
	UpdateSettings(timeoutMs, delayMs int) error

	// Authenticated reports whether a client handle exists.
	Authenticated() bool

	// Client returns the current handle or [ErrNotAuthenticated].
	Client() (adapter.ReactionClient, error)

	// LibraryMetadata exposes the gateway library identity for display.
	LibraryMetadata() models.LibraryInfo
}

// ReactionService performs the send operations and records each outcome
// into history. Collaborator failures are carried inside the returned
// result values; a non-nil error always means local validation or a missing
// session, and in that case nothing was sent and nothing was recorded.
type ReactionService interface {
	// SendSingle posts one reaction, timing the collaborator call.
	SendSingle(ctx context.Context, url, emojis string) (models.SingleResult, error)

	// SendBatch filters requests locally (invalid items are skipped, not
	// retried), forwards the survivors with the pacing delay, and
	// aggregates per-item outcomes into a derived status.
	SendBatch(ctx context.Context, requests []models.ReactionRequest, delayMs int) (models.BatchSummary, error)

	// SendBatchFromFile reads a JSON array of requests from path and runs
	// the same pipeline as SendBatch. A non-array payload is a hard parse
	// error; if no element survives filtering the operation aborts before
	// any network call and records nothing.
	SendBatchFromFile(ctx context.Context, path string, delayMs int) (models.BatchSummary, error)

	// InspectURL is the side-effect-free URL check with best-effort
	// channel/post identifier extraction.
	InspectURL(url string) models.URLReport
}

// HistoryService serves the read and maintenance operations over the
// persisted history.
type HistoryService interface {
	// Recent returns the newest limit entries (default 10 when limit <= 0).
	Recent(limit int) []models.HistoryEntry

	// Clear drops the whole history. Confirmation is the caller's job.
	Clear() error

	// Export writes the full history to destinationPath.
	Export(destinationPath string) error

	// Stats derives counters from the in-memory history snapshot.
	Stats() models.HistoryStats
}
