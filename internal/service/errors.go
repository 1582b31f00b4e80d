package service

import "errors"

var (
	// ErrEmptyCredential rejects a blank credential during setup.
	ErrEmptyCredential = errors.New("credential is empty")
	// ErrCredentialRejected wraps a gateway construction failure; the prior
	// session state is left unchanged.
	ErrCredentialRejected = errors.New("credential rejected")
	// ErrNotAuthenticated means no client handle exists yet.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyEmojis rejects a single send with a blank emoji list.
	ErrEmptyEmojis = errors.New("emoji list is empty")
	// ErrInvalidURL rejects a URL failing the gateway predicate before any
	// network attempt.
	ErrInvalidURL = errors.New("invalid channel post url")
	// ErrNoValidRequests aborts a batch in which no item survived local
	// validation; nothing is sent and nothing is recorded.
	ErrNoValidRequests = errors.New("no valid requests in batch")

	// ErrBatchFileRead wraps an unreadable batch file.
	ErrBatchFileRead = errors.New("cannot read batch file")
	// ErrBatchFileFormat marks a payload that is not a JSON array of
	// requests.
	ErrBatchFileFormat = errors.New("batch file must contain a json array")
	// ErrEmptyExportPath rejects a blank export destination.
	ErrEmptyExportPath = errors.New("export path is empty")

	// ErrInvalidTimeout rejects a non-positive timeout; the prior value is
	// kept.
	ErrInvalidTimeout = errors.New("timeout must be greater than zero")
	// ErrInvalidDelay rejects a negative delay; the prior value is kept.
	ErrInvalidDelay = errors.New("delay must not be negative")

	// ErrSettingsNotPersisted reports a failed settings flush after a
	// successful in-memory mutation. Non-fatal: the run continues with the
	// new values.
	ErrSettingsNotPersisted = errors.New("settings not persisted")
)
