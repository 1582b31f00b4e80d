package models

// Default values applied when the settings document is missing or unreadable.
const (
	DefaultTimeoutMs = 20000
	DefaultDelayMs   = 1000
)

// Settings is the persisted user configuration document. It survives
// restarts and is rewritten after every mutation.
type Settings struct {
	// Credential is the automation service API key. Empty until first-run
	// setup completes.
	Credential string `json:"credential,omitempty"`
	// TimeoutMs is the outbound request timeout forwarded to the service
	// client. Always > 0.
	TimeoutMs int `json:"timeout_ms"`
	// DefaultDelayMs is the inter-request pause suggested for batch sends.
	// Always >= 0.
	DefaultDelayMs int `json:"default_delay_ms"`
}

// DefaultSettings returns the first-run configuration.
func DefaultSettings() Settings {
	return Settings{
		TimeoutMs:      DefaultTimeoutMs,
		DefaultDelayMs: DefaultDelayMs,
	}
}
