package models

// ReactionRequest is one (post URL, emoji set) pair submitted to the service.
// Emojis is a comma-separated list as typed by the operator.
type ReactionRequest struct {
	URL    string `json:"url"`
	Emojis string `json:"emojis"`
}

// ReactionData is the nested payload of a successful single send.
type ReactionData struct {
	BotResponse string `json:"bot_response"`
}

// ReactionDetails carries the echo of the reactions applied by the service.
type ReactionDetails struct {
	Reacts string `json:"reacts"`
}

// ReactionResponse is the service response for one successful reaction.
type ReactionResponse struct {
	Message string          `json:"message"`
	Data    ReactionData    `json:"data"`
	Details ReactionDetails `json:"details"`
}

// BatchOptions tunes a batch send. The delay is forwarded to the service
// client, which owns pacing between items.
type BatchOptions struct {
	DelayMs int
}

// BatchItemResult is one per-item outcome of a batch send, positionally
// aligned with the submitted request sequence.
type BatchItemResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
