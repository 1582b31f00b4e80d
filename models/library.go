package models

// LibraryInfo identifies the reaction client library behind the gateway.
// Shown on the about screen.
type LibraryInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
