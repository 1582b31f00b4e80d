package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx service response into a *StatusError. The
// service reports failures as {"message": "..."} bodies; plain-text bodies
// and empty bodies fall back to the raw text and the standard status text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Message != "" {
		body = payload.Message
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &StatusError{Code: resp.StatusCode(), Message: body}
}
