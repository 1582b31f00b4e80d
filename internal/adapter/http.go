package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-channel-reactor/internal/config"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/utils"
	"github.com/MKhiriev/go-channel-reactor/models"
)

// Library identity reported by LibraryMetadata. Bumped together with the
// service API revision below.
const (
	libraryName    = "wa-channel-reaction"
	libraryVersion = "2.1.4"
)

const reactionsEndpoint = "/api/v1/reactions"

type httpChannelGateway struct {
	baseURL string
	logger  *logger.Logger
}

// NewHTTPChannelGateway constructs an HTTP/REST implementation of
// [ChannelGateway]. It normalises and validates the base URL from
// adapterCfg.BaseURL.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPChannelGateway(adapterCfg config.ClientAdapter, logger *logger.Logger) (ChannelGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &httpChannelGateway{baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate implements [ChannelGateway]. It checks the credential shape
// locally and builds an authenticated client; no network call is made, so a
// revoked key is only discovered on the first send.
func (g *httpChannelGateway) Authenticate(credential string, timeout time.Duration) (ReactionClient, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" || strings.ContainsAny(credential, " \t\n") {
		return nil, ErrInvalidCredential
	}
	if timeout <= 0 {
		timeout = time.Duration(models.DefaultTimeoutMs) * time.Millisecond
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(g.baseURL).
		SetTimeout(timeout).
		SetAuthToken(credential)

	return &httpReactionClient{client: client, logger: g.logger}, nil
}

// IsValidChannelURL implements [ChannelGateway]. Pure predicate over the
// channel post URL shape.
func (g *httpChannelGateway) IsValidChannelURL(rawURL string) bool {
	return channelURLPattern.MatchString(strings.TrimSpace(rawURL))
}

// LibraryMetadata implements [ChannelGateway].
func (g *httpChannelGateway) LibraryMetadata() models.LibraryInfo {
	return models.LibraryInfo{Name: libraryName, Version: libraryVersion}
}

type httpReactionClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// SendReaction implements [ReactionClient]. It POSTs the (url, emojis) pair
// to the reactions endpoint and decodes the service response. Non-2xx
// statuses come back as *[StatusError].
func (c *httpReactionClient) SendReaction(ctx context.Context, postURL, emojis string) (models.ReactionResponse, error) {
	var result models.ReactionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ReactionRequest{URL: postURL, Emojis: emojis}).
		SetResult(&result).
		Post(reactionsEndpoint)
	if err != nil {
		return models.ReactionResponse{}, fmt.Errorf("send reaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReactionResponse{}, err
	}

	return result, nil
}

// SendBatchReactions implements [ReactionClient]. Items are sent strictly in
// submission order with opts.DelayMs of sleep between them; a per-item
// failure is recorded in the results and the batch keeps going. Only context
// cancellation aborts the whole operation.
func (c *httpReactionClient) SendBatchReactions(ctx context.Context, requests []models.ReactionRequest, opts models.BatchOptions) ([]models.BatchItemResult, error) {
	delay := time.Duration(opts.DelayMs) * time.Millisecond
	results := make([]models.BatchItemResult, 0, len(requests))

	for i, req := range requests {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := c.SendReaction(ctx, req.URL, req.Emojis)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn().Err(err).Str("url", req.URL).Msg("batch item failed")
			results = append(results, models.BatchItemResult{Error: err.Error()})
			continue
		}

		results = append(results, models.BatchItemResult{Success: true, Message: resp.Message})
	}

	return results, nil
}
