package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-channel-reactor/internal/adapter"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/store"
	"github.com/MKhiriev/go-channel-reactor/models"
)

type reactionService struct {
	session SessionService
	gateway adapter.ChannelGateway
	history store.HistoryRepository
	logger  *logger.Logger
}

func NewReactionService(session SessionService, gateway adapter.ChannelGateway, history store.HistoryRepository, logger *logger.Logger) ReactionService {
	return &reactionService{session: session, gateway: gateway, history: history, logger: logger}
}

func (s *reactionService) SendSingle(ctx context.Context, url, emojis string) (models.SingleResult, error) {
	url = strings.TrimSpace(url)
	emojis = strings.TrimSpace(emojis)

	if emojis == "" {
		return models.SingleResult{}, ErrEmptyEmojis
	}
	if !s.gateway.IsValidChannelURL(url) {
		return models.SingleResult{}, fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}

	client, err := s.session.Client()
	if err != nil {
		return models.SingleResult{}, err
	}

	start := time.Now()
	resp, sendErr := client.SendReaction(ctx, url, emojis)
	durationMs := time.Since(start).Milliseconds()

	result := models.SingleResult{
		URL:        url,
		Emojis:     emojis,
		DurationMs: durationMs,
	}
	entry := models.HistoryEntry{
		Kind:       models.KindSingle,
		URL:        url,
		Emojis:     emojis,
		DurationMs: &durationMs,
	}

	if sendErr != nil {
		result.Failed = true
		result.ErrorMessage = sendErr.Error()

		var statusErr *adapter.StatusError
		if errors.As(sendErr, &statusErr) {
			result.StatusCode = statusErr.Code
			result.ErrorMessage = statusErr.Message
		}

		entry.Status = models.StatusFailed
		entry.ErrorMessage = result.ErrorMessage
	} else {
		result.Message = resp.Message
		result.BotResponse = resp.Data.BotResponse
		result.Reacts = resp.Details.Reacts

		entry.Status = models.StatusSuccess
		entry.ResultMessage = resp.Message
	}

	s.record(&entry, &result.PersistWarning)
	return result, nil
}

func (s *reactionService) SendBatch(ctx context.Context, requests []models.ReactionRequest, delayMs int) (models.BatchSummary, error) {
	return s.sendBatch(ctx, requests, delayMs, "")
}

func (s *reactionService) SendBatchFromFile(ctx context.Context, path string, delayMs int) (models.BatchSummary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.BatchSummary{}, fmt.Errorf("%w: %v", ErrBatchFileRead, err)
	}

	var requests []models.ReactionRequest
	if err = json.Unmarshal(raw, &requests); err != nil {
		return models.BatchSummary{}, fmt.Errorf("%w: %v", ErrBatchFileFormat, err)
	}

	return s.sendBatch(ctx, requests, delayMs, path)
}

// sendBatch is the shared pipeline of the interactive and file variants:
// local filtering, one collaborator call, aggregation, one history entry.
func (s *reactionService) sendBatch(ctx context.Context, requests []models.ReactionRequest, delayMs int, sourceFile string) (models.BatchSummary, error) {
	valid := make([]models.ReactionRequest, 0, len(requests))
	for _, req := range requests {
		req.URL = strings.TrimSpace(req.URL)
		req.Emojis = strings.TrimSpace(req.Emojis)
		if req.Emojis == "" || !s.gateway.IsValidChannelURL(req.URL) {
			continue
		}
		valid = append(valid, req)
	}

	if len(valid) == 0 {
		return models.BatchSummary{}, ErrNoValidRequests
	}

	client, err := s.session.Client()
	if err != nil {
		return models.BatchSummary{}, err
	}

	if delayMs < 0 {
		delayMs = 0
	}

	kind := models.KindBatch
	if sourceFile != "" {
		kind = models.KindFile
	}

	start := time.Now()
	results, sendErr := client.SendBatchReactions(ctx, valid, models.BatchOptions{DelayMs: delayMs})
	durationMs := time.Since(start).Milliseconds()

	summary := models.BatchSummary{
		Total:      len(valid),
		Skipped:    len(requests) - len(valid),
		DurationMs: durationMs,
		SourceFile: sourceFile,
	}
	entry := models.HistoryEntry{
		Kind:       kind,
		TotalCount: len(valid),
		DurationMs: &durationMs,
		SourceFile: sourceFile,
	}

	if sendErr != nil {
		// the whole operation raised before producing per-item results
		summary.Failed = true
		summary.ErrorMessage = sendErr.Error()
		summary.Status = models.StatusFailed

		entry.Status = models.StatusFailed
		entry.ErrorMessage = sendErr.Error()

		s.record(&entry, &summary.PersistWarning)
		return summary, nil
	}

	succeeded := 0
	for _, item := range results {
		if item.Success {
			succeeded++
		}
	}
	failed := len(results) - succeeded

	summary.SuccessCount = succeeded
	summary.FailedCount = failed
	summary.Status = models.DeriveBatchStatus(succeeded, failed)
	summary.Results = results

	entry.Status = summary.Status
	entry.SuccessCount = &succeeded
	entry.FailedCount = &failed

	s.record(&entry, &summary.PersistWarning)
	return summary, nil
}

func (s *reactionService) InspectURL(url string) models.URLReport {
	url = strings.TrimSpace(url)

	report := models.URLReport{
		URL:   url,
		Valid: s.gateway.IsValidChannelURL(url),
	}

	channelID, postID, ok := adapter.ParseChannelURL(url)
	if ok {
		report.Extracted = true
		report.ChannelID = channelID
		report.PostID = postID
	}

	return report
}

// record appends the entry and converts a failed flush into an operator
// warning instead of an operation failure.
func (s *reactionService) record(entry *models.HistoryEntry, warning *string) {
	if _, err := s.history.Append(*entry); err != nil {
		s.logger.Warn().Err(err).Msg("cannot persist history entry")
		*warning = err.Error()
	}
}
