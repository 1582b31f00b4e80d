// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the channel-reaction automation
// service.
//
// The primary abstractions are [ChannelGateway] — credential validation, URL
// shape checking, and library metadata — and [ReactionClient], the
// authenticated handle performing single and batch sends. The package ships
// an HTTP/REST implementation ([NewHTTPChannelGateway]); callers never see
// the transport, only the interfaces and the error values in errors.go.
//
// Batch pacing lives here: SendBatchReactions sleeps the configured delay
// between items, so callers only forward the delay value.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-channel-reactor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/channel_gateway_mock.go -package=mock

// ChannelGateway is the entry point to the reaction service library.
type ChannelGateway interface {
	// Authenticate validates the credential shape and constructs an
	// authenticated [ReactionClient] with the given request timeout. It is
	// synchronous and performs no network call; an unusable credential
	// fails with [ErrInvalidCredential]. Real validation happens lazily on
	// the first send and is reported by the service itself.
	Authenticate(credential string, timeout time.Duration) (ReactionClient, error)

	// IsValidChannelURL reports whether rawURL has the channel-post URL
	// shape accepted by the service. Pure predicate, no side effects.
	IsValidChannelURL(rawURL string) bool

	// LibraryMetadata returns the name and version of the client library.
	LibraryMetadata() models.LibraryInfo
}

// ReactionClient is an authenticated handle to the reaction service.
type ReactionClient interface {
	// SendReaction posts the emoji set to one channel post. Non-2xx
	// responses are mapped to *[StatusError] so callers can record the
	// HTTP code alongside the message.
	SendReaction(ctx context.Context, url, emojis string) (models.ReactionResponse, error)

	// SendBatchReactions posts every request in order, pausing
	// opts.DelayMs between items. The returned sequence is positionally
	// aligned with requests. A non-nil error means the whole operation
	// failed before producing a complete result set (e.g. context
	// cancellation); per-item send failures are carried inside the
	// results instead.
	SendBatchReactions(ctx context.Context, requests []models.ReactionRequest, opts models.BatchOptions) ([]models.BatchItemResult, error)
}
