// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-channel-reactor/internal/config"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGateway создаёт httpChannelGateway, направленный на тестовый сервер
func newTestGateway(t *testing.T, serverURL string) ChannelGateway {
	t.Helper()

	g, err := NewHTTPChannelGateway(config.ClientAdapter{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return g
}

func newTestClient(t *testing.T, serverURL string) ReactionClient {
	t.Helper()

	c, err := newTestGateway(t, serverURL).Authenticate("test-api-key", 5*time.Second)
	require.NoError(t, err)
	return c
}

// ── Gateway ─────────────────────────────────────────────────────────────────

func TestNewHTTPChannelGateway_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPChannelGateway(config.ClientAdapter{BaseURL: ""}, logger.Nop())
	require.Error(t, err)
}

func TestAuthenticate_InvalidCredential(t *testing.T) {
	g := newTestGateway(t, "https://api.example.com")

	for _, credential := range []string{"", "   ", "key with spaces"} {
		_, err := g.Authenticate(credential, time.Second)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	}
}

func TestAuthenticate_TrimsCredential(t *testing.T) {
	var gotAuth atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	c, err := newTestGateway(t, srv.URL).Authenticate("  secret-key  ", time.Second)
	require.NoError(t, err)

	_, err = c.SendReaction(context.Background(), "https://whatsapp.com/channel/ABC123/1", "👍")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", gotAuth.Load())
}

func TestLibraryMetadata(t *testing.T) {
	g := newTestGateway(t, "https://api.example.com")

	info := g.LibraryMetadata()
	assert.Equal(t, "wa-channel-reaction", info.Name)
	assert.NotEmpty(t, info.Version)
}

// ── SendReaction ────────────────────────────────────────────────────────────

func TestSendReaction_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/reactions", r.URL.Path)

		var req models.ReactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://whatsapp.com/channel/ABC123/7", req.URL)
		assert.Equal(t, "👍,🔥", req.Emojis)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"reaction sent","data":{"bot_response":"done"},"details":{"reacts":"👍,🔥"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.SendReaction(context.Background(), "https://whatsapp.com/channel/ABC123/7", "👍,🔥")

	require.NoError(t, err)
	assert.Equal(t, "reaction sent", got.Message)
	assert.Equal(t, "done", got.Data.BotResponse)
	assert.Equal(t, "👍,🔥", got.Details.Reacts)
}

func TestSendReaction_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"api key revoked"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SendReaction(context.Background(), "https://whatsapp.com/channel/ABC123/7", "👍")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Equal(t, "api key revoked", statusErr.Message)
}

func TestSendReaction_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SendReaction(context.Background(), "https://whatsapp.com/channel/ABC123/7", "👍")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.Equal(t, "upstream unavailable", statusErr.Message)
}

// ── SendBatchReactions ──────────────────────────────────────────────────────

func TestSendBatchReactions_ResultsAlignedWithRequests(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if n == 2 {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"post not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	requests := []models.ReactionRequest{
		{URL: "https://whatsapp.com/channel/ABC123/1", Emojis: "👍"},
		{URL: "https://whatsapp.com/channel/ABC123/2", Emojis: "🔥"},
		{URL: "https://whatsapp.com/channel/ABC123/3", Emojis: "❤️"},
	}

	results, err := c.SendBatchReactions(context.Background(), requests, models.BatchOptions{DelayMs: 0})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "post not found")
	assert.True(t, results[2].Success)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSendBatchReactions_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(t, srv.URL)
	_, err := c.SendBatchReactions(ctx, []models.ReactionRequest{
		{URL: "https://whatsapp.com/channel/ABC123/1", Emojis: "👍"},
	}, models.BatchOptions{DelayMs: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
