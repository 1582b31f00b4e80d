package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-channel-reactor/internal/adapter"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/store"
	"github.com/MKhiriev/go-channel-reactor/models"
)

type sessionService struct {
	gateway  adapter.ChannelGateway
	storages *store.Storages
	logger   *logger.Logger

	settings models.Settings
	client   adapter.ReactionClient
}

func NewSessionService(storages *store.Storages, gateway adapter.ChannelGateway, logger *logger.Logger) SessionService {
	return &sessionService{gateway: gateway, storages: storages, logger: logger}
}

func (s *sessionService) Initialize() bool {
	s.settings = s.storages.Settings.Load()
	if s.settings.Credential == "" {
		return false
	}

	client, err := s.gateway.Authenticate(s.settings.Credential, s.timeout())
	if err != nil {
		// stored credential is unusable; force the setup flow instead of
		// failing every send
		s.logger.Warn().Err(err).Msg("stored credential rejected by gateway")
		return false
	}

	s.client = client
	return true
}

func (s *sessionService) SetCredential(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyCredential
	}

	client, err := s.gateway.Authenticate(raw, s.timeout())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialRejected, err)
	}

	s.client = client
	s.settings.Credential = raw

	if err = s.storages.Settings.Save(s.settings); err != nil {
		s.logger.Warn().Err(err).Msg("cannot persist settings after credential change")
		return fmt.Errorf("%w: %v", ErrSettingsNotPersisted, err)
	}
	return nil
}

func (s *sessionService) Settings() models.Settings {
	return s.settings
}

func (s *sessionService) UpdateSettings(timeoutMs, delayMs int) error {
	if timeoutMs <= 0 {
		return ErrInvalidTimeout
	}
	if delayMs < 0 {
		return ErrInvalidDelay
	}

	s.settings.TimeoutMs = timeoutMs
	s.settings.DefaultDelayMs = delayMs

	// rebuild the client so the new timeout applies to subsequent sends
	if s.client != nil {
		client, err := s.gateway.Authenticate(s.settings.Credential, s.timeout())
		if err != nil {
			s.logger.Warn().Err(err).Msg("cannot rebuild client after settings change")
		} else {
			s.client = client
		}
	}

	if err := s.storages.Settings.Save(s.settings); err != nil {
		s.logger.Warn().Err(err).Msg("cannot persist settings")
		return fmt.Errorf("%w: %v", ErrSettingsNotPersisted, err)
	}
	return nil
}

func (s *sessionService) Authenticated() bool {
	return s.client != nil
}

func (s *sessionService) LibraryMetadata() models.LibraryInfo {
	return s.gateway.LibraryMetadata()
}

// Client hands the current authenticated handle to the reaction service.
func (s *sessionService) Client() (adapter.ReactionClient, error) {
	if s.client == nil {
		return nil, ErrNotAuthenticated
	}
	return s.client, nil
}

func (s *sessionService) timeout() time.Duration {
	return time.Duration(s.settings.TimeoutMs) * time.Millisecond
}
