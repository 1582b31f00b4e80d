package service

import (
	"github.com/MKhiriev/go-channel-reactor/internal/adapter"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/store"
)

// Services aggregates everything the terminal UI dispatches to.
type Services struct {
	Session  SessionService
	Reaction ReactionService
	History  HistoryService
}

func NewServices(storages *store.Storages, gateway adapter.ChannelGateway, logger *logger.Logger) *Services {
	sessionSvc := NewSessionService(storages, gateway, logger)

	return &Services{
		Session:  sessionSvc,
		Reaction: NewReactionService(sessionSvc, gateway, storages.History, logger),
		History:  NewHistoryService(storages.History, logger),
	}
}
