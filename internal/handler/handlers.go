package handler

import (
	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/feed"
	"github.com/MoodyMakai/WebDevForum/internal/handler/http"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/service"
)

// Handlers bundles the transport handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers for every configured address.
func NewHandlers(services *service.Services, hub *feed.Hub, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, hub, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
