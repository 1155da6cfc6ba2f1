package http

import (
	"github.com/MoodyMakai/WebDevForum/internal/feed"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *feed.Hub

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *feed.Hub, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		logger:   logger,
	}
}
