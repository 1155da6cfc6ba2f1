package service

import (
	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/feed"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/store"
)

// Services bundles the application services behind their interfaces.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	CommentService CommentService
	AppInfoService AppInfoService
}

// NewServices wires all services to the given storages, configuration, and
// live feed hub.
func NewServices(storages store.Storages, cfg config.StructuredConfig, hub *feed.Hub, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.Account, storages.Attempt, cfg.Auth, logger),
		ProfileService: NewProfileService(storages.Account, logger),
		CommentService: NewCommentService(storages.Comment, storages.Account, hub, logger),
		AppInfoService: appInfoService,
	}, nil
}
