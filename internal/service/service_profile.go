package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/store"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	accountRepository store.AccountRepository
	logger            *logger.Logger
}

// NewProfileService constructs a ProfileService over the account repository.
func NewProfileService(accountRepository store.AccountRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// UpdateDisplayName validates and persists a new display name. The
// denormalized author_name on the account's existing comments is rewritten
// in the same transaction by the repository, so the feed never shows a mix
// of old and new names.
func (p *profileService) UpdateDisplayName(ctx context.Context, accountID int64, displayName string) error {
	log := logger.FromContext(ctx)

	if err := validateDisplayName(displayName); err != nil {
		log.Error().Int64("id", accountID).Str("display_name", displayName).Msg("invalid display name provided")
		return err
	}

	account, err := p.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("account lookup failed")
		return fmt.Errorf("account lookup failed: %w", err)
	}
	if strings.EqualFold(displayName, account.Username) {
		log.Error().Int64("id", accountID).Msg("display name must differ from username")
		return ErrInvalidDisplayName
	}

	if err := p.accountRepository.UpdateDisplayName(ctx, accountID, displayName); err != nil {
		log.Err(err).Int64("id", accountID).Msg("display name update failed")
		return fmt.Errorf("display name update failed: %w", err)
	}

	log.Info().Int64("id", accountID).Str("display_name", displayName).Msg("display name updated")
	return nil
}

// UpdateColor validates and persists a new name color.
func (p *profileService) UpdateColor(ctx context.Context, accountID int64, color string) error {
	log := logger.FromContext(ctx)

	if err := validateColor(color); err != nil {
		log.Error().Int64("id", accountID).Str("color", color).Msg("invalid name color provided")
		return err
	}

	if err := p.accountRepository.UpdateColor(ctx, accountID, color); err != nil {
		log.Err(err).Int64("id", accountID).Msg("name color update failed")
		return fmt.Errorf("name color update failed: %w", err)
	}

	log.Info().Int64("id", accountID).Str("color", color).Msg("name color updated")
	return nil
}
