package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/store"
	"github.com/MoodyMakai/WebDevForum/internal/utils"
	"github.com/MoodyMakai/WebDevForum/models"
)

// defaultNameColor is assigned to accounts that do not pick a color at
// registration time. Matches the schema default.
const defaultNameColor = "#1F6FEB"

// authService is the concrete implementation of AuthService: the single
// decision path for every login attempt and every credential change.
// It owns the security-state fields of an account (failed_attempts,
// lock_until) and the append-only attempt log.
type authService struct {
	// accountRepository is the data-access layer for accounts and their
	// security state.
	accountRepository store.AccountRepository

	// attemptRepository is the append-only login audit log.
	attemptRepository store.AttemptRepository

	// lockoutPolicy is the strike threshold and flat lockout duration.
	lockoutPolicy LockoutPolicy

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for lockout decisions. Injectable for tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction and every security-state mutation is a single atomic
// statement in the repository.
func NewAuthService(accountRepository store.AccountRepository, attemptRepository store.AttemptRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		attemptRepository: attemptRepository,
		lockoutPolicy: LockoutPolicy{
			MaxFailures:  cfg.MaxFailedLogins,
			LockDuration: cfg.LockoutDuration,
		},
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Register creates a new forum account.
//
// Validation: username 3-30 chars of [A-Za-z0-9_]; display name 3-30 chars
// of [A-Za-z0-9 _-] and must differ from the username; password must pass
// the strength policy. The password is bcrypt-hashed before persistence.
//
// Returns the persisted account (with a server-assigned AccountID) or:
//   - ErrInvalidUsername / ErrInvalidDisplayName / ErrWeakPassword on
//     validation failures.
//   - store.ErrUsernameTaken when the username is already registered.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Register(ctx context.Context, username, password, displayName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := validateUsername(username); err != nil {
		log.Error().Str("username", username).Msg("invalid username provided")
		return models.Account{}, err
	}
	if err := validateDisplayName(displayName); err != nil {
		log.Error().Str("display_name", displayName).Msg("invalid display name provided")
		return models.Account{}, err
	}
	if strings.EqualFold(displayName, username) {
		log.Error().Str("username", username).Msg("display name must differ from username")
		return models.Account{}, ErrInvalidDisplayName
	}
	if err := validatePasswordStrength(password); err != nil {
		return models.Account{}, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account := models.Account{
		Username:     username,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		NameColor:    defaultNameColor,
	}

	createdAccount, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.Account{}, err
		}

		log.Err(err).Str("username", username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return createdAccount, nil
}

// EvaluateLogin mediates one login attempt through the guard.
//
// The sequence is fixed:
//  1. Look up the account by username. An unknown username is recorded in
//     the attempt log (by username only) and rejected with the same
//     externally visible reason as a wrong password.
//  2. An account inside an active lockout window is rejected without
//     consulting the password and without touching counters. The attempt
//     is still recorded for audit.
//  3. The password is verified against the stored hash. On mismatch the
//     failure counter is incremented atomically in the store; if that
//     strike crossed the threshold the rejection reason is AccountLocked,
//     otherwise InvalidCredentials.
//  4. On success the counter is zeroed, any lockout is cleared, and the
//     decision carries the account summary for session establishment.
//
// Exactly one attempt record is appended per call. The returned error is
// non-nil only for store or hash-integrity failures.
func (a *authService) EvaluateLogin(ctx context.Context, username, password, origin string) (models.LoginDecision, error) {
	log := logger.FromContext(ctx)

	// An empty password is just a wrong password and goes through the
	// normal path so the attempt is audited and counted.
	if username == "" {
		log.Error().Msg("empty username provided")
		return models.LoginDecision{}, ErrInvalidDataProvided
	}

	now := a.now()

	account, err := a.accountRepository.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			if err := a.recordAttempt(ctx, 0, username, origin, false); err != nil {
				return models.LoginDecision{}, err
			}

			log.Info().Str("username", username).Str("origin", origin).Msg("login rejected: unknown username")
			return models.Reject(models.ReasonInvalidCredentials), nil
		}

		log.Err(err).Str("username", username).Msg("account lookup failed")
		return models.LoginDecision{}, fmt.Errorf("account lookup failed: %w", err)
	}

	state := SecurityState{FailedAttempts: account.FailedAttempts, LockUntil: account.LockUntil}
	if state.Locked(now) {
		if err := a.recordAttempt(ctx, account.AccountID, username, origin, false); err != nil {
			return models.LoginDecision{}, err
		}

		log.Info().
			Int64("id", account.AccountID).
			Time("lock_until", account.LockUntil).
			Str("origin", origin).
			Msg("login rejected: account locked")
		return models.Reject(models.ReasonAccountLocked), nil
	}

	matches, err := utils.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		// malformed stored hash, not a wrong password
		log.Err(err).Int64("id", account.AccountID).Msg("password verification failed")
		return models.LoginDecision{}, fmt.Errorf("password verification failed: %w", err)
	}

	if !matches {
		lockUntil := now.Add(a.lockoutPolicy.LockDuration)
		failedAttempts, lockedUntil, err := a.accountRepository.IncrementFailedAttempts(ctx, account.AccountID, a.lockoutPolicy.MaxFailures, lockUntil)
		if err != nil {
			log.Err(err).Int64("id", account.AccountID).Msg("failed-attempt increment failed")
			return models.LoginDecision{}, fmt.Errorf("failed-attempt increment failed: %w", err)
		}

		if err := a.recordAttempt(ctx, account.AccountID, username, origin, false); err != nil {
			return models.LoginDecision{}, err
		}

		newState := SecurityState{FailedAttempts: failedAttempts, LockUntil: lockedUntil}
		if newState.Locked(now) {
			log.Info().
				Int64("id", account.AccountID).
				Int("failed_attempts", failedAttempts).
				Time("lock_until", lockedUntil).
				Msg("login rejected: wrong password, account now locked")
			return models.Reject(models.ReasonAccountLocked), nil
		}

		log.Info().
			Int64("id", account.AccountID).
			Int("failed_attempts", failedAttempts).
			Msg("login rejected: wrong password")
		return models.Reject(models.ReasonInvalidCredentials), nil
	}

	if err := a.accountRepository.ResetSecurityState(ctx, account.AccountID); err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("security-state reset failed")
		return models.LoginDecision{}, fmt.Errorf("security-state reset failed: %w", err)
	}

	if err := a.recordAttempt(ctx, account.AccountID, username, origin, true); err != nil {
		return models.LoginDecision{}, err
	}

	log.Info().Int64("id", account.AccountID).Str("username", username).Msg("login accepted")
	return models.Accept(account.Summary()), nil
}

// ChangePassword verifies the current password and replaces it with a new
// one that passes the strength policy.
//
// On a current-password mismatch nothing is mutated and
// ErrCurrentPasswordIncorrect is returned; on a weak new password the
// stored hash is left unchanged and ErrWeakPassword is returned. On
// success the hash and password_changed_at are persisted, which makes
// every previously issued session token invalid and forces
// re-authentication.
func (a *authService) ChangePassword(ctx context.Context, accountID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("account lookup failed")
		return fmt.Errorf("account lookup failed: %w", err)
	}

	matches, err := utils.VerifyPassword(currentPassword, account.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("password verification failed")
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !matches {
		log.Info().Int64("id", accountID).Msg("password change rejected: current password incorrect")
		return ErrCurrentPasswordIncorrect
	}

	if err := validatePasswordStrength(newPassword); err != nil {
		return err
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.accountRepository.UpdatePasswordHash(ctx, accountID, newHash, a.now()); err != nil {
		log.Err(err).Int64("id", accountID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", accountID).Msg("password changed, existing sessions invalidated")
	return nil
}

// CreateToken issues a signed session JWT for the given account.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// Beyond signature, expiry, and issuer checks, the token's issue time is
// compared against the account's last password change: tokens issued
// before it are rejected, which is how ChangePassword's session
// invalidation contract is enforced.
//
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	account, err := a.accountRepository.FindAccountByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Int64("id", token.AccountID).Msg("account lookup failed during token check")
		return models.Token{}, fmt.Errorf("account lookup failed: %w", err)
	}

	if !account.PasswordChangedAt.IsZero() && token.IssuedAt != nil && token.IssuedAt.Time.Before(account.PasswordChangedAt) {
		log.Info().Int64("id", token.AccountID).Msg("token rejected: issued before password change")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// recordAttempt appends one row to the audit log. An append failure is a
// store failure for the whole login POST: the invariant is one persisted
// record per attempt, so the outcome is not returned without it.
func (a *authService) recordAttempt(ctx context.Context, accountID int64, username, origin string, success bool) error {
	err := a.attemptRepository.AppendLoginAttempt(ctx, models.LoginAttempt{
		AccountID:   accountID,
		Username:    username,
		Origin:      origin,
		Success:     success,
		AttemptedAt: a.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("recording login attempt failed")
		return fmt.Errorf("recording login attempt failed: %w", err)
	}

	return nil
}
