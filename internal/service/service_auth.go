package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	purposeVerifyEmail   = "verify"
	purposeResetPassword = "reset"

	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing and a TokenStore for revocations and one-time tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenStore keeps revoked token IDs and one-time tokens.
	tokenStore store.TokenStore

	// mailer delivers verification and reset tokens.
	mailer Mailer

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// requireVerification blocks sign-in of unverified accounts.
	requireVerification bool

	bcryptCost int
	ids        *utils.UUIDGenerator
	now        func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenStore store.TokenStore, mailer Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:      userRepository,
		tokenStore:          tokenStore,
		mailer:              mailer,
		validator:           validators.NewCredentialsValidator(),
		tokenSignKey:        cfg.TokenSignKey,
		tokenIssuer:         cfg.TokenIssuer,
		tokenDuration:       cfg.TokenDuration,
		requireVerification: cfg.RequireEmailVerification,
		bcryptCost:          bcrypt.DefaultCost,
		ids:                 utils.NewUUIDGenerator(),
		now:                 time.Now,
		logger:              logger,
	}
}

// RegisterUser creates a new account.
//
// The password is stored as a bcrypt hash. When verification is required
// the account starts unverified and a verification token is mailed.
//
// Returns the public user record or:
//   - ErrInvalidDataProvided (wrapped) if the credentials fail validation.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, creds models.CredentialsRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Str("email", creds.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:         creds.Email,
		PasswordHash:  string(hash),
		EmailVerified: !a.requireVerification,
	})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if a.requireVerification {
		if err = a.issueOneTimeToken(ctx, registeredUser, purposeVerifyEmail, verifyTokenTTL, "Confirm your email"); err != nil {
			return models.User{}, err
		}
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user.
//
// Returns the authenticated public user record or:
//   - ErrInvalidDataProvided if the email is malformed.
//   - A wrapped store.ErrNoUserWasFound if no account uses the email.
//   - ErrWrongPassword if the password does not match.
//   - ErrEmailNotVerified if verification is required and pending.
func (a *authService) Login(ctx context.Context, creds models.CredentialsRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds, validators.FieldEmail); err != nil || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Error().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if a.requireVerification && !foundUser.EmailVerified {
		log.Error().Int64("id", foundUser.UserID).Msg("email is not verified")
		return models.User{}, ErrEmailNotVerified
	}

	return foundUser.Public(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, a random "jti", and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string and checks that it was
// not revoked.
//
// Returns ErrTokenIsExpired for expired tokens, ErrTokenIsExpiredOrInvalid
// for any other validation failure and ErrTokenRevoked for logged-out ones.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.tokenStore.IsTokenRevoked(ctx, token.ID)
	if err != nil {
		return models.Token{}, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

// Logout revokes the token for the rest of its lifetime. Tokens that are
// already expired need no revocation.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	ttl := token.TTL(a.now())
	if ttl == 0 {
		return nil
	}

	if err := a.tokenStore.RevokeToken(ctx, token.ID, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", token.UserID).Msg("token revocation failed")
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

// CurrentUser returns the public record of the signed-in user.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("find current user: %w", err)
	}

	return user.Public(), nil
}

// UpdatePassword replaces the password after checking the old one.
func (a *authService) UpdatePassword(ctx context.Context, userID int64, req models.PasswordUpdateRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	return a.setPassword(ctx, userID, req.NewPassword)
}

// RequestPasswordReset mails a reset token. Unknown emails are not reported
// to the caller.
func (a *authService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", req.Email).Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	return a.issueOneTimeToken(ctx, user, purposeResetPassword, resetTokenTTL, "Reset your password")
}

// ConfirmPasswordReset sets a new password using a mailed reset token.
func (a *authService) ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirmRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	userID, err := a.consumeOneTimeToken(ctx, purposeResetPassword, req.Token)
	if err != nil {
		return err
	}

	return a.setPassword(ctx, userID, req.NewPassword)
}

// VerifyEmail marks the account of a mailed verification token as verified.
func (a *authService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	userID, err := a.consumeOneTimeToken(ctx, purposeVerifyEmail, req.Token)
	if err != nil {
		return err
	}

	if err = a.userRepository.MarkEmailVerified(ctx, userID); err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}

	return nil
}

func (a *authService) setPassword(ctx context.Context, userID int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (a *authService) issueOneTimeToken(ctx context.Context, user models.User, purpose string, ttl time.Duration, subject string) error {
	token := a.ids.Generate()

	if err := a.tokenStore.SaveOneTimeToken(ctx, purpose, token, user.UserID, ttl); err != nil {
		return fmt.Errorf("save %s token: %w", purpose, err)
	}

	if err := a.mailer.Send(ctx, user.Email, subject, token); err != nil {
		return fmt.Errorf("send %s token: %w", purpose, err)
	}

	return nil
}

func (a *authService) consumeOneTimeToken(ctx context.Context, purpose, token string) (int64, error) {
	userID, err := a.tokenStore.ConsumeOneTimeToken(ctx, purpose, token)
	if errors.Is(err, store.ErrTokenNotFound) {
		return 0, ErrInvalidOneTimeToken
	}
	if err != nil {
		return 0, fmt.Errorf("consume %s token: %w", purpose, err)
	}

	return userID, nil
}
