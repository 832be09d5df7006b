// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/crypto"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/internal/validators"
	"github.com/mep-tools/bracket-tool/models"
)

// dummyPasswordHash is verified against when the email is unknown so that
// both login failure paths cost one argon2 evaluation.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=4$c29tZXNhbHRzb21lc2FsdA$MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer and tokenAudience are embedded in every issued JWT and
	// required when parsing.
	tokenIssuer   string
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.Secret,
		tokenIssuer:    cfg.Issuer,
		tokenAudience:  cfg.Audience,
		tokenDuration:  cfg.TTL,
		logger:         logger,
	}
}

// RegisterUser validates req, hashes the password and stores the account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a validators.ErrInvalidInput error for a malformed email or short password.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("registration rejected by validation")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Email: req.Email, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user. Unknown emails and wrong passwords
// both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		_, _ = a.hasher.Verify(req.Password, dummyPasswordHash)
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("stored password hash is unreadable")
		return models.User{}, ErrInvalidCredentials
	}
	if !ok {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   a.tokenIssuer,
		Audience: a.tokenAudience,
		UserID:   user.UserID,
		Email:    user.Email,
		TTL:      a.tokenDuration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation
// failure (expired, wrong issuer or audience, bad signature) is reported
// as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// normalizeEmail trims surrounding space and lower-cases the domain part.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if local, domain, ok := strings.Cut(email, "@"); ok {
		return local + "@" + strings.ToLower(domain)
	}
	return email
}
