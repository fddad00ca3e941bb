// Package services contains the application services that gate every store
// mutation with validation and credential handling.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weighttrack/internal/common"
	"github.com/dmitrijs2005/weighttrack/internal/logging"
	"github.com/dmitrijs2005/weighttrack/internal/models"
	"github.com/dmitrijs2005/weighttrack/internal/passhash"
	"github.com/dmitrijs2005/weighttrack/internal/repositories/users"
	"github.com/dmitrijs2005/weighttrack/internal/validate"
)

// AuthService registers and authenticates users.
type AuthService struct {
	users users.Repository
	log   logging.Logger
}

func NewAuthService(repo users.Repository, log logging.Logger) *AuthService {
	return &AuthService{users: repo, log: log}
}

// Register validates the credentials, stores the user with a freshly salted
// digest and returns the new user id. A taken username surfaces as
// common.ErrorAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	if !validate.Username(username) {
		return 0, fmt.Errorf("%w: %w", common.ErrorValidation, common.ErrorInvalidUsernameFormat)
	}
	if !validate.Password(password) {
		return 0, fmt.Errorf("%w: %w", common.ErrorValidation, common.ErrorInvalidPasswordFormat)
	}

	salt, err := passhash.GenerateSalt()
	if err != nil {
		return 0, fmt.Errorf("failed to generate salt: %w", err)
	}

	user := &models.User{
		Username:       username,
		PasswordDigest: passhash.Hash(password, salt),
		Salt:           passhash.EncodeSalt(salt),
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", id)
	return id, nil
}

// Authenticate returns the user id for a valid (username, password) pair.
// Every failure collapses into common.ErrorNotFound: bad username format,
// empty password, unknown user, unreadable stored salt and a wrong password
// are indistinguishable to the caller. When the user does not exist, one
// digest computation is still performed against a throwaway salt so that the
// hashing cost is paid on both paths.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	if !validate.Username(username) || password == "" {
		return 0, common.ErrorNotFound
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnHash(password)
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("error looking up user: %w", err)
	}

	if !passhash.Verify(password, user.Salt, user.PasswordDigest) {
		return 0, common.ErrorNotFound
	}

	s.log.Debug(ctx, "user authenticated", "user_id", user.ID)
	return user.ID, nil
}

// burnHash computes and discards one digest so the unknown-user path costs
// about the same as a real verification.
func (s *AuthService) burnHash(password string) {
	salt, err := passhash.GenerateSalt()
	if err != nil {
		return
	}
	passhash.Verify(password, passhash.EncodeSalt(salt), "")
}

// DeleteUser removes a user and, via the cascade, all of its weight entries.
// Returns common.ErrorNotFound when no such user exists.
func (s *AuthService) DeleteUser(ctx context.Context, userID int64) error {
	n, err := s.users.DeleteByID(ctx, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	s.log.Info(ctx, "user deleted", "user_id", userID)
	return nil
}
