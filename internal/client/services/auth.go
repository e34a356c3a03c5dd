// Package services contains application services of the linkdash client:
// the persisted session store and the authentication workflow.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/linkdash/internal/client/client"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/common"
)

// AuthClient is the part of the API used by AuthService.
type AuthClient interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.MessageResponse, error)
	Health(ctx context.Context) (models.Health, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and return a complete session (not persisted).
//   - Register: create a pending account and return the server message.
//   - ChangePassword: change the password of the account behind token.
//   - Ping: check server liveness.
//
// Invalid input is rejected with client.ErrInvalidRequest before any call.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (models.Session, error)
	Register(ctx context.Context, username, email string, password []byte) (string, error)
	ChangePassword(ctx context.Context, token string, oldPassword, newPassword []byte) (string, error)
	Ping(ctx context.Context) (models.Health, error)
}

type authService struct {
	bind func(token string) AuthClient
}

// NewAuthService constructs an AuthService. bind returns an API client
// authenticated with token; an empty token means anonymous.
func NewAuthService(bind func(token string) AuthClient) AuthService {
	return &authService{bind: bind}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (models.Session, error) {
	defer common.WipeByteArray(password)

	req := models.LoginRequest{Username: username, Password: string(password)}
	if err := models.Validate(req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", client.ErrInvalidRequest, err)
	}

	resp, err := a.bind("").Login(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("login error: %w", err)
	}

	sess := models.Session{Identity: resp.User, Token: resp.Token}
	if !sess.Complete() {
		return models.Session{}, fmt.Errorf("login error: %w", common.ErrIncompleteSession)
	}
	return sess, nil
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) (string, error) {
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{Username: username, Email: email, Password: string(password)}
	if err := models.Validate(req); err != nil {
		return "", fmt.Errorf("%w: %v", client.ErrInvalidRequest, err)
	}

	resp, err := a.bind("").Register(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *authService) ChangePassword(ctx context.Context, token string, oldPassword, newPassword []byte) (string, error) {
	defer common.WipeByteArray(oldPassword)
	defer common.WipeByteArray(newPassword)

	req := models.ChangePasswordRequest{OldPassword: string(oldPassword), NewPassword: string(newPassword)}
	if err := models.Validate(req); err != nil {
		return "", fmt.Errorf("%w: %v", client.ErrInvalidRequest, err)
	}

	resp, err := a.bind(token).ChangePassword(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Ping proxies a liveness check to the API.
func (a *authService) Ping(ctx context.Context) (models.Health, error) {
	return a.bind("").Health(ctx)
}
