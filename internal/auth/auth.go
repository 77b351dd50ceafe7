// Package auth signs users in and out, persisting the session locally.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/lofr-in/storefront/internal/api"
	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/internal/session"
)

var ErrLoginFailed = errors.New("login failed")

type backend interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.LoginResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Service handles login, signup and logout.
type Service struct {
	backend  backend
	sessions *session.Store
}

// NewService creates an auth service.
func NewService(backend backend, sessions *session.Store) *Service {
	return &Service{backend: backend, sessions: sessions}
}

// Login authenticates and stores token, user ID and role in the session.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := s.backend.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return nil, fmt.Errorf("%s: %w", apiErr.Message, ErrLoginFailed)
		}
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if res.Token == "" || res.User == nil {
		return nil, ErrLoginFailed
	}

	err = s.sessions.Save(session.Session{
		Token:  res.Token,
		UserID: res.User.ID,
		Role:   res.User.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return res.User, nil
}

// Signup registers a new account and signs it in.
func (s *Service) Signup(ctx context.Context, name, email, password, phone string) (*models.User, error) {
	res, err := s.backend.Signup(ctx, api.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	})
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	if res.Token == "" || res.User == nil {
		return nil, errors.New("signup succeeded but no session was returned")
	}

	err = s.sessions.Save(session.Session{
		Token:  res.Token,
		UserID: res.User.ID,
		Role:   res.User.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return res.User, nil
}

// Profile fetches the signed-in user's profile.
func (s *Service) Profile(ctx context.Context) (*models.User, error) {
	userID := s.sessions.UserID()
	if userID == "" {
		return nil, session.ErrNotLoggedIn
	}
	return s.backend.GetUser(ctx, userID)
}

// Logout clears the local session wholesale.
func (s *Service) Logout() error {
	return s.sessions.Clear()
}
