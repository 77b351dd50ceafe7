package api

import (
	"context"
	"net/http"

	"github.com/lofr-in/storefront/internal/models"
)

// LoginRequest is the payload for POST /user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
	Msg   string       `json:"msg"`
}

// SignupRequest is the payload for POST /user/add.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

// Login authenticates and returns the session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var res LoginResponse
	if err := c.do(ctx, http.MethodPost, "/user/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*LoginResponse, error) {
	var res LoginResponse
	if err := c.do(ctx, http.MethodPost, "/user/add", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetUser fetches a user profile.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var res userResponse
	if err := c.do(ctx, http.MethodGet, "/user/getUserById/"+id, nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// ListUsers returns all users (admin).
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var res usersResponse
	if err := c.do(ctx, http.MethodGet, "/user", nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}

// UpdateUser updates profile fields.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "/updateUser/"+id, fields, nil)
}
