package api

import (
	"context"

	"github.com/calloway/gather/internal/model"
)

// AuthService wraps the authentication endpoints. Both calls are
// unauthenticated; the returned token becomes the session credential.
type AuthService struct {
	c *Client
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := s.c.do(ctx, "POST", "/auth/login", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := s.c.do(ctx, "POST", "/auth/register", registerRequest{Username: username, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
