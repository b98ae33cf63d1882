package api

import (
	"context"

	"github.com/calloway/gather/internal/model"
)

// ProfileService wraps the profile endpoints.
type ProfileService struct {
	c *Client
}

// ProfilePatch carries the editable profile fields; nil fields are left
// unchanged by the server.
type ProfilePatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (s *ProfileService) Get(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := s.c.do(ctx, "GET", "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProfileService) Update(ctx context.Context, patch ProfilePatch) (*model.User, error) {
	var out model.User
	if err := s.c.do(ctx, "PUT", "/profile", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProfileService) ChangePassword(ctx context.Context, current, replacement string) error {
	return s.c.do(ctx, "PUT", "/profile/change-password", changePasswordRequest{
		CurrentPassword: current,
		NewPassword:     replacement,
	}, nil)
}

// DeleteAccount permanently removes the current user and everything owned by
// them. Callers are responsible for confirmation; the session is cleared by
// the caller after success.
func (s *ProfileService) DeleteAccount(ctx context.Context) error {
	return s.c.do(ctx, "DELETE", "/profile/delete", nil, nil)
}
