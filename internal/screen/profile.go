package screen

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/model"
)

// DeleteConfirmation is the literal phrase a user must type before their
// account is deleted.
const DeleteConfirmation = "DELETE"

const minPasswordLen = 6

// identityKeeper is the slice of the session store the profile screen
// touches. *session.Store satisfies it.
type identityKeeper interface {
	UpdateIdentity(model.User) error
	Logout() error
}

// Profile shows and edits the current user's account.
type Profile struct {
	client   *api.Client
	sessions identityKeeper

	phase   Phase
	message string

	User *model.User
}

func NewProfile(client *api.Client, sessions identityKeeper) *Profile {
	return &Profile{client: client, sessions: sessions, phase: Loading}
}

func (s *Profile) Phase() Phase    { return s.phase }
func (s *Profile) Message() string { return s.message }

func (s *Profile) Load(ctx context.Context) error {
	s.phase = Loading
	s.message = ""
	s.User = nil

	user, err := s.client.Profile.Get(ctx)
	if err != nil {
		s.phase = Failed
		s.message = failureMessage(err, "Failed to fetch profile")
		return err
	}

	s.User = user
	s.phase = Ready
	return nil
}

// Update edits the profile and pushes the replacement identity into the
// session store so every consumer sees it.
func (s *Profile) Update(ctx context.Context, patch api.ProfilePatch) (*model.User, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	user, err := s.client.Profile.Update(ctx, patch)
	if err != nil {
		s.message = failureMessage(err, "Failed to update profile")
		return nil, err
	}

	s.User = user
	if err := s.sessions.UpdateIdentity(*user); err != nil {
		return nil, fmt.Errorf("update session identity: %w", err)
	}
	return user, nil
}

// ChangePassword validates locally, then submits. The session token stays
// valid; only the password changes.
func (s *Profile) ChangePassword(ctx context.Context, current, replacement string) error {
	if err := s.requireReady(); err != nil {
		return err
	}
	if current == "" {
		return fmt.Errorf("current password is required")
	}
	if len(replacement) < minPasswordLen {
		return fmt.Errorf("new password must be at least %d characters", minPasswordLen)
	}

	if err := s.client.Profile.ChangePassword(ctx, current, replacement); err != nil {
		s.message = failureMessage(err, "Failed to change password")
		return err
	}
	return nil
}

// DeleteAccount permanently deletes the account after the user types the
// confirmation phrase, then tears the session down.
func (s *Profile) DeleteAccount(ctx context.Context, confirmation string) error {
	if err := s.requireReady(); err != nil {
		return err
	}
	if confirmation != DeleteConfirmation {
		return fmt.Errorf("type %q to confirm account deletion", DeleteConfirmation)
	}

	if err := s.client.Profile.DeleteAccount(ctx); err != nil {
		s.message = failureMessage(err, "Failed to delete account")
		return err
	}

	if err := s.sessions.Logout(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Profile) requireReady() error {
	if s.phase != Ready {
		return fmt.Errorf("screen is %s, not ready", s.phase)
	}
	return nil
}
