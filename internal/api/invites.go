package api

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/model"
)

// InvitesService wraps the invitation endpoints.
type InvitesService struct {
	c *Client
}

type sendInviteRequest struct {
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

type respondRequest struct {
	Status  model.InviteStatus `json:"status"`
	Message string             `json:"message,omitempty"`
}

// Send invites an email address to an event, with an optional personal
// message.
func (s *InvitesService) Send(ctx context.Context, eventID int64, email, message string) (*model.Invite, error) {
	var out model.Invite
	err := s.c.do(ctx, "POST", fmt.Sprintf("/events/%d/invite", eventID), sendInviteRequest{Email: email, Message: message}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns invites addressed to the current user.
func (s *InvitesService) List(ctx context.Context) ([]model.Invite, error) {
	var out []model.Invite
	if err := s.c.do(ctx, "GET", "/invites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sent returns invites the current user has sent.
func (s *InvitesService) Sent(ctx context.Context) ([]model.Invite, error) {
	var out []model.Invite
	if err := s.c.do(ctx, "GET", "/invites/sent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Respond accepts or declines an invite with an optional message.
func (s *InvitesService) Respond(ctx context.Context, id int64, status model.InviteStatus, message string) (*model.Invite, error) {
	var out model.Invite
	err := s.c.do(ctx, "POST", fmt.Sprintf("/invites/%d/respond", id), respondRequest{Status: status, Message: message}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel withdraws a pending invite.
func (s *InvitesService) Cancel(ctx context.Context, id int64) error {
	return s.c.do(ctx, "DELETE", fmt.Sprintf("/invites/%d/cancel", id), nil, nil)
}
