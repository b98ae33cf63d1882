package api

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/model"
)

// RSVPService wraps the per-event RSVP endpoints.
type RSVPService struct {
	c *Client
}

type rsvpRequest struct {
	Status  model.RSVPStatus `json:"status"`
	Message string           `json:"message,omitempty"`
}

// ListForEvent returns every RSVP for one event, at most one per user.
func (s *RSVPService) ListForEvent(ctx context.Context, eventID int64) ([]model.RSVP, error) {
	var out []model.RSVP
	if err := s.c.do(ctx, "GET", fmt.Sprintf("/rsvps/event/%d", eventID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits the current user's RSVP for an event. The server replaces
// any prior RSVP from the same user rather than adding a second one.
func (s *RSVPService) Create(ctx context.Context, eventID int64, status model.RSVPStatus, message string) (*model.RSVP, error) {
	var out model.RSVP
	err := s.c.do(ctx, "POST", fmt.Sprintf("/rsvps/event/%d", eventID), rsvpRequest{Status: status, Message: message}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
