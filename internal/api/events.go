package api

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/model"
)

// EventsService wraps the events endpoints.
type EventsService struct {
	c *Client
}

// List returns upcoming events.
func (s *EventsService) List(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := s.c.do(ctx, "GET", "/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Past returns events whose date has passed.
func (s *EventsService) Past(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := s.c.do(ctx, "GET", "/events/past", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Invited returns events the current user has been invited to.
func (s *EventsService) Invited(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := s.c.do(ctx, "GET", "/events/invited", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EventsService) Get(ctx context.Context, id int64) (*model.Event, error) {
	var out model.Event
	if err := s.c.do(ctx, "GET", fmt.Sprintf("/events/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EventsService) Create(ctx context.Context, draft model.EventDraft) (*model.Event, error) {
	var out model.Event
	if err := s.c.do(ctx, "POST", "/events", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EventsService) Update(ctx context.Context, id int64, draft model.EventDraft) (*model.Event, error) {
	var out model.Event
	if err := s.c.do(ctx, "PUT", fmt.Sprintf("/events/%d", id), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EventsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, "DELETE", fmt.Sprintf("/events/%d", id), nil, nil)
}
