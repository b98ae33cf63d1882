package screen

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/model"
)

// Tab selects which slice of events the list screen shows.
type Tab string

const (
	TabUpcoming Tab = "upcoming"
	TabPast     Tab = "past"
	TabInvited  Tab = "invited"
)

// EventList shows upcoming, past or invited-to events, one fetch per tab.
type EventList struct {
	client *api.Client
	tab    Tab

	phase   Phase
	message string

	Events []model.Event
}

func NewEventList(client *api.Client, tab Tab) *EventList {
	return &EventList{client: client, tab: tab, phase: Loading}
}

func (s *EventList) Phase() Phase    { return s.phase }
func (s *EventList) Message() string { return s.message }
func (s *EventList) Tab() Tab        { return s.tab }

func (s *EventList) Load(ctx context.Context) error {
	s.phase = Loading
	s.message = ""
	s.Events = nil

	var (
		events []model.Event
		err    error
	)
	switch s.tab {
	case TabPast:
		events, err = s.client.Events.Past(ctx)
	case TabInvited:
		events, err = s.client.Events.Invited(ctx)
	default:
		events, err = s.client.Events.List(ctx)
	}
	if err != nil {
		s.phase = Failed
		s.message = failureMessage(err, "Failed to fetch events")
		return err
	}

	s.Events = events
	s.phase = Ready
	return nil
}

// CreateEvent creates an event and appends it to the local list.
func (s *EventList) CreateEvent(ctx context.Context, draft model.EventDraft) (*model.Event, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("event title is required")
	}
	if draft.Date.IsZero() {
		return nil, fmt.Errorf("event date is required")
	}

	event, err := s.client.Events.Create(ctx, draft)
	if err != nil {
		s.message = failureMessage(err, "Failed to create event")
		return nil, err
	}

	s.Events = append(s.Events, *event)
	return event, nil
}

// DeleteEvent deletes an event and drops the matching local entry by id.
// Callers confirm with the user before getting here.
func (s *EventList) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.requireReady(); err != nil {
		return err
	}

	if err := s.client.Events.Delete(ctx, id); err != nil {
		s.message = failureMessage(err, "Failed to delete event")
		return err
	}

	s.Events = removeEvent(s.Events, id)
	return nil
}

func (s *EventList) requireReady() error {
	if s.phase != Ready {
		return fmt.Errorf("screen is %s, not ready", s.phase)
	}
	return nil
}

func removeEvent(events []model.Event, id int64) []model.Event {
	for i := range events {
		if events[i].ID == id {
			return append(events[:i:i], events[i+1:]...)
		}
	}
	return events
}
