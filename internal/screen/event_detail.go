package screen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/model"
)

// EventDetail shows one event with its tasks and RSVPs. The three resources
// are fetched concurrently and joined; the first failure wins and the screen
// shows nothing from the fetches that did succeed.
type EventDetail struct {
	client  *api.Client
	eventID int64

	phase   Phase
	message string

	Event *model.Event
	Tasks []model.Task
	RSVPs []model.RSVP
}

func NewEventDetail(client *api.Client, eventID int64) *EventDetail {
	return &EventDetail{client: client, eventID: eventID, phase: Loading}
}

func (s *EventDetail) Phase() Phase    { return s.phase }
func (s *EventDetail) Message() string { return s.message }

// Load fetches the event, its tasks and its RSVPs in parallel. Cancelling
// ctx tears down whatever is still in flight.
func (s *EventDetail) Load(ctx context.Context) error {
	s.phase = Loading
	s.message = ""
	// Drop data from an earlier load so a failed reload exposes nothing.
	s.Event = nil
	s.Tasks = nil
	s.RSVPs = nil

	var (
		event *model.Event
		tasks []model.Task
		rsvps []model.RSVP
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = s.client.Events.Get(ctx, s.eventID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.client.Tasks.ListForEvent(ctx, s.eventID)
		return err
	})
	g.Go(func() error {
		var err error
		rsvps, err = s.client.RSVPs.ListForEvent(ctx, s.eventID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.phase = Failed
		s.message = failureMessage(err, "Failed to fetch event data")
		return err
	}

	s.Event = event
	s.Tasks = tasks
	s.RSVPs = rsvps
	s.phase = Ready
	return nil
}

// AddTask creates a task under the event and appends it locally once the
// server confirms.
func (s *EventDetail) AddTask(ctx context.Context, draft model.TaskDraft) (*model.Task, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	task, err := s.client.Tasks.Create(ctx, s.eventID, draft)
	if err != nil {
		s.message = failureMessage(err, "Failed to create task")
		return nil, err
	}

	s.Tasks = append(s.Tasks, *task)
	s.syncCounts()
	return task, nil
}

// UpdateTask patches a task and replaces the matching local entry by id.
func (s *EventDetail) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	task, err := s.client.Tasks.Update(ctx, id, patch)
	if err != nil {
		s.message = failureMessage(err, "Failed to update task")
		return nil, err
	}

	s.Tasks = replaceTask(s.Tasks, *task)
	return task, nil
}

// CompleteTask flips a task's completion status.
func (s *EventDetail) CompleteTask(ctx context.Context, id int64, done bool) (*model.Task, error) {
	return s.UpdateTask(ctx, id, model.TaskPatch{Completed: &done})
}

// RemoveTask deletes a task and drops the matching local entry by id.
func (s *EventDetail) RemoveTask(ctx context.Context, id int64) error {
	if err := s.requireReady(); err != nil {
		return err
	}

	if err := s.client.Tasks.Delete(ctx, id); err != nil {
		s.message = failureMessage(err, "Failed to delete task")
		return err
	}

	s.Tasks = removeTask(s.Tasks, id)
	s.syncCounts()
	return nil
}

// SubmitRSVP submits the current user's response. The local list keeps at
// most one entry per responding user: an existing entry is replaced in
// place, a new one is appended.
func (s *EventDetail) SubmitRSVP(ctx context.Context, status model.RSVPStatus, message string) (*model.RSVP, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid rsvp status %q", status)
	}

	rsvp, err := s.client.RSVPs.Create(ctx, s.eventID, status, message)
	if err != nil {
		s.message = failureMessage(err, "Failed to RSVP")
		return nil, err
	}

	s.RSVPs = upsertRSVP(s.RSVPs, *rsvp)
	s.syncCounts()
	return rsvp, nil
}

// SendInvite invites an email address to this event.
func (s *EventDetail) SendInvite(ctx context.Context, email, message string) (*model.Invite, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, fmt.Errorf("invitee email is required")
	}

	invite, err := s.client.Invites.Send(ctx, s.eventID, email, message)
	if err != nil {
		s.message = failureMessage(err, "Failed to send invite")
		return nil, err
	}
	return invite, nil
}

// syncCounts re-derives the event's counters from the local lists so the
// header stays consistent after mutations.
func (s *EventDetail) syncCounts() {
	if s.Event == nil {
		return
	}
	s.Event.TasksCount = len(s.Tasks)
	s.Event.RSVPsCount = len(s.RSVPs)
}

func (s *EventDetail) requireReady() error {
	if s.phase != Ready {
		return fmt.Errorf("screen is %s, not ready", s.phase)
	}
	return nil
}

func replaceTask(tasks []model.Task, updated model.Task) []model.Task {
	for i := range tasks {
		if tasks[i].ID == updated.ID {
			tasks[i] = updated
			break
		}
	}
	return tasks
}

// removeTask drops the entry with the given id. An absent id leaves the
// list unchanged.
func removeTask(tasks []model.Task, id int64) []model.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i:i], tasks[i+1:]...)
		}
	}
	return tasks
}

// upsertRSVP replaces the entry from the same responding user in place, or
// appends when the user has no entry yet.
func upsertRSVP(rsvps []model.RSVP, submitted model.RSVP) []model.RSVP {
	for i := range rsvps {
		if rsvps[i].User == submitted.User {
			rsvps[i] = submitted
			return rsvps
		}
	}
	return append(rsvps, submitted)
}
