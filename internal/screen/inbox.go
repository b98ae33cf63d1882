package screen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/model"
)

// Inbox shows the user's notifications alongside their pending event
// invitations. Both lists are fetched concurrently and joined.
type Inbox struct {
	client *api.Client

	phase   Phase
	message string

	Notifications []model.Notification
	Invites       []model.Invite
}

func NewInbox(client *api.Client) *Inbox {
	return &Inbox{client: client, phase: Loading}
}

func (s *Inbox) Phase() Phase    { return s.phase }
func (s *Inbox) Message() string { return s.message }

func (s *Inbox) Load(ctx context.Context) error {
	s.phase = Loading
	s.message = ""
	s.Notifications = nil
	s.Invites = nil

	var (
		notifications []model.Notification
		invites       []model.Invite
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notifications, err = s.client.Notifications.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		invites, err = s.client.Invites.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.phase = Failed
		s.message = failureMessage(err, "Failed to fetch notifications")
		return err
	}

	s.Notifications = notifications
	s.Invites = invites
	s.phase = Ready
	return nil
}

// Unread counts notifications not yet marked read; the navigation badge.
func (s *Inbox) Unread() int {
	n := 0
	for _, notification := range s.Notifications {
		if !notification.Read {
			n++
		}
	}
	return n
}

// PendingInvites returns the invites still awaiting a response.
func (s *Inbox) PendingInvites() []model.Invite {
	var pending []model.Invite
	for _, invite := range s.Invites {
		if invite.Status == model.InvitePending {
			pending = append(pending, invite)
		}
	}
	return pending
}

// MarkRead flags one notification as read and flips the local entry.
func (s *Inbox) MarkRead(ctx context.Context, id int64) error {
	if err := s.requireReady(); err != nil {
		return err
	}

	if err := s.client.Notifications.MarkRead(ctx, id); err != nil {
		s.message = failureMessage(err, "Failed to mark notification as read")
		return err
	}

	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications[i].Read = true
			break
		}
	}
	return nil
}

// Respond accepts or declines an invite, then refetches both lists since a
// response also produces a notification on the other side.
func (s *Inbox) Respond(ctx context.Context, id int64, status model.InviteStatus, message string) error {
	if err := s.requireReady(); err != nil {
		return err
	}
	if status != model.InviteAccepted && status != model.InviteDeclined {
		return fmt.Errorf("invite response must be accepted or declined")
	}

	if _, err := s.client.Invites.Respond(ctx, id, status, message); err != nil {
		s.message = failureMessage(err, "Failed to respond to invite")
		return err
	}

	return s.Load(ctx)
}

// Cancel withdraws a pending invite and drops it from the local list.
func (s *Inbox) Cancel(ctx context.Context, id int64) error {
	if err := s.requireReady(); err != nil {
		return err
	}

	if err := s.client.Invites.Cancel(ctx, id); err != nil {
		s.message = failureMessage(err, "Failed to cancel invite")
		return err
	}

	for i := range s.Invites {
		if s.Invites[i].ID == id {
			s.Invites = append(s.Invites[:i:i], s.Invites[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Inbox) requireReady() error {
	if s.phase != Ready {
		return fmt.Errorf("screen is %s, not ready", s.phase)
	}
	return nil
}
