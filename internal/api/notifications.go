package api

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/model"
)

// NotificationsService wraps the notification endpoints. They live under the
// /rsvps prefix on the server.
type NotificationsService struct {
	c *Client
}

// List returns the current user's notifications.
func (s *NotificationsService) List(ctx context.Context) ([]model.Notification, error) {
	var out []model.Notification
	if err := s.c.do(ctx, "GET", "/rsvps/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead flags one notification as read.
func (s *NotificationsService) MarkRead(ctx context.Context, id int64) error {
	return s.c.do(ctx, "PUT", fmt.Sprintf("/rsvps/notifications/%d/read", id), nil, nil)
}
