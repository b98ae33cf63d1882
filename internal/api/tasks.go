package api

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/model"
)

// TasksService wraps the per-event task endpoints.
type TasksService struct {
	c *Client
}

// ListForEvent returns every task under one event.
func (s *TasksService) ListForEvent(ctx context.Context, eventID int64) ([]model.Task, error) {
	var out []model.Task
	if err := s.c.do(ctx, "GET", fmt.Sprintf("/tasks/event/%d", eventID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TasksService) Create(ctx context.Context, eventID int64, draft model.TaskDraft) (*model.Task, error) {
	var out model.Task
	if err := s.c.do(ctx, "POST", fmt.Sprintf("/tasks/event/%d", eventID), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TasksService) Update(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	var out model.Task
	if err := s.c.do(ctx, "PUT", fmt.Sprintf("/tasks/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TasksService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, "DELETE", fmt.Sprintf("/tasks/%d", id), nil, nil)
}
