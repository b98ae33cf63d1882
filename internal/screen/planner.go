package screen

import (
	"context"
	"fmt"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/model"
)

// Planner is the AI-assisted event form: description generation, task
// suggestions, timing advice and an assistant chat. Each action is one
// round trip; the only local state is the running conversation and the
// latest suggestions.
type Planner struct {
	client *api.Client

	Description string
	Suggested   []string
	Timing      *model.TimingSuggestions
	History     []model.ChatMessage
}

func NewPlanner(client *api.Client) *Planner {
	return &Planner{client: client}
}

func (s *Planner) GenerateDescription(ctx context.Context, req model.DescriptionRequest) (string, error) {
	if req.Title == "" {
		return "", fmt.Errorf("event title is required")
	}

	description, err := s.client.AI.GenerateDescription(ctx, req)
	if err != nil {
		return "", err
	}
	s.Description = description
	return description, nil
}

func (s *Planner) SuggestTasks(ctx context.Context, req model.SuggestTasksRequest) ([]string, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("event title is required")
	}

	tasks, err := s.client.AI.SuggestTasks(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Suggested = tasks
	return tasks, nil
}

// CreateSuggestedTasks turns accepted suggestions into real tasks under an
// event, one create per title, stopping at the first failure.
func (s *Planner) CreateSuggestedTasks(ctx context.Context, eventID int64, titles []string) ([]model.Task, error) {
	created := make([]model.Task, 0, len(titles))
	for _, title := range titles {
		task, err := s.client.Tasks.Create(ctx, eventID, model.TaskDraft{Title: title})
		if err != nil {
			return created, fmt.Errorf("create task %q: %w", title, err)
		}
		created = append(created, *task)
	}
	return created, nil
}

func (s *Planner) GenerateRSVPMessage(ctx context.Context, req model.RSVPMessageRequest) (string, error) {
	if req.EventTitle == "" || req.Status == "" {
		return "", fmt.Errorf("event title and status are required")
	}
	return s.client.AI.GenerateRSVPMessage(ctx, req)
}

func (s *Planner) OptimizeTiming(ctx context.Context, details model.TimingDetails) (*model.TimingSuggestions, error) {
	if details.Title == "" {
		return nil, fmt.Errorf("event title is required")
	}

	timing, err := s.client.AI.OptimizeTiming(ctx, details)
	if err != nil {
		return nil, err
	}
	s.Timing = timing
	return timing, nil
}

// Chat sends one user turn, carrying the full prior conversation, and
// appends both sides to the history once the assistant answers.
func (s *Planner) Chat(ctx context.Context, message string, eventID *int64) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	reply, err := s.client.AI.Chat(ctx, model.ChatRequest{
		Message:             message,
		EventID:             eventID,
		ConversationHistory: s.History,
	})
	if err != nil {
		return "", err
	}

	s.History = append(s.History,
		model.ChatMessage{Role: "user", Content: message},
		model.ChatMessage{Role: "assistant", Content: reply},
	)
	return reply, nil
}
