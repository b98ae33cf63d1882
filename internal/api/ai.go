package api

import (
	"context"

	"github.com/calloway/gather/internal/model"
)

// AIService wraps the assistant endpoints. Every call is one stateless
// round trip; conversation history travels in the request.
type AIService struct {
	c *Client
}

func (s *AIService) GenerateDescription(ctx context.Context, req model.DescriptionRequest) (string, error) {
	var out model.DescriptionResponse
	if err := s.c.do(ctx, "POST", "/ai/generate-description", req, &out); err != nil {
		return "", err
	}
	return out.Description, nil
}

func (s *AIService) SuggestTasks(ctx context.Context, req model.SuggestTasksRequest) ([]string, error) {
	var out model.SuggestTasksResponse
	if err := s.c.do(ctx, "POST", "/ai/suggest-tasks", req, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (s *AIService) GenerateRSVPMessage(ctx context.Context, req model.RSVPMessageRequest) (string, error) {
	var out model.RSVPMessageResponse
	if err := s.c.do(ctx, "POST", "/ai/generate-rsvp", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (s *AIService) Chat(ctx context.Context, req model.ChatRequest) (string, error) {
	var out model.ChatResponse
	if err := s.c.do(ctx, "POST", "/ai/chat", req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (s *AIService) OptimizeTiming(ctx context.Context, details model.TimingDetails) (*model.TimingSuggestions, error) {
	var out model.OptimizeTimingResponse
	if err := s.c.do(ctx, "POST", "/ai/optimize-timing", model.OptimizeTimingRequest{EventDetails: details}, &out); err != nil {
		return nil, err
	}
	return &out.Suggestions, nil
}
