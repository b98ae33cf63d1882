package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for outgoing requests and is told
// when the server rejects it. *session.Store satisfies it.
type TokenSource interface {
	Token() string
	Expire()
}

// Client is the gateway every resource client goes through. It joins paths
// to the configured base URL, attaches the session's bearer token, logs one
// diagnostic record per round trip, and hands failures back unchanged.
type Client struct {
	baseURL    string
	sessions   TokenSource
	httpClient *http.Client
	logger     *slog.Logger

	Auth          *AuthService
	Events        *EventsService
	Tasks         *TasksService
	RSVPs         *RSVPService
	Invites       *InvitesService
	Notifications *NotificationsService
	Profile       *ProfileService
	AI            *AIService
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, sessions TokenSource, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		sessions:   sessions,
		httpClient: http.DefaultClient,
		logger:     logger.With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c: c}
	c.Events = &EventsService{c: c}
	c.Tasks = &TasksService{c: c}
	c.RSVPs = &RSVPService{c: c}
	c.Invites = &InvitesService{c: c}
	c.Notifications = &NotificationsService{c: c}
	c.Profile = &ProfileService{c: c}
	c.AI = &AIService{c: c}
	return c
}

// do issues one request and decodes the response into out (when non-nil).
// Failures are returned as *Error for HTTP-level rejections or as wrapped
// transport errors; nothing is retried or rewritten.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	authed := false
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		authed = true
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"duration", time.Since(start),
			"error", err,
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := newError(resp.StatusCode, respBody)
		c.logger.Warn("request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"request_id", requestID,
			"duration", time.Since(start),
			"message", apiErr.Message,
		)
		// A 401 from login or register means a bad password, not a stale
		// token; only a rejected bearer on an authenticated endpoint
		// invalidates the stored session.
		if resp.StatusCode == http.StatusUnauthorized && authed && !strings.HasPrefix(path, "/auth/") {
			c.sessions.Expire()
		}
		return apiErr
	}

	c.logger.Info("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
