package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	observer "github.com/imkira/go-observer"

	"github.com/calloway/gather/internal/keyring"
	"github.com/calloway/gather/internal/model"
)

// ChangeKind tags what happened to the session.
type ChangeKind string

const (
	ChangeRestore ChangeKind = "restore"
	ChangeLogin   ChangeKind = "login"
	ChangeLogout  ChangeKind = "logout"
	ChangeUpdate  ChangeKind = "update"
	ChangeExpire  ChangeKind = "expire"
)

// Session is the client-held proof of identity.
type Session struct {
	Identity model.User
	Token    string
}

// Change is published on every session mutation. Session is nil when the
// store became inactive.
type Change struct {
	Kind    ChangeKind
	Session *Session
}

// Store holds the current authenticated identity backed by the keyring.
// It is constructed once at startup and handed by reference to the gateway
// and every screen; Observe gives consumers a change stream.
type Store struct {
	mu      sync.RWMutex
	ring    *keyring.Keyring
	current *Session
	signal  observer.Property
	logger  *slog.Logger
}

func NewStore(ring *keyring.Keyring, logger *slog.Logger) *Store {
	return &Store{
		ring:   ring,
		signal: observer.NewProperty(nil),
		logger: logger,
	}
}

// Restore reads persisted credentials at startup. Both halves present makes
// the session active; otherwise it stays inactive. The token is not
// validated against the server; staleness surfaces on the first rejected
// call.
func (s *Store) Restore() error {
	creds, err := s.ring.Credentials()
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}

	s.mu.Lock()
	if creds == nil {
		s.current = nil
		s.mu.Unlock()
		s.logger.Debug("session restore: no stored credentials")
		return nil
	}

	var identity model.User
	if err := json.Unmarshal(creds.Identity, &identity); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("decode identity: %w", err)
	}

	sess := &Session{Identity: identity, Token: creds.Token}
	s.current = sess
	s.mu.Unlock()

	s.logger.Debug("session restored", "username", identity.Username)
	s.publish(ChangeRestore, sess)
	return nil
}

// Login persists the token and identity durably, then activates the session.
// Observers only ever see the complete new session.
func (s *Store) Login(token string, identity model.User) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.ring.PutCredentials(keyring.Credentials{Token: token, Identity: raw}); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	sess := &Session{Identity: identity, Token: token}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("session started", "username", identity.Username)
	s.publish(ChangeLogin, sess)
	return nil
}

// Logout erases persisted credentials and deactivates the session. Safe to
// call when already inactive.
func (s *Store) Logout() error {
	if err := s.ring.DeleteCredentials(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	s.mu.Lock()
	wasActive := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if wasActive {
		s.logger.Info("session ended")
		s.publish(ChangeLogout, nil)
	}
	return nil
}

// UpdateIdentity persists a replacement identity while keeping the token.
// Used after profile edits.
func (s *Store) UpdateIdentity(identity model.User) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return fmt.Errorf("no active session")
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.ring.PutIdentity(raw); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist identity: %w", err)
	}

	sess := &Session{Identity: identity, Token: s.current.Token}
	s.current = sess
	s.mu.Unlock()

	s.publish(ChangeUpdate, sess)
	return nil
}

// Expire deactivates the session after the server rejected its token. Like
// Logout it clears storage, but it publishes a distinct change kind so
// consumers can prompt for re-login.
func (s *Store) Expire() {
	s.mu.Lock()
	wasActive := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if !wasActive {
		return
	}

	if err := s.ring.DeleteCredentials(); err != nil {
		s.logger.Warn("clear expired credentials", "error", err)
	}
	s.logger.Info("session expired")
	s.publish(ChangeExpire, nil)
}

// Current returns a copy of the active session.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Token returns the bearer token, or "" when inactive.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Observe returns a stream of Change values, one per mutation.
func (s *Store) Observe() observer.Stream {
	return s.signal.Observe()
}

// ExpiresAt inspects the token's exp claim without verifying the signature;
// verification is the server's job. The second return is false when the
// session is inactive or the token carries no usable expiry.
func (s *Store) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the token's declared expiry has passed. Tokens
// without an expiry claim are never considered expired here.
func (s *Store) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && now.After(exp)
}

func (s *Store) publish(kind ChangeKind, sess *Session) {
	s.signal.Update(&Change{Kind: kind, Session: sess})
}
