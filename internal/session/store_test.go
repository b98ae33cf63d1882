package session

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/calloway/gather/internal/keyring"
	"github.com/calloway/gather/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openRing(t *testing.T, dir string) *keyring.Keyring {
	t.Helper()
	ring, err := keyring.Open(filepath.Join(dir, "keyring.db"), filepath.Join(dir, "keyring.secret"))
	if err != nil {
		t.Fatalf("open keyring: %v", err)
	}
	t.Cleanup(func() { ring.Close() })
	return ring
}

func alice() model.User {
	return model.User{ID: 1, Username: "alice", Email: "alice@example.com"}
}

func TestLoginRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(openRing(t, dir), testLogger())
	if err := store.Login("tok123", alice()); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Simulated restart: fresh keyring handle, fresh store.
	restarted := NewStore(openRing(t, dir), testLogger())
	if err := restarted.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}

	current, ok := restarted.Current()
	if !ok {
		t.Fatal("expected active session after restore")
	}
	if current.Token != "tok123" {
		t.Errorf("token = %q, want %q", current.Token, "tok123")
	}
	if current.Identity.Username != "alice" {
		t.Errorf("username = %q, want %q", current.Identity.Username, "alice")
	}
}

func TestLogoutClearsCompletely(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(openRing(t, dir), testLogger())
	if err := store.Login("tok123", alice()); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Active() {
		t.Error("store still active after logout")
	}
	if store.Token() != "" {
		t.Errorf("token = %q, want empty", store.Token())
	}

	restarted := NewStore(openRing(t, dir), testLogger())
	if err := restarted.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restarted.Active() {
		t.Error("session survived logout across restart")
	}
}

func TestLogoutWhenInactive(t *testing.T) {
	store := NewStore(openRing(t, t.TempDir()), testLogger())
	if err := store.Logout(); err != nil {
		t.Fatalf("logout when inactive: %v", err)
	}
}

func TestRestoreWithoutCredentials(t *testing.T) {
	store := NewStore(openRing(t, t.TempDir()), testLogger())
	if err := store.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if store.Active() {
		t.Error("expected inactive session")
	}
}

func TestUpdateIdentityKeepsToken(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(openRing(t, dir), testLogger())
	if err := store.Login("tok123", alice()); err != nil {
		t.Fatalf("login: %v", err)
	}

	updated := alice()
	updated.Email = "new@example.com"
	if err := store.UpdateIdentity(updated); err != nil {
		t.Fatalf("update identity: %v", err)
	}

	current, _ := store.Current()
	if current.Token != "tok123" {
		t.Errorf("token = %q, want unchanged", current.Token)
	}
	if current.Identity.Email != "new@example.com" {
		t.Errorf("email = %q, want updated", current.Identity.Email)
	}

	restarted := NewStore(openRing(t, dir), testLogger())
	if err := restarted.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	current, _ = restarted.Current()
	if current.Identity.Email != "new@example.com" {
		t.Error("updated identity did not persist")
	}
}

func TestUpdateIdentityInactive(t *testing.T) {
	store := NewStore(openRing(t, t.TempDir()), testLogger())
	if err := store.UpdateIdentity(alice()); err == nil {
		t.Error("expected error updating identity with no session")
	}
}

func TestObservePublishesChanges(t *testing.T) {
	store := NewStore(openRing(t, t.TempDir()), testLogger())
	stream := store.Observe()

	if err := store.Login("tok123", alice()); err != nil {
		t.Fatalf("login: %v", err)
	}

	select {
	case <-stream.Changes():
	default:
		t.Fatal("no change published on login")
	}
	change := stream.Next().(*Change)
	if change.Kind != ChangeLogin {
		t.Errorf("kind = %q, want %q", change.Kind, ChangeLogin)
	}
	if change.Session == nil || change.Session.Identity.Username != "alice" {
		t.Errorf("change session = %+v, want alice", change.Session)
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	change = stream.Next().(*Change)
	if change.Kind != ChangeLogout {
		t.Errorf("kind = %q, want %q", change.Kind, ChangeLogout)
	}
	if change.Session != nil {
		t.Error("logout change should carry no session")
	}
}

func TestExpireClearsAndPublishes(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(openRing(t, dir), testLogger())
	if err := store.Login("tok123", alice()); err != nil {
		t.Fatalf("login: %v", err)
	}
	stream := store.Observe()

	store.Expire()

	if store.Active() {
		t.Error("store still active after expire")
	}
	change := stream.Next().(*Change)
	if change.Kind != ChangeExpire {
		t.Errorf("kind = %q, want %q", change.Kind, ChangeExpire)
	}

	restarted := NewStore(openRing(t, dir), testLogger())
	if err := restarted.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restarted.Active() {
		t.Error("expired credentials survived restart")
	}

	// Expiring an inactive store is a no-op.
	store.Expire()
}

func TestExpiresAt(t *testing.T) {
	store := NewStore(openRing(t, t.TempDir()), testLogger())

	if _, ok := store.ExpiresAt(); ok {
		t.Error("inactive session should have no expiry")
	}

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": float64(exp.Unix()),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if err := store.Login(signed, alice()); err != nil {
		t.Fatalf("login: %v", err)
	}

	got, ok := store.ExpiresAt()
	if !ok {
		t.Fatal("expected expiry from token claims")
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %v, want %v", got, exp)
	}
	if store.Expired(time.Now()) {
		t.Error("token should not be expired yet")
	}
	if !store.Expired(exp.Add(time.Minute)) {
		t.Error("token should be expired after its exp claim")
	}
}

func TestOpaqueTokenHasNoExpiry(t *testing.T) {
	store := NewStore(openRing(t, t.TempDir()), testLogger())
	if err := store.Login("not-a-jwt", alice()); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, ok := store.ExpiresAt(); ok {
		t.Error("opaque token should yield no expiry")
	}
	if store.Expired(time.Now()) {
		t.Error("opaque token must never be considered expired")
	}
}
