package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/calloway/gather/internal/model"
)

// inboxState is a minimal stateful fake of the notification and invite
// endpoints.
type inboxState struct {
	notifications []model.Notification
	invites       []model.Invite
}

func (st *inboxState) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rsvps/notifications", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, st.notifications)
	})
	mux.HandleFunc("PUT /rsvps/notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		for i := range st.notifications {
			if fmt.Sprint(st.notifications[i].ID) == r.PathValue("id") {
				st.notifications[i].Read = true
			}
		}
		writeJSON(t, w, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("GET /invites", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, st.invites)
	})
	mux.HandleFunc("POST /invites/{id}/respond", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status model.InviteStatus `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		for i := range st.invites {
			if fmt.Sprint(st.invites[i].ID) == r.PathValue("id") {
				st.invites[i].Status = req.Status
				writeJSON(t, w, st.invites[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /invites/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]string{"message": "Invite cancelled successfully"})
	})
	return mux
}

func newInboxState() *inboxState {
	return &inboxState{
		notifications: []model.Notification{
			{ID: 1, Title: "bob accepted your invite", Read: false},
			{ID: 2, Title: "welcome", Read: true},
		},
		invites: []model.Invite{
			{ID: 5, EventTitle: "Launch", Inviter: "alice", Status: model.InvitePending},
			{ID: 6, EventTitle: "Retro", Inviter: "bob", Status: model.InviteDeclined},
		},
	}
}

func TestInboxLoadAndBadge(t *testing.T) {
	st := newInboxState()
	s := NewInbox(newTestClient(t, st.handler(t)))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if s.Phase() != Ready {
		t.Fatalf("phase = %s, want ready", s.Phase())
	}
	if got := s.Unread(); got != 1 {
		t.Errorf("unread = %d, want 1", got)
	}
	if got := len(s.PendingInvites()); got != 1 {
		t.Errorf("pending invites = %d, want 1", got)
	}
}

func TestInboxFailFast(t *testing.T) {
	st := newInboxState()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rsvps/notifications", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, st.notifications)
	})
	mux.HandleFunc("GET /invites", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	s := NewInbox(newTestClient(t, mux))
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if s.Phase() != Failed {
		t.Errorf("phase = %s, want failed", s.Phase())
	}
	if s.Notifications != nil || s.Invites != nil {
		t.Error("failed load must expose no partial data")
	}
}

func TestMarkReadFlipsLocalEntry(t *testing.T) {
	st := newInboxState()
	s := NewInbox(newTestClient(t, st.handler(t)))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.MarkRead(context.Background(), 1); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if s.Unread() != 0 {
		t.Errorf("unread = %d, want 0", s.Unread())
	}
}

func TestRespondRefreshesLists(t *testing.T) {
	st := newInboxState()
	s := NewInbox(newTestClient(t, st.handler(t)))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.Respond(context.Background(), 5, model.InviteAccepted, "see you there"); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if got := len(s.PendingInvites()); got != 0 {
		t.Errorf("pending invites = %d, want 0 after accepting", got)
	}

	if err := s.Respond(context.Background(), 6, "maybe", ""); err == nil {
		t.Error("expected validation error for invalid response status")
	}
}

func TestCancelRemovesInvite(t *testing.T) {
	st := newInboxState()
	s := NewInbox(newTestClient(t, st.handler(t)))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.Cancel(context.Background(), 5); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(s.Invites) != 1 {
		t.Errorf("invites = %d, want 1 after cancel", len(s.Invites))
	}
	for _, invite := range s.Invites {
		if invite.ID == 5 {
			t.Error("cancelled invite still present")
		}
	}
}
