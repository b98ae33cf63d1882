package screen

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/keyring"
	"github.com/calloway/gather/internal/model"
	"github.com/calloway/gather/internal/session"
)

// fakeAPI is a stateful in-memory rendition of the event-planning backend,
// enough for a full register → create → task → rsvp pass.
type fakeAPI struct {
	user  model.User
	token string

	nextID int64
	events map[int64]*model.Event
	tasks  map[int64][]model.Task
	rsvps  map[int64][]model.RSVP
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		nextID: 1,
		events: make(map[int64]*model.Event),
		tasks:  make(map[int64][]model.Task),
		rsvps:  make(map[int64][]model.RSVP),
	}
}

func (f *fakeAPI) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+f.token
}

func (f *fakeAPI) eventID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id
}

func (f *fakeAPI) view(id int64) model.Event {
	event := *f.events[id]
	event.TasksCount = len(f.tasks[id])
	event.RSVPsCount = len(f.rsvps[id])
	return event
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		f.user = model.User{ID: f.id(), Username: req.Username, Email: req.Email, CreatedAt: model.NewTime(time.Now())}
		f.token = "tok123"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.AuthResponse{AccessToken: f.token, User: f.user})
	})

	authed := func(fn http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !f.authorized(r) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Missing or invalid token"})
				return
			}
			fn(w, r)
		}
	}

	mux.HandleFunc("GET /events", authed(func(w http.ResponseWriter, r *http.Request) {
		list := []model.Event{}
		for id := range f.events {
			list = append(list, f.view(id))
		}
		json.NewEncoder(w).Encode(list)
	}))
	mux.HandleFunc("POST /events", authed(func(w http.ResponseWriter, r *http.Request) {
		var draft model.EventDraft
		json.NewDecoder(r.Body).Decode(&draft)
		event := &model.Event{
			ID:       f.id(),
			Title:    draft.Title,
			Date:     draft.Date,
			Location: draft.Location,
			Creator:  f.user.Username,
		}
		f.events[event.ID] = event
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(f.view(event.ID))
	}))
	mux.HandleFunc("GET /events/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.view(f.eventID(r)))
	}))

	mux.HandleFunc("GET /tasks/event/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		tasks := f.tasks[f.eventID(r)]
		if tasks == nil {
			tasks = []model.Task{}
		}
		json.NewEncoder(w).Encode(tasks)
	}))
	mux.HandleFunc("POST /tasks/event/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		eventID := f.eventID(r)
		var draft model.TaskDraft
		json.NewDecoder(r.Body).Decode(&draft)
		task := model.Task{ID: f.id(), Title: draft.Title, EventID: eventID}
		f.tasks[eventID] = append(f.tasks[eventID], task)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(task)
	}))

	mux.HandleFunc("GET /rsvps/event/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		rsvps := f.rsvps[f.eventID(r)]
		if rsvps == nil {
			rsvps = []model.RSVP{}
		}
		json.NewEncoder(w).Encode(rsvps)
	}))
	mux.HandleFunc("POST /rsvps/event/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		eventID := f.eventID(r)
		var req struct {
			Status  model.RSVPStatus `json:"status"`
			Message string           `json:"message"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		rsvp := model.RSVP{ID: f.id(), User: f.user.Username, Status: req.Status, Message: req.Message}
		existing := f.rsvps[eventID]
		replaced := false
		for i := range existing {
			if existing[i].User == rsvp.User {
				existing[i] = rsvp
				replaced = true
			}
		}
		if !replaced {
			f.rsvps[eventID] = append(existing, rsvp)
		}
		json.NewEncoder(w).Encode(rsvp)
	}))

	return mux
}

func TestRegisterCreateTaskRSVPScenario(t *testing.T) {
	fake := newFakeAPI()
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	dir := t.TempDir()
	ring, err := keyring.Open(filepath.Join(dir, "keyring.db"), filepath.Join(dir, "keyring.secret"))
	if err != nil {
		t.Fatalf("open keyring: %v", err)
	}
	defer ring.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewStore(ring, logger)
	client := api.New(server.URL, sessions, logger)
	ctx := context.Background()

	// Register alice and start a session with the returned credentials.
	resp, err := client.Auth.Register(ctx, "alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.AccessToken != "tok123" || resp.User.Username != "alice" {
		t.Fatalf("auth response = %+v", resp)
	}
	if err := sessions.Login(resp.AccessToken, resp.User); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Create the event and confirm the list shows it with zero counts.
	list := NewEventList(client, TabUpcoming)
	if err := list.Load(ctx); err != nil {
		t.Fatalf("load list: %v", err)
	}
	event, err := list.CreateEvent(ctx, model.EventDraft{
		Title: "Launch",
		Date:  model.NewTime(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	if err := list.Load(ctx); err != nil {
		t.Fatalf("reload list: %v", err)
	}
	if len(list.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(list.Events))
	}
	if list.Events[0].TasksCount != 0 || list.Events[0].RSVPsCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", list.Events[0].TasksCount, list.Events[0].RSVPsCount)
	}

	// Add a task; the event's task count becomes 1.
	detail := NewEventDetail(client, event.ID)
	if err := detail.Load(ctx); err != nil {
		t.Fatalf("load detail: %v", err)
	}
	if _, err := detail.AddTask(ctx, model.TaskDraft{Title: "Book venue"}); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if detail.Event.TasksCount != 1 {
		t.Errorf("tasks_count = %d, want 1", detail.Event.TasksCount)
	}

	// RSVP as alice; the rsvp count becomes 1 with status Going.
	if _, err := detail.SubmitRSVP(ctx, model.RSVPGoing, ""); err != nil {
		t.Fatalf("rsvp: %v", err)
	}
	if detail.Event.RSVPsCount != 1 {
		t.Errorf("rsvps_count = %d, want 1", detail.Event.RSVPsCount)
	}
	if len(detail.RSVPs) != 1 || detail.RSVPs[0].Status != model.RSVPGoing {
		t.Errorf("rsvps = %+v, want one Going entry", detail.RSVPs)
	}

	// The server confirms both counts on a fresh fetch.
	if err := detail.Load(ctx); err != nil {
		t.Fatalf("reload detail: %v", err)
	}
	if detail.Event.TasksCount != 1 || detail.Event.RSVPsCount != 1 {
		t.Errorf("server counts = %d/%d, want 1/1", detail.Event.TasksCount, detail.Event.RSVPsCount)
	}

	// A restart restores the same session and keeps requests authorized.
	ring2, err := keyring.Open(filepath.Join(dir, "keyring.db"), filepath.Join(dir, "keyring.secret"))
	if err != nil {
		t.Fatalf("reopen keyring: %v", err)
	}
	defer ring2.Close()
	restored := session.NewStore(ring2, logger)
	if err := restored.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	client2 := api.New(server.URL, restored, logger)

	list2 := NewEventList(client2, TabUpcoming)
	if err := list2.Load(ctx); err != nil {
		t.Fatalf("load after restart: %v", err)
	}
	if len(list2.Events) != 1 {
		t.Errorf("events after restart = %d, want 1", len(list2.Events))
	}
}
