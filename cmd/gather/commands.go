package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/model"
	"github.com/calloway/gather/internal/screen"
	"github.com/calloway/gather/internal/session"
)

const usage = `usage: gather <command> [flags]

account
  register        create an account and sign in
  login           sign in
  logout          sign out
  whoami          show the active session
  profile         show your profile
  update-profile  change username or email
  passwd          change your password
  delete-account  permanently delete your account

events
  events          list events (-tab upcoming|past|invited)
  event           show one event with tasks and RSVPs (-id)
  create-event    create an event
  update-event    edit an event you own (-id ...)
  delete-event    delete an event you own (-id -yes)

tasks & rsvps
  task            add, done or rm a task (-event -id ...)
  rsvp            respond to an event (-event -status [-message])

invites & notifications
  invite          invite someone to your event (-event -email [-message])
  invites         list invites you received (-sent for ones you sent)
  respond         accept or decline an invite (-id -status [-message])
  cancel-invite   withdraw a pending invite (-id)
  inbox           notifications and pending invites
  read            mark a notification read (-id)

assistant
  plan            describe | tasks | apply | rsvp-message | timing | chat
`

type app struct {
	client   *api.Client
	sessions *session.Store
	out      io.Writer
	in       io.Reader

	reader *bufio.Reader
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.sessions.Logout()
	case "whoami":
		return a.whoami()
	case "profile":
		return a.profile(ctx)
	case "update-profile":
		return a.updateProfile(ctx, rest)
	case "passwd":
		return a.changePassword(ctx, rest)
	case "delete-account":
		return a.deleteAccount(ctx)
	case "events":
		return a.events(ctx, rest)
	case "event":
		return a.eventDetail(ctx, rest)
	case "create-event":
		return a.createEvent(ctx, rest)
	case "update-event":
		return a.updateEvent(ctx, rest)
	case "delete-event":
		return a.deleteEvent(ctx, rest)
	case "task":
		return a.task(ctx, rest)
	case "rsvp":
		return a.rsvp(ctx, rest)
	case "invite":
		return a.invite(ctx, rest)
	case "invites":
		return a.invites(ctx, rest)
	case "respond":
		return a.respond(ctx, rest)
	case "cancel-invite":
		return a.cancelInvite(ctx, rest)
	case "inbox", "notifications":
		return a.inbox(ctx)
	case "read":
		return a.markRead(ctx, rest)
	case "plan":
		return a.plan(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try: gather help)", cmd)
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" {
		return fmt.Errorf("-username and -email are required")
	}

	pw, err := a.promptIfEmpty(*password, "Password: ")
	if err != nil {
		return err
	}

	resp, err := a.client.Auth.Register(ctx, *username, *email, pw)
	if err != nil {
		return err
	}
	if err := a.sessions.Login(resp.AccessToken, resp.User); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s.\n", resp.User.Username)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	pw, err := a.promptIfEmpty(*password, "Password: ")
	if err != nil {
		return err
	}

	resp, err := a.client.Auth.Login(ctx, *username, pw)
	if err != nil {
		return err
	}
	if err := a.sessions.Login(resp.AccessToken, resp.User); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s.\n", resp.User.Username)
	return nil
}

func (a *app) whoami() error {
	current, ok := a.sessions.Current()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", current.Identity.Username, current.Identity.Email, current.Identity.ID)
	if exp, ok := a.sessions.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "Token expires %s.\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

func (a *app) profile(ctx context.Context) error {
	s := screen.NewProfile(a.client, a.sessions)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	fmt.Fprintf(a.out, "%s <%s>\nMember since %s\n",
		s.User.Username, s.User.Email, s.User.CreatedAt.Format("January 2, 2006"))
	return nil
}

func (a *app) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ContinueOnError)
	username := fs.String("username", "", "new username")
	email := fs.String("email", "", "new email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" && *email == "" {
		return fmt.Errorf("nothing to update")
	}

	var patch api.ProfilePatch
	if *username != "" {
		patch.Username = username
	}
	if *email != "" {
		patch.Email = email
	}

	s := screen.NewProfile(a.client, a.sessions)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	user, err := s.Update(ctx, patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Profile updated: %s <%s>\n", user.Username, user.Email)
	return nil
}

func (a *app) changePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("passwd", flag.ContinueOnError)
	current := fs.String("current", "", "current password (prompted when empty)")
	replacement := fs.String("new", "", "new password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cur, err := a.promptIfEmpty(*current, "Current password: ")
	if err != nil {
		return err
	}
	next, err := a.promptIfEmpty(*replacement, "New password: ")
	if err != nil {
		return err
	}

	s := screen.NewProfile(a.client, a.sessions)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}
	if err := s.ChangePassword(ctx, cur, next); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *app) deleteAccount(ctx context.Context) error {
	fmt.Fprintf(a.out, "This permanently deletes your account, events, tasks and RSVPs.\nType %s to confirm: ", screen.DeleteConfirmation)
	confirmation, err := a.readLine()
	if err != nil {
		return err
	}

	s := screen.NewProfile(a.client, a.sessions)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}
	if err := s.DeleteAccount(ctx, confirmation); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Your account has been deleted.")
	return nil
}

func (a *app) events(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	tab := fs.String("tab", string(screen.TabUpcoming), "upcoming, past or invited")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := screen.NewEventList(a.client, screen.Tab(*tab))
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	if len(s.Events) == 0 {
		fmt.Fprintf(a.out, "No %s events.\n", s.Tab())
		return nil
	}
	for _, event := range s.Events {
		fmt.Fprintf(a.out, "#%d  %s  %s  %s  (%d tasks, %d rsvps)\n",
			event.ID, event.Date.Format("2006-01-02 15:04"), event.Title, event.Location,
			event.TasksCount, event.RSVPsCount)
	}
	return nil
}

func (a *app) eventDetail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("event", flag.ContinueOnError)
	id := fs.Int64("id", 0, "event id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	s := screen.NewEventDetail(a.client, *id)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	a.renderDetail(s)
	return nil
}

func (a *app) renderDetail(s *screen.EventDetail) {
	event := s.Event
	fmt.Fprintf(a.out, "%s\n%s at %s\nCreated by %s\n\n%s\n",
		event.Title, event.Date.Format("Monday, January 2, 2006"), event.Location,
		event.Creator, event.Description)

	fmt.Fprintf(a.out, "\nTasks (%d)\n", len(s.Tasks))
	for _, task := range s.Tasks {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] #%d %s\n", mark, task.ID, task.Title)
	}

	fmt.Fprintf(a.out, "\nRSVPs (%d)\n", len(s.RSVPs))
	for _, rsvp := range s.RSVPs {
		fmt.Fprintf(a.out, "  %s: %s", rsvp.User, rsvp.Status)
		if rsvp.Message != "" {
			fmt.Fprintf(a.out, " — %s", rsvp.Message)
		}
		fmt.Fprintln(a.out)
	}
}

func (a *app) createEvent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-event", flag.ContinueOnError)
	title := fs.String("title", "", "event title")
	date := fs.String("date", "", "date-time, e.g. 2025-01-01T10:00")
	location := fs.String("location", "", "location")
	description := fs.String("description", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *date == "" {
		return fmt.Errorf("-title and -date are required")
	}

	when, err := parseWhen(*date)
	if err != nil {
		return err
	}

	event, err := a.client.Events.Create(ctx, model.EventDraft{
		Title:       *title,
		Description: *description,
		Date:        model.NewTime(when),
		Location:    *location,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created event #%d %q.\n", event.ID, event.Title)
	return nil
}

func (a *app) updateEvent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-event", flag.ContinueOnError)
	id := fs.Int64("id", 0, "event id")
	title := fs.String("title", "", "new title")
	date := fs.String("date", "", "new date-time")
	location := fs.String("location", "", "new location")
	description := fs.String("description", "", "new description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	if *title == "" && *date == "" && *location == "" && *description == "" {
		return fmt.Errorf("nothing to update")
	}

	// The server expects the full event body, so start from the current one.
	current, err := a.client.Events.Get(ctx, *id)
	if err != nil {
		return err
	}
	draft := model.EventDraft{
		Title:       current.Title,
		Description: current.Description,
		Date:        current.Date,
		Location:    current.Location,
	}
	if *title != "" {
		draft.Title = *title
	}
	if *description != "" {
		draft.Description = *description
	}
	if *location != "" {
		draft.Location = *location
	}
	if *date != "" {
		when, err := parseWhen(*date)
		if err != nil {
			return err
		}
		draft.Date = model.NewTime(when)
	}

	event, err := a.client.Events.Update(ctx, *id, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated event #%d %q.\n", event.ID, event.Title)
	return nil
}

func (a *app) deleteEvent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-event", flag.ContinueOnError)
	id := fs.Int64("id", 0, "event id")
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	if !*yes {
		fmt.Fprintf(a.out, "Delete event #%d and all its tasks and RSVPs? [y/N] ", *id)
		answer, err := a.readLine()
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}

	if err := a.client.Events.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted event #%d.\n", *id)
	return nil
}

func (a *app) task(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gather task add|done|rm [flags]")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("task "+sub, flag.ContinueOnError)
	eventID := fs.Int64("event", 0, "event id")
	id := fs.Int64("id", 0, "task id")
	title := fs.String("title", "", "task title")
	due := fs.String("due", "", "due date-time")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if *eventID == 0 {
		return fmt.Errorf("-event is required")
	}

	s := screen.NewEventDetail(a.client, *eventID)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	switch sub {
	case "add":
		draft := model.TaskDraft{Title: *title}
		if *due != "" {
			when, err := parseWhen(*due)
			if err != nil {
				return err
			}
			t := model.NewTime(when)
			draft.DueDate = &t
		}
		task, err := s.AddTask(ctx, draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added task #%d %q (%d tasks).\n", task.ID, task.Title, s.Event.TasksCount)
	case "done":
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		task, err := s.CompleteTask(ctx, *id, true)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Completed task #%d %q.\n", task.ID, task.Title)
	case "rm":
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		fmt.Fprintf(a.out, "Delete task #%d? [y/N] ", *id)
		answer, err := a.readLine()
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
		if err := s.RemoveTask(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted task #%d.\n", *id)
	default:
		return fmt.Errorf("unknown task subcommand %q", sub)
	}
	return nil
}

func (a *app) rsvp(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rsvp", flag.ContinueOnError)
	eventID := fs.Int64("event", 0, "event id")
	status := fs.String("status", "", `"Going", "Maybe" or "Not Going"`)
	message := fs.String("message", "", "optional message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == 0 || *status == "" {
		return fmt.Errorf("-event and -status are required")
	}

	s := screen.NewEventDetail(a.client, *eventID)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	rsvp, err := s.SubmitRSVP(ctx, model.RSVPStatus(*status), *message)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "RSVP recorded: %s (%d total).\n", rsvp.Status, s.Event.RSVPsCount)
	return nil
}

func (a *app) invite(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invite", flag.ContinueOnError)
	eventID := fs.Int64("event", 0, "event id")
	email := fs.String("email", "", "invitee email address")
	message := fs.String("message", "", "personal message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == 0 || *email == "" {
		return fmt.Errorf("-event and -email are required")
	}

	s := screen.NewEventDetail(a.client, *eventID)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	invite, err := s.SendInvite(ctx, *email, *message)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Invited %s to %q.\n", invite.InviteeEmail, s.Event.Title)
	return nil
}

func (a *app) invites(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invites", flag.ContinueOnError)
	sent := fs.Bool("sent", false, "list invites you sent instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		invites []model.Invite
		err     error
	)
	if *sent {
		invites, err = a.client.Invites.Sent(ctx)
	} else {
		invites, err = a.client.Invites.List(ctx)
	}
	if err != nil {
		return err
	}

	if len(invites) == 0 {
		fmt.Fprintln(a.out, "No invites.")
		return nil
	}
	for _, invite := range invites {
		fmt.Fprintf(a.out, "#%d  %s  %s  from %s  [%s]\n",
			invite.ID, invite.EventDate.Format("2006-01-02 15:04"), invite.EventTitle,
			invite.Inviter, invite.Status)
	}
	return nil
}

func (a *app) respond(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("respond", flag.ContinueOnError)
	id := fs.Int64("id", 0, "invite id")
	status := fs.String("status", "", "accepted or declined")
	message := fs.String("message", "", "optional message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 || *status == "" {
		return fmt.Errorf("-id and -status are required")
	}

	s := screen.NewInbox(a.client)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}
	if err := s.Respond(ctx, *id, model.InviteStatus(*status), *message); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Invite #%d %s.\n", *id, *status)
	return nil
}

func (a *app) cancelInvite(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel-invite", flag.ContinueOnError)
	id := fs.Int64("id", 0, "invite id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	s := screen.NewInbox(a.client)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}
	if err := s.Cancel(ctx, *id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Invite #%d cancelled.\n", *id)
	return nil
}

func (a *app) inbox(ctx context.Context) error {
	s := screen.NewInbox(a.client)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}

	pending := s.PendingInvites()
	fmt.Fprintf(a.out, "Event invitations (%d)\n", len(pending))
	for _, invite := range pending {
		fmt.Fprintf(a.out, "  #%d %s on %s, invited by %s\n",
			invite.ID, invite.EventTitle, invite.EventDate.Format("2006-01-02 15:04"), invite.Inviter)
		if invite.Message != "" {
			fmt.Fprintf(a.out, "      %q\n", invite.Message)
		}
	}

	fmt.Fprintf(a.out, "\nNotifications (%d, %d unread)\n", len(s.Notifications), s.Unread())
	for _, notification := range s.Notifications {
		mark := " "
		if !notification.Read {
			mark = "*"
		}
		fmt.Fprintf(a.out, "  %s #%d %s\n", mark, notification.ID, notification.Title)
	}
	return nil
}

func (a *app) markRead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("read", flag.ContinueOnError)
	id := fs.Int64("id", 0, "notification id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	s := screen.NewInbox(a.client)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%s", s.Message())
	}
	if err := s.MarkRead(ctx, *id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Notification #%d marked read (%d unread).\n", *id, s.Unread())
	return nil
}

func (a *app) plan(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gather plan describe|tasks|apply|rsvp-message|timing|chat [flags]")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("plan "+sub, flag.ContinueOnError)
	title := fs.String("title", "", "event title")
	eventType := fs.String("type", "", "event type, e.g. birthday, conference")
	location := fs.String("location", "", "location")
	date := fs.String("date", "", "date-time")
	attendees := fs.Int("attendees", 0, "expected attendee count")
	eventID := fs.Int64("event", 0, "event id")
	status := fs.String("status", "", "rsvp status for rsvp-message")
	message := fs.String("message", "", "chat message or rsvp context")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	planner := screen.NewPlanner(a.client)
	switch sub {
	case "describe":
		description, err := planner.GenerateDescription(ctx, model.DescriptionRequest{
			Title:     *title,
			EventType: *eventType,
			Location:  *location,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, description)
	case "tasks":
		tasks, err := planner.SuggestTasks(ctx, model.SuggestTasksRequest{
			Title:         *title,
			EventType:     *eventType,
			Date:          *date,
			AttendeeCount: *attendees,
		})
		if err != nil {
			return err
		}
		for _, task := range tasks {
			fmt.Fprintf(a.out, "  - %s\n", task)
		}
	case "apply":
		if *eventID == 0 {
			return fmt.Errorf("-event is required")
		}
		suggested, err := planner.SuggestTasks(ctx, model.SuggestTasksRequest{
			Title:     *title,
			EventType: *eventType,
			Date:      *date,
		})
		if err != nil {
			return err
		}
		created, err := planner.CreateSuggestedTasks(ctx, *eventID, suggested)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created %d suggested tasks.\n", len(created))
	case "rsvp-message":
		reply, err := planner.GenerateRSVPMessage(ctx, model.RSVPMessageRequest{
			EventTitle:  *title,
			Status:      model.RSVPStatus(*status),
			UserContext: *message,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, reply)
	case "timing":
		timing, err := planner.OptimizeTiming(ctx, model.TimingDetails{
			Title:         *title,
			Date:          *date,
			EventType:     *eventType,
			AttendeeCount: *attendees,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Start time: %s\nDuration: %s\n", timing.StartTimeSuggestion, timing.DurationSuggestion)
		for _, c := range timing.Considerations {
			fmt.Fprintf(a.out, "  - %s\n", c)
		}
		for _, tip := range timing.ScheduleTips {
			fmt.Fprintf(a.out, "  - %s\n", tip)
		}
	case "chat":
		if *message == "" {
			return fmt.Errorf("-message is required")
		}
		var eid *int64
		if *eventID != 0 {
			eid = eventID
		}
		reply, err := planner.Chat(ctx, *message, eid)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, reply)
	default:
		return fmt.Errorf("unknown plan subcommand %q", sub)
	}
	return nil
}

func (a *app) promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(a.out, prompt)
	return a.readLine()
}

// readLine shares one buffered reader across prompts so a two-prompt flow
// does not lose lines already buffered from piped input.
func (a *app) readLine() (string, error) {
	if a.reader == nil {
		a.reader = bufio.NewReader(a.in)
	}
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseWhen accepts the datetime shapes users actually type.
func parseWhen(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want 2006-01-02T15:04)", s)
}
