package model

// RSVPStatus is the closed set of RSVP responses the server accepts.
type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "Going"
	RSVPMaybe    RSVPStatus = "Maybe"
	RSVPNotGoing RSVPStatus = "Not Going"
)

// Valid reports whether s is one of the accepted statuses.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}

// RSVP as returned by the rsvps endpoints. User is the responding user's
// username and Event the event title; the server keeps at most one RSVP per
// (event, user) pair.
type RSVP struct {
	ID        int64      `json:"id"`
	User      string     `json:"user"`
	Event     string     `json:"event"`
	Status    RSVPStatus `json:"status"`
	Message   string     `json:"message"`
	CreatedAt Time       `json:"created_at"`
}
