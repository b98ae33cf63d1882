package model

// InviteStatus is the lifecycle state of an invitation.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
)

// Invite as returned by the invites endpoints. InviteeEmail is set when the
// invite is sent; Invitee is filled in once the address matches a registered
// user.
type Invite struct {
	ID           int64        `json:"id"`
	EventID      int64        `json:"event_id"`
	EventTitle   string       `json:"event_title"`
	EventDate    Time         `json:"event_date"`
	Inviter      string       `json:"inviter"`
	InviteeEmail string       `json:"invitee_email"`
	Invitee      *string      `json:"invitee"`
	Status       InviteStatus `json:"status"`
	Message      string       `json:"message"`
	CreatedAt    Time         `json:"created_at"`
	RespondedAt  *Time        `json:"responded_at"`
}
