package model

// Event as returned by the events endpoints. Creator is the owning user's
// username; TasksCount and RSVPsCount are server-derived.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        Time   `json:"date"`
	Location    string `json:"location"`
	CreatedAt   Time   `json:"created_at"`
	Creator     string `json:"creator"`
	TasksCount  int    `json:"tasks_count"`
	RSVPsCount  int    `json:"rsvps_count"`
}

// EventDraft is the request body for creating or updating an event.
type EventDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        Time   `json:"date"`
	Location    string `json:"location,omitempty"`
}
