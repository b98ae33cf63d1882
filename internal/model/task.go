package model

// Task belongs to exactly one event.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	DueDate     *Time  `json:"due_date"`
	CreatedAt   Time   `json:"created_at"`
	EventID     int64  `json:"event_id"`
}

// TaskDraft is the request body for creating a task under an event.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     *Time  `json:"due_date,omitempty"`
}

// TaskPatch is the request body for updating a task. Nil fields are left
// unchanged by the server.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	DueDate     *Time   `json:"due_date,omitempty"`
}
