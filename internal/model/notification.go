package model

// Notification belongs to a user. Type is a server-assigned tag such as
// "invite" or "invite_response"; RelatedID points at the originating record
// when the server knows it.
type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedID *int64 `json:"related_id"`
	Read      bool   `json:"read"`
	CreatedAt Time   `json:"created_at"`
}
