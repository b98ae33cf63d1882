package model

// User is the identity record returned by the auth and profile endpoints.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt Time   `json:"created_at"`
}

// AuthResponse is the body of a successful login or registration.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
