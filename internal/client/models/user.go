// Package models defines the data types exchanged with the backend services
// and persisted in the local store.
package models

// User is the account identity returned by the auth service.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// AuthResponse is returned by register and login. The token is an opaque
// session token, valid server-side for 30 days.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
