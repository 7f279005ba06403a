package models

import "time"

// Session is the authenticated principal passed explicitly to every client
// component that needs the current user. It is created on successful sign-in
// and destroyed on logout.
type Session struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the session carries an authenticated principal.
func (s Session) Valid() bool {
	return s.UserID != 0 && s.Token != ""
}
