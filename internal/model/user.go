package model

import "time"

// User is the stored credential record. The password hash never leaves the
// server; PublicUser is the shape handlers return.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// Identity is the request-scoped result of a verified token. It lives in the
// request context between the auth middleware and the handler.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
