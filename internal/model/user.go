package model

import "time"

// User is an authentication principal. The hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
