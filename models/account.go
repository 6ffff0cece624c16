package models

import "time"

type Account struct {
	// ? maybe change to uuid.UUID
	ID        string     `json:"id"`
	SN        string     `json:"-"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// internal fields
	Password string `json:"-"`
}
