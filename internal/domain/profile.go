package domain

import "time"

// Profile records which backend a local profile talks to and who last
// signed in with it. Credentials are never part of a profile.
type Profile struct {
	Name        string    `json:"name"`
	BaseURL     string    `json:"base_url"`
	UserEmail   string    `json:"user_email,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	LastLoginAt time.Time `json:"last_login_at"`
}
