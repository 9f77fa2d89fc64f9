package domain

import "time"

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name              string `json:"name,omitempty"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	ConfirmedPassword string `json:"confirmed_password"`
}

type PasswordReset struct {
	Password          string `json:"password"`
	ConfirmedPassword string `json:"confirmed_password"`
}

// AuthResponse is returned by login, register and refresh alike.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        User   `json:"user"`
}

type Acknowledgement struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Session is the in-memory authentication state. AccessToken is non-empty
// only after a login, registration or refresh succeeded and nothing cleared it.
type Session struct {
	AccessToken string
	User        *User
	ExpiresAt   time.Time
}

func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

func SessionFromAuthResponse(resp AuthResponse, now time.Time) Session {
	user := resp.User
	session := Session{
		AccessToken: resp.AccessToken,
		User:        &user,
	}
	if resp.ExpiresIn > 0 {
		session.ExpiresAt = now.Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return session
}
