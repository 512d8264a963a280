package response

import (
	"time"
)

// AuthSession carries what the login handler needs to set the session cookie.
type AuthSession struct {
	UserID    int64
	Username  string
	Token     string
	ExpiresAt time.Time
}
