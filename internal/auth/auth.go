package auth

import (
	"time"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

const (
	ReasonInvalidCredentials ledger.Reason = "invalid_credentials"
	ReasonAlreadyLoggedIn    ledger.Reason = "already_logged_in"
)

// Account is a station login.
type Account struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"-"`
}

// Log records one granted login. At most one log exists per user per UTC
// day; a second attempt the same day is rejected.
type Log struct {
	ID        string    `bson:"id" json:"id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	IsGranted bool      `bson:"is_granted" json:"is_granted"`
}

// Session is the result of a granted login.
type Session struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
