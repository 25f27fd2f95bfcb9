package domain

import "time"

// AuthEventKind classifies entries of the authentication audit trail.
type AuthEventKind string

const (
	EventUserRegistered AuthEventKind = "user_registered"
	EventLoginOK        AuthEventKind = "login_ok"
	EventLoginFailed    AuthEventKind = "login_failed"
)

// AuthEvent is a single audit-trail entry. Recorded asynchronously; losing one
// never fails the request that produced it.
type AuthEvent struct {
	Email     string
	Kind      AuthEventKind
	RemoteIP  string
	Timestamp time.Time
}
