package entity

import "time"

// Session is the authenticated identity carried by a validated token.
// It is derived, never persisted: it exists only for the duration of one
// request's authorization check.
type Session struct {
	AccountID int
	ExpiresAt time.Time
}
