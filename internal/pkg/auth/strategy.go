package auth

import "time"

// Session carries the identity encoded into a token.
type Session struct {
	AdminID int64
	Role    string
}

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(adminID int64, role string) (string, error)
	ParseToken(token string) (*Session, error)
	Name() string
}

// Options tune token strategy behaviour.
type Options struct {
	TTL time.Duration
}
