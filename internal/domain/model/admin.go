package model

import "time"

// RoleAdmin is the only role allowed to call the back-office endpoints.
const RoleAdmin = "admin"

// Admin is a back-office operator account.
type Admin struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
