package model

import "time"

// User is the principal resolved for an authenticated request.
type User struct {
	ID        int64
	Username  string // login username, unique and case-sensitive
	IsAdmin   bool   // stored as 0/1 in SQL
	CreatedAt time.Time

	// PasswordHash is the bcrypt digest. It is compared, never decoded,
	// and never serialized into responses or session payloads.
	PasswordHash string
}
