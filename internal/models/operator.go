package models

import "time"

// Operator is a person who signs in to infrakeeper. Notes record the
// operator that created them.
type Operator struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
