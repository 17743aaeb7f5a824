package user

import "time"

// User represents a registered account holder.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	Phone        string
	CreatedAt    time.Time
}
