package user

import "time"

// User represents a registered account. Username is stored in its
// normalized form: trimmed of surrounding whitespace and lowercased.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
