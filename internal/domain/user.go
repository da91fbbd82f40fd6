package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Authorized bool
	Score      Score
	CreatedAt  time.Time
}
