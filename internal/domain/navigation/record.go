package navigation

import "time"

// Record is the last command a user invoked. There is at most one per user.
type Record struct {
	UserID    int64
	Command   Command
	UpdatedAt time.Time
}
