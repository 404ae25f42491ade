package core

import "time"

type RegisterMessage struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GuessMessage struct {
	ImageID   int    `json:"image_id"`
	GuessText string `json:"guess_text"`
	Reasoning string `json:"reasoning"`
	UserID    uint   `json:"user_id"`
	IsCorrect bool   `json:"is_correct"`
}

// UserRecord is the public projection of a user. The password hash never
// leaves the core package.
type UserRecord struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type GuessRecord struct {
	ID        uint      `json:"id"`
	ImageID   int       `json:"image_id"`
	GuessText string    `json:"guess_text"`
	Reasoning string    `json:"reasoning"`
	UserID    uint      `json:"user_id"`
	IsCorrect bool      `json:"is_correct"`
	Timestamp time.Time `json:"timestamp"`
}

type LeaderboardEntry struct {
	Username  string `json:"username"`
	ImageID   int    `json:"image_id"`
	Guess     string `json:"guess"`
	Reasoning string `json:"reasoning"`
	IsCorrect bool   `json:"is_correct"`
	Timestamp string `json:"timestamp"`
}
