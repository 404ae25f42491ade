package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(80);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(128);not null"`
}

type Guess struct {
	ID        uint      `gorm:"primaryKey"`
	ImageID   int       `gorm:"not null"`
	GuessText string    `gorm:"size:255;not null"`
	Reasoning string    `gorm:"type:text"`
	UserID    uint      `gorm:"not null;index"` // no FK constraint, dangling references are tolerated
	IsCorrect bool      `gorm:"not null;default:false"`
	Timestamp time.Time `gorm:"not null"`
}
