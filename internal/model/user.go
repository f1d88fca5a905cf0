package model

import "time"

// User owns projects. Email is unique across all users.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	Projects  []Project `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
