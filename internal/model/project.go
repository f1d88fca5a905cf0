package model

import "time"

// Project groups tasks under a single owning user.
type Project struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Description string
	CreatedAt   time.Time
	Tasks       []Task `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
