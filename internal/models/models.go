package models

import "time"

// User is the single admin account. It is seeded at startup and never
// deleted by the application.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:200;not null"`
}

// PortfolioItem is one gallery entry. ImageFile holds a filename under the
// upload directory, or "default.jpg" when the admin never uploaded a custom
// image.
type PortfolioItem struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"size:50"`
	ImageFile   string    `gorm:"size:100;not null"`
	DateCreated time.Time `gorm:"index"`
	IsFeatured  bool      `gorm:"default:false"`
}

// Feedback is a visitor submission. IsRead is persisted for a future
// "mark as read" action; nothing sets it yet.
type Feedback struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null"`
	Email         string    `gorm:"size:100"`
	Message       string    `gorm:"type:text;not null"`
	Rating        *int      // 1-5 stars, nil when the visitor skipped it
	DateSubmitted time.Time `gorm:"index"`
	IsRead        bool      `gorm:"default:false"`
}
