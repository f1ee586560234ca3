package models

import (
    "time"

    "gorm.io/gorm"
)

// Server-side session record. The client holds a JWT whose sid claim
// points at one of these rows; logout deletes the row, which kills the
// token even before its expiry.
type Session struct {
    gorm.Model
    Token     string `gorm:"uniqueIndex;not null"`
    UserID    uint   `gorm:"index;not null"`
    ExpiresAt time.Time
}
