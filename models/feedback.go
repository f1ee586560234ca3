package models

import "gorm.io/gorm"

// Append-only; rows are never mutated after creation. CreatedAt from
// gorm.Model is the server-set submission timestamp.
type Feedback struct {
    gorm.Model
    Name    string `gorm:"not null"`
    Email   string `gorm:"not null"`
    Message string `gorm:"type:text;not null"`
    Rating  int    // 1–5
}
