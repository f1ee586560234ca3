package models

import "gorm.io/gorm"

// Reference data, administrator-managed.
type HealthCondition struct {
    gorm.Model
    Name string `gorm:"uniqueIndex;not null"`
}
