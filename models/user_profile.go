package models

import "gorm.io/gorm"

// Allowed values for UserProfile.FoodAllergies.
var FoodAllergyChoices = []string{
    "lactose_intolerance",
    "gluten_intolerance",
    "fructose_intolerance",
    "histamine_intolerance",
}

// Dietary profile, exactly one per user. Created on the first profile
// submission and fully overwritten on every subsequent one.
type UserProfile struct {
    gorm.Model
    UserID           uint              `gorm:"uniqueIndex;not null"` // FK → users.id
    Bio              string            `gorm:"type:text"`
    ProfileImage     string
    Name             string            `gorm:"not null"`
    Age              int
    Height           float64           // centimeters
    Weight           float64           // kilograms
    DietPref         string            // comma-joined multi-select
    FoodAllergies    string
    HealthConditions []HealthCondition `gorm:"many2many:user_profile_health_conditions"`
}
