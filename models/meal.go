package models

import "gorm.io/gorm"

// Allowed values for Meal.MealType.
var MealTypes = []string{"Breakfast", "Lunch", "Dinner"}

// Allowed values for Meal.DietSuitability and UserProfile diet preferences.
var DietChoices = []string{"Vegan", "Vegetarian", "Non-Vegetarian"}

// One catalog entry (recipe). Meals are reference data: there is no
// public creation endpoint, administrators insert them directly.
type Meal struct {
    gorm.Model
    Name             string            `gorm:"uniqueIndex;not null"`
    MealType         string            `gorm:"type:varchar(20);not null"` // “Breakfast”|“Lunch”|“Dinner”
    DietSuitability  string            `gorm:"type:varchar(20);not null"`
    HealthConditions []HealthCondition `gorm:"many2many:meal_health_conditions"`
    Ingredients      string            `gorm:"type:text"`
    Instructions     string            `gorm:"type:text"`
    TotalCost        int
    Calories         string
    Fat              string
    Protein          string
    Carbohydrates    string
}
