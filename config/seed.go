package config

import (
	"github.com/PoojaSancheti/Low-PocEat/models"

	"gorm.io/gorm"
)

// Baseline health conditions so a fresh deployment has filter options.
// Administrators may add more rows; existing names are left untouched.
var defaultHealthConditions = []string{
	"Diabetes",
	"Hypertension",
	"High Cholesterol",
	"Celiac Disease",
	"Obesity",
	"Anemia",
	"Thyroid Disorder",
	"Kidney Disease",
}

func Seed(db *gorm.DB) error {
	for _, name := range defaultHealthConditions {
		var hc models.HealthCondition
		if err := db.Where(models.HealthCondition{Name: name}).
			FirstOrCreate(&hc).Error; err != nil {
			return err
		}
	}
	return nil
}
