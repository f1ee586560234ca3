package validation

import (
	"fmt"

	"github.com/PoojaSancheti/Low-PocEat/models"

	"gorm.io/gorm"
)

// ValidateSignup runs the signup rule list. Uniqueness rules query the
// user table, so the caller supplies the DB handle.
func ValidateSignup(db *gorm.DB, username, email, password, confirm string) Violations {
	return runAll([]Rule{
		required("username", username, "This field is required."),
		func(v Violations) {
			if username == "" {
				return
			}
			var count int64
			if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
				v.add("username", "Could not verify username availability. Please try again.")
				return
			}
			if count > 0 {
				v.add("username", "A user with that username already exists.")
			}
		},
		required("email", email, "This field is required."),
		validEmail("email", email),
		func(v Violations) {
			if email == "" {
				return
			}
			var count int64
			if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
				v.add("email", "Could not verify email availability. Please try again.")
				return
			}
			if count > 0 {
				v.add("email", "This email is already in use. Please use a different email address.")
			}
		},
		required("password", password, "This field is required."),
		func(v Violations) {
			if password != "" && len(password) < 8 {
				v.add("password", "Your password must contain at least 8 characters.")
			}
		},
		func(v Violations) {
			if password != "" && confirm != "" && password != confirm {
				v.add("confirm_password", "Passwords do not match.")
			}
		},
		required("confirm_password", confirm, "This field is required."),
	})
}

// ValidateProfile checks the profile form. Health condition ids must
// reference existing rows; unknown ids fail rather than being dropped.
func ValidateProfile(db *gorm.DB, name string, age int, height, weight float64, dietPref []string, foodAllergies string, healthConIDs []uint) Violations {
	rules := []Rule{
		required("name", name, "This field is required."),
		func(v Violations) {
			if age <= 0 {
				v.add("age", "Enter a positive whole number.")
			}
		},
		func(v Violations) {
			if height <= 0 {
				v.add("height", "Enter a positive number.")
			}
		},
		func(v Violations) {
			if weight <= 0 {
				v.add("weight", "Enter a positive number.")
			}
		},
		oneOf("food_allergies", foodAllergies, models.FoodAllergyChoices,
			"Select a valid choice."),
	}
	for _, p := range dietPref {
		rules = append(rules, oneOf("diet_pref", p, models.DietChoices,
			fmt.Sprintf("Select a valid choice. %q is not one of the available choices.", p)))
	}
	rules = append(rules, func(v Violations) {
		if len(healthConIDs) == 0 {
			return
		}
		var count int64
		if err := db.Model(&models.HealthCondition{}).Where("id IN ?", healthConIDs).Count(&count).Error; err != nil {
			v.add("health_con", "Could not verify the selected choices. Please try again.")
			return
		}
		if count != int64(len(healthConIDs)) {
			v.add("health_con", "Select a valid choice.")
		}
	})
	return runAll(rules)
}

// ValidateFeedback checks a feedback submission.
func ValidateFeedback(name, email, message string, rating int) Violations {
	return runAll([]Rule{
		required("name", name, "This field is required."),
		required("email", email, "This field is required."),
		validEmail("email", email),
		required("message", message, "This field is required."),
		func(v Violations) {
			if rating < 1 || rating > 5 {
				v.add("rating", "Select a valid choice. Rating must be between 1 and 5.")
			}
		},
	})
}
