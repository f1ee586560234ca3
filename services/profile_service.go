package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/models"
	"github.com/PoojaSancheti/Low-PocEat/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Height        float64  `json:"height"` // centimeters
	Weight        float64  `json:"weight"` // kilograms
	Bio           string   `json:"bio"`
	DietPref      []string `json:"diet_pref"`
	FoodAllergies string   `json:"food_allergies"`
	HealthConIDs  []uint   `json:"health_con"`
	ProfileImage  string   `json:"profile_image"` // data URI or URL, optional
}

// GetProfile returns the stored profile payload, or found=false when the
// user has not submitted the form yet.
func GetProfile(userID uint) (map[string]interface{}, bool, error) {
	var profile models.UserProfile
	err := config.DB.Preload("HealthConditions").
		Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	conditions := make([]map[string]interface{}, 0, len(profile.HealthConditions))
	for _, hc := range profile.HealthConditions {
		conditions = append(conditions, map[string]interface{}{"id": hc.ID, "name": hc.Name})
	}

	payload := map[string]interface{}{
		"name":           profile.Name,
		"age":            profile.Age,
		"height":         profile.Height,
		"weight":         profile.Weight,
		"bio":            profile.Bio,
		"profile_image":  profile.ProfileImage,
		"diet_pref":      splitPref(profile.DietPref),
		"food_allergies": profile.FoodAllergies,
		"health_con":     conditions,
	}

	if bmi, err := utils.BMI(profile.Height, profile.Weight); err == nil {
		payload["bmi"] = bmi
		payload["bmi_category"] = utils.BMIBand(bmi)
	}

	return payload, true, nil
}

func splitPref(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}

// UpsertProfile creates the profile on the first submission and fully
// overwrites it afterwards. The scalar overwrite and the health-condition
// set replacement share one transaction so a concurrent submission can
// never observe half an update. A data-URI profile_image goes through the
// image store first; an upload failure aborts before anything persists.
func UpsertProfile(userID uint, input ProfileInput, images utils.ImageStore) error {
	imageURL := input.ProfileImage
	if strings.HasPrefix(input.ProfileImage, "data:") {
		if images == nil {
			return fmt.Errorf("image uploads not configured")
		}
		url, err := images.UploadBase64Image(input.ProfileImage, fmt.Sprintf("user-%d", userID))
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		var conditions []models.HealthCondition
		if len(input.HealthConIDs) > 0 {
			if err := tx.Find(&conditions, input.HealthConIDs).Error; err != nil {
				return err
			}
		}

		var profile models.UserProfile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.UserProfile{UserID: userID}
		} else if err != nil {
			return err
		}

		profile.Name = input.Name
		profile.Age = input.Age
		profile.Height = input.Height
		profile.Weight = input.Weight
		profile.Bio = input.Bio
		profile.DietPref = strings.Join(input.DietPref, ",")
		profile.FoodAllergies = input.FoodAllergies
		profile.ProfileImage = imageURL

		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		// Replace, not merge: the submitted set wins wholesale.
		return tx.Model(&profile).Association("HealthConditions").Replace(conditions)
	})
}
