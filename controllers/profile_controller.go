package controllers

import (
	"net/http"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/models"
	"github.com/PoojaSancheti/Low-PocEat/services"
	"github.com/PoojaSancheti/Low-PocEat/utils"
	"github.com/PoojaSancheti/Low-PocEat/validation"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Images utils.ImageStore
}

func NewProfileController(images utils.ImageStore) *ProfileController {
	return &ProfileController{Images: images}
}

// GetProfile returns the stored profile (or an empty one) plus the
// reference data the profile form needs for its choice controls.
func (p *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, found, err := services.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var conditions []models.HealthCondition
	if err := config.DB.Order("name").Find(&conditions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"found":   found,
		"choices": gin.H{
			"diet_pref":         models.DietChoices,
			"food_allergies":    models.FoodAllergyChoices,
			"health_conditions": conditions,
		},
	})
}

func (p *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v := validation.ValidateProfile(config.DB, input.Name, input.Age, input.Height,
		input.Weight, input.DietPref, input.FoodAllergies, input.HealthConIDs)
	if !v.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": v})
		return
	}

	if err := services.UpsertProfile(userID, input, p.Images); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Your profile has been updated successfully!",
		"redirect": "/user/profile",
	})
}
