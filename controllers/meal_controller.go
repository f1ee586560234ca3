package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PoojaSancheti/Low-PocEat/services"

	"github.com/gin-gonic/gin"
)

// ListMeals applies the optional catalog filters and always returns the
// full health-condition reference list plus the echoed filter values so
// the client can keep its controls in sync.
func ListMeals(c *gin.Context) {
	filters := services.MealFilters{
		MealType:        c.Query("meal_type"),
		DietSuitability: c.Query("diet_suitability"),
		HealthCondition: c.Query("health_condition"),
		MaxCost:         c.Query("max_cost"),
	}

	mealSvc := services.NewMealService()
	meals, err := mealSvc.ListMeals(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	conditions, err := mealSvc.ListHealthConditions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals":             meals,
		"health_conditions": conditions,
		"filters": gin.H{
			"meal_type":        filters.MealType,
			"diet_suitability": filters.DietSuitability,
			"health_condition": filters.HealthCondition,
			"max_cost":         filters.MaxCost,
		},
	})
}

func GetMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	mealSvc := services.NewMealService()
	meal, err := mealSvc.GetMeal(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}
