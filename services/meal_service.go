package services

import (
	"errors"
	"strconv"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/models"

	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("meal not found")

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// MealFilters carries the raw query-string values. Empty values disable
// their filter; a malformed max_cost disables that one filter instead of
// failing the request.
type MealFilters struct {
	MealType        string
	DietSuitability string
	HealthCondition string
	MaxCost         string
}

// ListMeals returns every meal matching the AND of the active filters.
// No pagination or sorting: the catalog is small reference data.
func (s *MealService) ListMeals(f MealFilters) ([]models.Meal, error) {
	q := config.DB.Model(&models.Meal{}).Preload("HealthConditions")

	if f.MealType != "" {
		q = q.Where("meals.meal_type = ?", f.MealType)
	}
	if f.DietSuitability != "" {
		q = q.Where("meals.diet_suitability = ?", f.DietSuitability)
	}
	if f.HealthCondition != "" {
		// Joined condition columns must not shadow meal columns in the scan
		q = q.Select("meals.*").
			Joins("JOIN meal_health_conditions mhc ON mhc.meal_id = meals.id").
			Joins("JOIN health_conditions hc ON hc.id = mhc.health_condition_id").
			Where("hc.name = ?", f.HealthCondition)
	}
	if cost, err := strconv.ParseFloat(f.MaxCost, 64); err == nil {
		q = q.Where("meals.total_cost <= ?", cost)
	}

	var meals []models.Meal
	err := q.Find(&meals).Error
	return meals, err
}

// GetMeal loads one meal with its associated health conditions.
func (s *MealService) GetMeal(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.Preload("HealthConditions").First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListHealthConditions returns the full reference list, used to populate
// the filter controls alongside every meal listing.
func (s *MealService) ListHealthConditions() ([]models.HealthCondition, error) {
	var conditions []models.HealthCondition
	err := config.DB.Order("name").Find(&conditions).Error
	return conditions, err
}
