package services

import (
	"testing"

	"github.com/PoojaSancheti/Low-PocEat/models"

	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) (diabetes, anemia models.HealthCondition) {
	t.Helper()
	db := setupTestDB(t)

	diabetes = models.HealthCondition{Name: "Diabetes"}
	anemia = models.HealthCondition{Name: "Anemia"}
	require.NoError(t, db.Create(&diabetes).Error)
	require.NoError(t, db.Create(&anemia).Error)

	meals := []models.Meal{
		{
			Name: "Oatmeal Bowl", MealType: "Breakfast", DietSuitability: "Vegan",
			TotalCost: 120, HealthConditions: []models.HealthCondition{diabetes},
		},
		{
			Name: "Paneer Wrap", MealType: "Lunch", DietSuitability: "Vegetarian",
			TotalCost: 300, HealthConditions: []models.HealthCondition{anemia},
		},
		{
			Name: "Lentil Curry", MealType: "Lunch", DietSuitability: "Vegan",
			TotalCost: 500, HealthConditions: []models.HealthCondition{diabetes, anemia},
		},
		{
			Name: "Chicken Dinner", MealType: "Dinner", DietSuitability: "Non-Vegetarian",
			TotalCost: 800,
		},
	}
	for i := range meals {
		require.NoError(t, db.Create(&meals[i]).Error)
	}
	return diabetes, anemia
}

func mealNames(meals []models.Meal) []string {
	names := make([]string, 0, len(meals))
	for _, m := range meals {
		names = append(names, m.Name)
	}
	return names
}

func TestListMealsNoFilters(t *testing.T) {
	seedCatalog(t)

	meals, err := NewMealService().ListMeals(MealFilters{})
	require.NoError(t, err)
	require.Len(t, meals, 4)
}

func TestListMealsFilterIntersection(t *testing.T) {
	seedCatalog(t)

	// Lunch AND Vegan AND cost<=500 must only return Lentil Curry
	meals, err := NewMealService().ListMeals(MealFilters{
		MealType:        "Lunch",
		DietSuitability: "Vegan",
		MaxCost:         "500",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Lentil Curry"}, mealNames(meals))
}

func TestListMealsMaxCostInclusive(t *testing.T) {
	seedCatalog(t)

	meals, err := NewMealService().ListMeals(MealFilters{MaxCost: "500"})
	require.NoError(t, err)
	require.Len(t, meals, 3, "a meal costing exactly the bound is included")
}

func TestListMealsMalformedCostDisablesFilter(t *testing.T) {
	seedCatalog(t)

	meals, err := NewMealService().ListMeals(MealFilters{MaxCost: "cheap"})
	require.NoError(t, err)
	require.Len(t, meals, 4)
}

func TestListMealsHealthConditionFilter(t *testing.T) {
	seedCatalog(t)

	meals, err := NewMealService().ListMeals(MealFilters{HealthCondition: "Diabetes"})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Oatmeal Bowl", "Lentil Curry"}, mealNames(meals))

	meals, err = NewMealService().ListMeals(MealFilters{HealthCondition: "Gout"})
	require.NoError(t, err)
	require.Empty(t, meals)
}

func TestGetMeal(t *testing.T) {
	seedCatalog(t)

	svc := NewMealService()

	meal, err := svc.GetMeal(1)
	require.NoError(t, err)
	require.Equal(t, "Oatmeal Bowl", meal.Name)
	require.Len(t, meal.HealthConditions, 1)

	_, err = svc.GetMeal(9999)
	require.ErrorIs(t, err, ErrMealNotFound)
}
