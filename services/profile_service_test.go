package services

import (
	"testing"

	"github.com/PoojaSancheti/Low-PocEat/models"

	"github.com/stretchr/testify/require"
)

func TestUpsertProfileCreateThenReplace(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "alice", Email: "a@x.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	diabetes := models.HealthCondition{Name: "Diabetes"}
	anemia := models.HealthCondition{Name: "Anemia"}
	require.NoError(t, db.Create(&diabetes).Error)
	require.NoError(t, db.Create(&anemia).Error)

	// First submission creates the profile
	err := UpsertProfile(user.ID, ProfileInput{
		Name:          "Alice",
		Age:           30,
		Height:        170,
		Weight:        65,
		DietPref:      []string{"Vegan", "Vegetarian"},
		FoodAllergies: "lactose_intolerance",
		HealthConIDs:  []uint{diabetes.ID},
	}, nil)
	require.NoError(t, err)

	var profile models.UserProfile
	require.NoError(t, db.Preload("HealthConditions").Where("user_id = ?", user.ID).First(&profile).Error)
	require.Equal(t, "Alice", profile.Name)
	require.Equal(t, "Vegan,Vegetarian", profile.DietPref)
	require.Len(t, profile.HealthConditions, 1)
	require.Equal(t, "Diabetes", profile.HealthConditions[0].Name)

	// Second submission overwrites scalars and replaces the set wholesale
	err = UpsertProfile(user.ID, ProfileInput{
		Name:          "Alice B",
		Age:           31,
		Height:        171,
		Weight:        64,
		DietPref:      []string{"Non-Vegetarian"},
		FoodAllergies: "gluten_intolerance",
		HealthConIDs:  []uint{anemia.ID},
	}, nil)
	require.NoError(t, err)

	var count int64
	db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&count)
	require.EqualValues(t, 1, count, "upsert must never create a second profile")

	profile = models.UserProfile{}
	require.NoError(t, db.Preload("HealthConditions").Where("user_id = ?", user.ID).First(&profile).Error)
	require.Equal(t, "Alice B", profile.Name)
	require.Equal(t, 31, profile.Age)
	require.Equal(t, "Non-Vegetarian", profile.DietPref)
	require.Len(t, profile.HealthConditions, 1, "set is replaced, not merged")
	require.Equal(t, "Anemia", profile.HealthConditions[0].Name)
}

func TestUpsertProfileEmptyConditionSetClears(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "bob", Email: "b@x.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	hc := models.HealthCondition{Name: "Hypertension"}
	require.NoError(t, db.Create(&hc).Error)

	require.NoError(t, UpsertProfile(user.ID, ProfileInput{
		Name: "Bob", Age: 40, Height: 180, Weight: 80,
		HealthConIDs: []uint{hc.ID},
	}, nil))
	require.NoError(t, UpsertProfile(user.ID, ProfileInput{
		Name: "Bob", Age: 40, Height: 180, Weight: 80,
	}, nil))

	var profile models.UserProfile
	require.NoError(t, db.Preload("HealthConditions").Where("user_id = ?", user.ID).First(&profile).Error)
	require.Empty(t, profile.HealthConditions)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "carol", Email: "c@x.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	_, found, err := GetProfile(user.ID)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, UpsertProfile(user.ID, ProfileInput{
		Name: "Carol", Age: 28, Height: 160, Weight: 55,
		DietPref: []string{"Vegetarian"},
	}, nil))

	payload, found, err := GetProfile(user.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Carol", payload["name"])
	require.Equal(t, []string{"Vegetarian"}, payload["diet_pref"])
	require.Contains(t, payload, "bmi")
	require.Equal(t, "Normal weight", payload["bmi_category"])
}
