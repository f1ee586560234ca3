package utils

import "errors"

// Body-mass index helpers for the profile view payload. UserProfile
// stores Height in centimeters and Weight in kilograms; both helpers
// expect those units.

var ErrImplausibleBody = errors.New("height/weight outside plausible range")

// BMI returns weight / height² with height converted to meters. Inputs
// outside loose human bounds return ErrImplausibleBody so a typo in the
// profile form never surfaces an absurd number next to the profile.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 272 {
		return 0, ErrImplausibleBody
	}
	if weightKg < 10 || weightKg > 500 {
		return 0, ErrImplausibleBody
	}

	m := heightCm / 100
	return weightKg / (m * m), nil
}

// BMIBand maps a BMI value onto the WHO band label shown alongside it.
func BMIBand(bmi float64) string {
	bands := []struct {
		below float64
		label string
	}{
		{18.5, "Underweight"},
		{25.0, "Normal weight"},
		{30.0, "Overweight"},
		{35.0, "Obesity class I"},
		{40.0, "Obesity class II"},
	}
	for _, b := range bands {
		if bmi < b.below {
			return b.label
		}
	}
	return "Obesity class III"
}
