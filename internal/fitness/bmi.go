package fitness

import "math"

// BMI expects weight in kilograms and height in centimeters, and returns the body mass
// index rounded to one decimal. ok is false when either value is not positive.
func BMI(weightKg, heightCm float64) (bmi float64, ok bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return Round1(weightKg / (m * m)), true
}

// BMIPtr is BMI for an optional weight: nil weight (nothing recorded yet) gives nil.
func BMIPtr(weightKg *float64, heightCm float64) *float64 {
	if weightKg == nil {
		return nil
	}
	bmi, ok := BMI(*weightKg, heightCm)
	if !ok {
		return nil
	}
	return &bmi
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
