package utils

import "errors"

// Daily free-sugar reference limits in grams.
const (
	WHODailyLimitG       = 25.0 // WHO recommendation for adults
	ADAMaleDailyLimitG   = 36.0
	ADAFemaleDailyLimitG = 25.0
)

// One teaspoon holds roughly 4g of sugar.
const gramsPerTeaspoon = 4.0

func GramsToTeaspoons(grams float64) float64 {
	return grams / gramsPerTeaspoon
}

func TeaspoonsToGrams(teaspoons float64) float64 {
	return teaspoons * gramsPerTeaspoon
}

// SugarLevel classifies sugar density per 100g of food.
type SugarLevel string

const (
	LevelLow      SugarLevel = "LOW SUGAR"
	LevelModerate SugarLevel = "MODERATE SUGAR"
	LevelHigh     SugarLevel = "HIGH SUGAR"
)

// Classification is the health warning shown next to a food.
type Classification struct {
	Level   SugarLevel `json:"level"`
	Message string     `json:"message"`
	Color   string     `json:"color"`
	Tips    []string   `json:"tips"`
}

// ClassifySugar buckets sugar grams per 100g into three bands:
// <=5 low, (5,15] moderate, >15 high. Tips are fixed and ordered.
func ClassifySugar(sugarPer100g float64) Classification {
	switch {
	case sugarPer100g <= 5.0:
		return Classification{
			Level:   LevelLow,
			Message: "This food is low in sugar and is a good choice for a healthy diet.",
			Color:   "green",
			Tips: []string{
				"Great choice! This food is naturally low in sugar.",
				"You can enjoy this as part of a balanced diet.",
				"Consider pairing with protein for sustained energy.",
			},
		}
	case sugarPer100g <= 15.0:
		return Classification{
			Level:   LevelModerate,
			Message: "This food contains moderate amounts of sugar. Consume in moderation.",
			Color:   "yellow",
			Tips: []string{
				"Moderate sugar content - enjoy in reasonable portions.",
				"Consider the timing of consumption (e.g., before exercise).",
				"Balance with low-sugar foods throughout the day.",
			},
		}
	default:
		return Classification{
			Level:   LevelHigh,
			Message: "This food is high in sugar. Consider limiting your consumption.",
			Color:   "red",
			Tips: []string{
				"High sugar content - consider limiting portion size.",
				"Try to consume with fiber-rich foods to slow absorption.",
				"Consider this as an occasional treat rather than daily food.",
				"Look for lower-sugar alternatives when possible.",
			},
		}
	}
}

// PercentOfDailyLimit reports how much of a daily limit the given amount
// covers. A non-positive limit is a configuration error, not a crash.
func PercentOfDailyLimit(amountG, limitG float64) (float64, error) {
	if limitG <= 0 {
		return 0, errors.New("daily sugar limit must be positive")
	}
	return amountG / limitG * 100, nil
}

// ImpactScore rates the absolute sugar consumed in one portion. Its bands
// (5/10/20 grams) are deliberately different from ClassifySugar's per-100g
// density bands; the two scales measure different things.
type ImpactScore struct {
	ActualSugarG     float64 `json:"actual_sugar_g"`
	Teaspoons        float64 `json:"teaspoons"`
	WHOPercent       float64 `json:"who_daily_percentage"`
	ADAMalePercent   float64 `json:"ada_male_percentage"`
	ADAFemalePercent float64 `json:"ada_female_percentage"`
	Level            string  `json:"impact_level"`
	Score            int     `json:"impact_score"`
	PortionG         float64 `json:"portion_size"`
}

func SugarImpact(sugarPer100g, portionG float64) ImpactScore {
	actual := sugarPer100g / 100 * portionG

	s := ImpactScore{
		ActualSugarG: actual,
		Teaspoons:    GramsToTeaspoons(actual),
		PortionG:     portionG,
	}
	// Reference limits are fixed positive constants, so the percentage
	// helpers cannot fail here.
	s.WHOPercent, _ = PercentOfDailyLimit(actual, WHODailyLimitG)
	s.ADAMalePercent, _ = PercentOfDailyLimit(actual, ADAMaleDailyLimitG)
	s.ADAFemalePercent, _ = PercentOfDailyLimit(actual, ADAFemaleDailyLimitG)

	switch {
	case actual <= 5.0:
		s.Level, s.Score = "Low Impact", 1
	case actual <= 10.0:
		s.Level, s.Score = "Moderate Impact", 2
	case actual <= 20.0:
		s.Level, s.Score = "High Impact", 3
	default:
		s.Level, s.Score = "Very High Impact", 4
	}
	return s
}
