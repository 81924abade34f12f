package models

import "gorm.io/gorm"

// SugarInsight is the per-day aggregate over daily_tracker rows. One row per
// (user id, date); recomputation upserts in place, it never duplicates.
type SugarInsight struct {
	gorm.Model
	UserID        uint    `gorm:"index:idx_insight_user_date" json:"user_id"`
	Date          string  `gorm:"index:idx_insight_user_date" json:"date"`
	TotalSugarG   float64 `json:"total_sugar_g"`
	TotalCalories float64 `json:"total_calories"`
	FoodCount     int     `json:"food_count"`
	ExceededLimit bool    `json:"exceeded_limit"`
}

func (SugarInsight) TableName() string { return "sugar_insights" }
