package models

import (
	"time"

	"gorm.io/gorm"
)

// TrackerEntry is one logged consumption event. SugarG and Calories are
// scaled snapshots of the food's per-100g values at the tracked portion, so
// later changes to the food record never rewrite history.
type TrackerEntry struct {
	gorm.Model
	UserID     uint      `gorm:"index:idx_tracker_user_date" json:"user_id"`
	FoodItemID uint      `json:"food_item_id"`
	FoodName   string    `json:"food_name"`
	PortionG   float64   `json:"portion_g"`
	SugarG     float64   `json:"sugar_g"`
	Calories   float64   `json:"calories"`
	ConsumedAt time.Time `json:"consumed_at"`
	// Calendar day in YYYY-MM-DD form, the aggregation key.
	Date string `gorm:"index:idx_tracker_user_date" json:"date"`
}

func (TrackerEntry) TableName() string { return "daily_tracker" }
