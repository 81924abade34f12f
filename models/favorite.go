package models

import "gorm.io/gorm"

// FavoriteFood is a saved canonical record for one user. FoodData carries the
// full record as a JSON blob so listing survives later schema changes;
// SugarG/Calories are denormalized for fast display. At most one favorite per
// (user id, food name).
type FavoriteFood struct {
	gorm.Model
	UserID     uint    `gorm:"index" json:"user_id"`
	FoodItemID uint    `json:"food_item_id"`
	FoodName   string  `json:"food_name"`
	SugarG     float64 `json:"sugar_g"`
	Calories   float64 `json:"calories"`
	FoodData   string  `gorm:"type:text" json:"-"`
}

func (FavoriteFood) TableName() string { return "favorite_foods" }
