package models

import "gorm.io/gorm"

// Data sources a canonical record can come from.
const (
	SourceUSDAFoundation = "Foundation"
	SourceUSDASRLegacy   = "SR Legacy"
	SourceOpenFoodFacts  = "OpenFoodFacts"
)

// FoodItem is the canonical nutrition record every provider payload is
// normalized into. All nutrient values are per 100g of product; values the
// source did not report stay at 0, never null.
type FoodItem struct {
	gorm.Model
	Name        string  `gorm:"index;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	SugarG      float64 `json:"sugar_g"`
	Calories    float64 `json:"calories"`
	CarbsG      float64 `json:"carbs_g"`
	ProteinG    float64 `json:"protein_g"`
	FatG        float64 `json:"fat_g"`
	FiberG      float64 `json:"fiber_g"`
	SodiumMg    float64 `json:"sodium_mg"`
	DataSource  string  `json:"data_source"`
	// FDC ID for USDA records, barcode for OpenFoodFacts ones.
	ExternalID string `gorm:"type:varchar(255);index" json:"external_id"`
}
