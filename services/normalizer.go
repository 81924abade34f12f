package services

import (
	"strconv"
	"strings"

	"github.com/ajit0013/SugarHealthTracker/models"
)

// USDA FoodData Central nutrient numbers for the fields we keep.
const (
	usdaNutrientSugar   = 2000
	usdaNutrientEnergy  = 1008
	usdaNutrientCarbs   = 1005
	usdaNutrientProtein = 1003
	usdaNutrientFat     = 1004
	usdaNutrientFiber   = 1079
	usdaNutrientSodium  = 1093
)

// USDAFood is one hit from the FoodData Central search endpoint.
type USDAFood struct {
	FdcID                  int64              `json:"fdcId"`
	Description            string             `json:"description"`
	AdditionalDescriptions string             `json:"additionalDescriptions"`
	DataType               string             `json:"dataType"`
	FoodNutrients          []USDAFoodNutrient `json:"foodNutrients"`
}

type USDAFoodNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
}

// OFFProduct is the product object inside an OpenFoodFacts barcode response.
type OFFProduct struct {
	Code        string         `json:"code"`
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	Categories  string         `json:"categories"`
	Nutriments  *OFFNutriments `json:"nutriments"`
}

// OFFNutriments carries the per-100g values under OpenFoodFacts keys.
// Pointers distinguish absent/null from genuine zeros; both normalize to 0.
type OFFNutriments struct {
	SugarsG       *float64 `json:"sugars_100g"`
	EnergyKcal    *float64 `json:"energy-kcal_100g"`
	Carbohydrates *float64 `json:"carbohydrates_100g"`
	Proteins      *float64 `json:"proteins_100g"`
	Fat           *float64 `json:"fat_100g"`
	Fiber         *float64 `json:"fiber_100g"`
	SodiumG       *float64 `json:"sodium_100g"`
}

// NormalizeUSDAFood maps a FoodData Central payload onto the canonical
// record. Nutrients are matched by USDA nutrient number first; entries with
// an unknown number fall back to best-effort substring matching on the
// nutrient name, taken in list order and only while the target field is
// still at its zero default. Unmapped nutrients are dropped.
func NormalizeUSDAFood(f USDAFood) (*models.FoodItem, error) {
	if f.FdcID == 0 && f.Description == "" && len(f.FoodNutrients) == 0 {
		return nil, ErrMalformedPayload
	}

	item := &models.FoodItem{
		Name:        f.Description,
		Description: f.AdditionalDescriptions,
		DataSource:  f.DataType,
		ExternalID:  strconv.FormatInt(f.FdcID, 10),
	}
	if item.Name == "" {
		item.Name = "Unknown Food"
	}

	for _, n := range f.FoodNutrients {
		name := strings.ToLower(n.NutrientName)
		amount := n.Value

		switch n.NutrientID {
		case usdaNutrientSugar:
			item.SugarG = amount
		case usdaNutrientEnergy:
			item.Calories = amount
		case usdaNutrientCarbs:
			item.CarbsG = amount
		case usdaNutrientProtein:
			item.ProteinG = amount
		case usdaNutrientFat:
			item.FatG = amount
		case usdaNutrientFiber:
			item.FiberG = amount
		case usdaNutrientSodium:
			item.SodiumMg = amount
		default:
			// Heuristic fallback when the id is not one we know. First
			// name match wins; a later match never overwrites a field
			// that is already set.
			switch {
			case strings.Contains(name, "sugar") && strings.Contains(name, "total"):
				if item.SugarG == 0 {
					item.SugarG = amount
				}
			case strings.Contains(name, "energy") || strings.Contains(name, "calorie"):
				if item.Calories == 0 {
					item.Calories = amount
				}
			case strings.Contains(name, "carbohydrate") && strings.Contains(name, "total"):
				if item.CarbsG == 0 {
					item.CarbsG = amount
				}
			case strings.Contains(name, "protein"):
				if item.ProteinG == 0 {
					item.ProteinG = amount
				}
			case strings.Contains(name, "fat") && (strings.Contains(name, "total") || strings.Contains(name, "lipid")):
				if item.FatG == 0 {
					item.FatG = amount
				}
			case strings.Contains(name, "fiber"):
				if item.FiberG == 0 {
					item.FiberG = amount
				}
			case strings.Contains(name, "sodium"):
				if item.SodiumMg == 0 {
					item.SodiumMg = amount
				}
			}
		}
	}

	return item, nil
}

// NormalizeProduct maps an OpenFoodFacts product onto the canonical record.
// OpenFoodFacts reports sodium in grams per 100g; the canonical record keeps
// milligrams, hence the x1000.
func NormalizeProduct(p OFFProduct) (*models.FoodItem, error) {
	if p.Code == "" && p.ProductName == "" && p.Nutriments == nil {
		return nil, ErrMalformedPayload
	}

	item := &models.FoodItem{
		Name:        p.ProductName,
		Description: p.Brands,
		DataSource:  models.SourceOpenFoodFacts,
		ExternalID:  p.Code,
	}
	if item.Name == "" {
		item.Name = "Unknown Product"
	}
	if p.Brands != "" {
		if cat := firstCategory(p.Categories); cat != "" {
			item.Description = p.Brands + " - " + cat
		}
	}

	if n := p.Nutriments; n != nil {
		item.SugarG = orZero(n.SugarsG)
		item.Calories = orZero(n.EnergyKcal)
		item.CarbsG = orZero(n.Carbohydrates)
		item.ProteinG = orZero(n.Proteins)
		item.FatG = orZero(n.Fat)
		item.FiberG = orZero(n.Fiber)
		item.SodiumMg = orZero(n.SodiumG) * 1000
	}

	return item, nil
}

func firstCategory(categories string) string {
	first, _, _ := strings.Cut(categories, ",")
	return strings.TrimSpace(first)
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
