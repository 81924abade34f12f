package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ajit0013/SugarHealthTracker/models"
	"github.com/ajit0013/SugarHealthTracker/utils"
)

// At most this many search hits are normalized and shown.
const maxSearchResults = 3

// FoodSearcher is the name-search provider boundary (USDA).
type FoodSearcher interface {
	SearchFoods(ctx context.Context, query string) ([]USDAFood, error)
}

// ProductFinder is the barcode provider boundary (OpenFoodFacts).
type ProductFinder interface {
	ProductByBarcode(ctx context.Context, code string) (*OFFProduct, error)
}

// FoodService orchestrates provider search, normalization and the stored
// food-item catalog.
type FoodService struct {
	db   *gorm.DB
	usda FoodSearcher
	off  ProductFinder
}

func NewFoodService(db *gorm.DB, usda FoodSearcher, off ProductFinder) *FoodService {
	return &FoodService{db: db, usda: usda, off: off}
}

// SearchByName searches the name provider and normalizes up to three hits.
// Provider failures never propagate: they come back as zero records plus a
// user-facing reason. A normalization failure on one hit skips that hit only.
func (s *FoodService) SearchByName(ctx context.Context, query string) ([]models.FoodItem, string) {
	raw, err := s.usda.SearchFoods(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("food name search failed")
		return nil, searchFailureReason(err)
	}

	records := make([]models.FoodItem, 0, maxSearchResults)
	for _, f := range raw {
		if len(records) == maxSearchResults {
			break
		}
		item, err := NormalizeUSDAFood(f)
		if err != nil {
			log.Warn().Err(err).Int64("fdc_id", f.FdcID).Msg("skipping unusable search hit")
			continue
		}
		records = append(records, *item)
	}
	return records, ""
}

// SearchByBarcode resolves one barcode. An unknown barcode is an empty
// result with no reason; only transport/provider failures carry one.
func (s *FoodService) SearchByBarcode(ctx context.Context, barcode string) ([]models.FoodItem, string) {
	code := utils.CleanBarcode(barcode)
	product, err := s.off.ProductByBarcode(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("barcode", code).Msg("barcode lookup failed")
		return nil, barcodeFailureReason(err)
	}
	if product == nil {
		return nil, ""
	}
	item, err := NormalizeProduct(*product)
	if err != nil {
		log.Warn().Err(err).Str("barcode", code).Msg("unusable barcode payload")
		return nil, ""
	}
	return []models.FoodItem{*item}, ""
}

// SaveFood stores a canonical record, deduplicating on (name, external id)
// so re-tracking a food reuses the existing row.
func (s *FoodService) SaveFood(record *models.FoodItem) (uint, error) {
	var existing models.FoodItem
	err := s.db.
		Where("name = ? AND external_id = ?", record.Name, record.ExternalID).
		First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("food lookup: %w", err)
	}

	fresh := *record
	fresh.ID = 0
	if err := s.db.Create(&fresh).Error; err != nil {
		return 0, fmt.Errorf("food save: %w", err)
	}
	return fresh.ID, nil
}

// History searches previously tracked foods by case-insensitive substring.
func (s *FoodService) History(query string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var foods []models.FoodItem
	err := s.db.
		Where("name ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, fmt.Errorf("food history search: %w", err)
	}
	return foods, nil
}

func searchFailureReason(err error) string {
	var apiErr *APIError
	switch {
	case errors.Is(err, ErrTimeout):
		return "Request timed out. Please try again."
	case errors.Is(err, ErrConnection):
		return "Unable to connect to the nutrition database. Please check your internet connection."
	case errors.As(err, &apiErr):
		if apiErr.Status == 403 {
			return "API access denied. Please check your API key configuration."
		}
		return fmt.Sprintf("API request failed with status code: %d", apiErr.Status)
	default:
		return "An unexpected error occurred while searching."
	}
}

func barcodeFailureReason(err error) string {
	var apiErr *APIError
	switch {
	case errors.Is(err, ErrTimeout):
		return "Request timed out while searching barcode. Please try again."
	case errors.Is(err, ErrConnection):
		return "Unable to connect to barcode database. Please check your internet connection."
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Failed to fetch barcode data. Status code: %d", apiErr.Status)
	default:
		return "An error occurred while searching barcode."
	}
}
