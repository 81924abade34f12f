package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ajit0013/SugarHealthTracker/models"
)

// FavoriteService owns the per-user saved foods.
type FavoriteService struct {
	db    *gorm.DB
	foods *FoodService
}

func NewFavoriteService(db *gorm.DB, foods *FoodService) *FavoriteService {
	return &FavoriteService{db: db, foods: foods}
}

// Add saves a food as a favorite. A food already favorited under the same
// name for this user is left untouched and reported as false, never
// overwritten. The full record is kept as a JSON blob next to denormalized
// sugar/calories for fast listing.
func (s *FavoriteService) Add(record models.FoodItem, userID uint) (bool, error) {
	var existing models.FavoriteFood
	err := s.db.
		Where("user_id = ? AND food_name = ?", userID, record.Name).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("favorite lookup: %w", err)
	}

	foodID, err := s.foods.SaveFood(&record)
	if err != nil {
		log.Error().Err(err).Str("food", record.Name).Msg("saving food record failed")
		return false, err
	}

	blob, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("favorite snapshot: %w", err)
	}

	favorite := models.FavoriteFood{
		UserID:     userID,
		FoodItemID: foodID,
		FoodName:   record.Name,
		SugarG:     record.SugarG,
		Calories:   record.Calories,
		FoodData:   string(blob),
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		return false, fmt.Errorf("favorite insert: %w", err)
	}
	return true, nil
}

// FavoriteView is one listed favorite: the snapshotted canonical record plus
// the favorite row id used for removal.
type FavoriteView struct {
	FavoriteID uint `json:"favorite_id"`
	models.FoodItem
}

// List returns the user's favorites, newest first. Each stored blob is
// decoded back into the canonical record; a corrupt blob falls back to the
// denormalized columns instead of dropping the row.
func (s *FavoriteService) List(userID uint) ([]FavoriteView, error) {
	var favorites []models.FavoriteFood
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("favorite list: %w", err)
	}

	views := make([]FavoriteView, 0, len(favorites))
	for _, fav := range favorites {
		view := FavoriteView{FavoriteID: fav.ID}
		if err := json.Unmarshal([]byte(fav.FoodData), &view.FoodItem); err != nil {
			log.Warn().Uint("favorite_id", fav.ID).Msg("corrupt favorite snapshot, using denormalized fields")
			view.FoodItem = models.FoodItem{
				Name:     fav.FoodName,
				SugarG:   fav.SugarG,
				Calories: fav.Calories,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Remove deletes one favorite by id; false when it does not exist.
func (s *FavoriteService) Remove(favoriteID uint) (bool, error) {
	res := s.db.Delete(&models.FavoriteFood{}, favoriteID)
	if res.Error != nil {
		return false, fmt.Errorf("favorite delete: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Clear deletes all of the user's favorites.
func (s *FavoriteService) Clear(userID uint) (bool, error) {
	err := s.db.
		Where("user_id = ?", userID).
		Delete(&models.FavoriteFood{}).Error
	if err != nil {
		return false, fmt.Errorf("favorite clear: %w", err)
	}
	return true, nil
}
