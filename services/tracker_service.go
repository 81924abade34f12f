package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ajit0013/SugarHealthTracker/models"
)

const dateLayout = "2006-01-02"

// TrackerService owns daily consumption entries.
type TrackerService struct {
	db       *gorm.DB
	foods    *FoodService
	insights *InsightService
}

func NewTrackerService(db *gorm.DB, foods *FoodService, insights *InsightService) *TrackerService {
	return &TrackerService{db: db, foods: foods, insights: insights}
}

// Add logs one consumption of a food today. Sugar and calories are scaled
// from the per-100g record to the portion and frozen into the entry. The
// food record is saved (deduped) first; a duplicate food row on a failed
// entry insert is tolerable, a half-written entry is not.
func (s *TrackerService) Add(record models.FoodItem, portionG float64, userID uint) (bool, error) {
	if portionG < 1 || portionG > 1000 {
		return false, errors.New("portion must be between 1 and 1000 grams")
	}

	foodID, err := s.foods.SaveFood(&record)
	if err != nil {
		log.Error().Err(err).Str("food", record.Name).Msg("saving food record failed")
		return false, err
	}

	now := time.Now()
	entry := models.TrackerEntry{
		UserID:     userID,
		FoodItemID: foodID,
		FoodName:   record.Name,
		PortionG:   portionG,
		SugarG:     record.SugarG / 100 * portionG,
		Calories:   record.Calories / 100 * portionG,
		ConsumedAt: now,
		Date:       now.Format(dateLayout),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Error().Err(err).Str("food", record.Name).Msg("tracker insert failed")
		return false, fmt.Errorf("tracker insert: %w", err)
	}

	s.refreshInsight(userID, entry.Date)
	return true, nil
}

// List returns the entries logged for one day.
func (s *TrackerService) List(date string, userID uint) ([]models.TrackerEntry, error) {
	var entries []models.TrackerEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("tracker list: %w", err)
	}
	return entries, nil
}

// Delete removes one entry by id; false when no such entry exists.
func (s *TrackerService) Delete(entryID uint) (bool, error) {
	var entry models.TrackerEntry
	err := s.db.First(&entry, entryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("tracker lookup: %w", err)
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return false, fmt.Errorf("tracker delete: %w", err)
	}

	s.refreshInsight(entry.UserID, entry.Date)
	return true, nil
}

// Clear removes every entry for one day.
func (s *TrackerService) Clear(date string, userID uint) (bool, error) {
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.TrackerEntry{}).Error
	if err != nil {
		return false, fmt.Errorf("tracker clear: %w", err)
	}

	s.refreshInsight(userID, date)
	return true, nil
}

// refreshInsight keeps the day's aggregate in step with the tracker. The
// entry write already succeeded, so a failed recompute only logs; the next
// mutation or an explicit recompute will repair the row.
func (s *TrackerService) refreshInsight(userID uint, date string) {
	if _, err := s.insights.RecomputeDaily(userID, date); err != nil {
		log.Warn().Err(err).Str("date", date).Msg("insight recompute failed")
	}
}

// Today is the tracker's default aggregation key.
func Today() string {
	return time.Now().Format(dateLayout)
}
