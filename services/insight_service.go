package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ajit0013/SugarHealthTracker/models"
	"github.com/ajit0013/SugarHealthTracker/utils"
)

// InsightService derives per-day aggregates from tracker entries.
type InsightService struct {
	db *gorm.DB
}

func NewInsightService(db *gorm.DB) *InsightService {
	return &InsightService{db: db}
}

// RecomputeDaily rebuilds the aggregate for one (user, date) from the
// tracker entries currently stored for it. With no entries there is nothing
// to do and (false, nil) is returned. The single insight row is upserted, so
// recomputing an unchanged day stores the same row again.
func (s *InsightService) RecomputeDaily(userID uint, date string) (bool, error) {
	var entries []models.TrackerEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	if err != nil {
		return false, fmt.Errorf("load tracker entries: %w", err)
	}
	if len(entries) == 0 {
		return false, nil
	}

	var totalSugar, totalCalories float64
	for _, e := range entries {
		totalSugar += e.SugarG
		totalCalories += e.Calories
	}
	exceeded := totalSugar > utils.WHODailyLimitG

	var existing models.SugarInsight
	err = s.db.
		Where("user_id = ? AND date = ?", userID, date).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		insight := models.SugarInsight{
			UserID:        userID,
			Date:          date,
			TotalSugarG:   totalSugar,
			TotalCalories: totalCalories,
			FoodCount:     len(entries),
			ExceededLimit: exceeded,
		}
		if err := s.db.Create(&insight).Error; err != nil {
			return false, fmt.Errorf("create insight: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("load insight: %w", err)
	}

	existing.TotalSugarG = totalSugar
	existing.TotalCalories = totalCalories
	existing.FoodCount = len(entries)
	existing.ExceededLimit = exceeded
	if err := s.db.Save(&existing).Error; err != nil {
		return false, fmt.Errorf("update insight: %w", err)
	}
	return true, nil
}

// Recent returns the newest insights first, at most limit rows. Days with no
// tracked food have no row and are simply absent, never zero-filled.
func (s *InsightService) Recent(userID uint, limit int) ([]models.SugarInsight, error) {
	if limit <= 0 {
		limit = 7
	}
	var insights []models.SugarInsight
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&insights).Error
	if err != nil {
		return nil, fmt.Errorf("load insights: %w", err)
	}
	return insights, nil
}

// ComplianceRate is the share of returned days that stayed within the limit.
// It divides by the number of rows actually present, not the requested span.
func ComplianceRate(insights []models.SugarInsight) float64 {
	if len(insights) == 0 {
		return 0
	}
	within := 0
	for _, in := range insights {
		if !in.ExceededLimit {
			within++
		}
	}
	return float64(within) / float64(len(insights)) * 100
}

// DaySummary is the tracker-tab view of one day: totals plus progress
// against the user's daily limit.
type DaySummary struct {
	Date           string  `json:"date"`
	TotalSugarG    float64 `json:"total_sugar_g"`
	TotalCalories  float64 `json:"total_calories"`
	FoodCount      int     `json:"food_count"`
	Teaspoons      float64 `json:"teaspoons"`
	LimitG         float64 `json:"limit_g"`
	PercentOfLimit float64 `json:"percent_of_limit"`
	Status         string  `json:"status"`
}

// Summarize totals one day's entries against the user's configured daily
// limit (falling back to the WHO 25g reference when the user row is absent).
func (s *InsightService) Summarize(userID uint, date string) (*DaySummary, error) {
	var entries []models.TrackerEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load tracker entries: %w", err)
	}

	limit := utils.WHODailyLimitG
	var user models.User
	if err := s.db.First(&user, userID).Error; err == nil && user.DailySugarLimitG > 0 {
		limit = user.DailySugarLimitG
	}

	sum := &DaySummary{Date: date, LimitG: limit, FoodCount: len(entries)}
	for _, e := range entries {
		sum.TotalSugarG += e.SugarG
		sum.TotalCalories += e.Calories
	}
	sum.Teaspoons = utils.GramsToTeaspoons(sum.TotalSugarG)

	pct, err := utils.PercentOfDailyLimit(sum.TotalSugarG, limit)
	if err != nil {
		return nil, err
	}
	sum.PercentOfLimit = pct

	switch {
	case sum.TotalSugarG > limit:
		sum.Status = "You've exceeded the recommended daily sugar limit!"
	case pct >= 80:
		sum.Status = "You're approaching your daily sugar limit!"
	default:
		sum.Status = "Good job staying within healthy limits!"
	}
	return sum, nil
}
