package models

import "gorm.io/gorm"

// DefaultUserID is the single implicit user every store operation is scoped
// to until real accounts exist. All queries already filter by user id, so a
// multi-user setup only needs to thread a real id through.
const DefaultUserID uint = 1

type User struct {
	gorm.Model
	Username         string  `gorm:"uniqueIndex" json:"username"`
	Email            string  `gorm:"uniqueIndex" json:"email"`
	DailySugarLimitG float64 `gorm:"default:25" json:"daily_sugar_limit_g"`
}
