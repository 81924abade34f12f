package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm over a sqlmock connection so store logic can be
// exercised without a postgres instance.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func emptyTrackerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "food_name", "portion_g", "sugar_g", "calories", "date"})
}

func trackerRows(date string, sugarAndCalories ...float64) *sqlmock.Rows {
	rows := emptyTrackerRows()
	for i := 0; i+1 < len(sugarAndCalories); i += 2 {
		rows.AddRow(i+1, 1, "food", 100.0, sugarAndCalories[i], sugarAndCalories[i+1], date)
	}
	return rows
}

func emptyInsightRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "date", "total_sugar_g", "total_calories", "food_count", "exceeded_limit"})
}
