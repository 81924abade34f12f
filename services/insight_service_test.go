package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajit0013/SugarHealthTracker/models"
)

const testDate = "2024-06-01"

func TestRecomputeDailyNothingToDo(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "daily_tracker"`).
		WillReturnRows(emptyTrackerRows())

	updated, err := NewInsightService(db).RecomputeDaily(1, testDate)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeDailyCreatesInsight(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "daily_tracker"`).
		WillReturnRows(trackerRows(testDate, 26.5, 105.0))
	mock.ExpectQuery(`SELECT \* FROM "sugar_insights"`).
		WillReturnRows(emptyInsightRows())
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sugar_insights"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			1, testDate, 26.5, 105.0, 1, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	updated, err := NewInsightService(db).RecomputeDaily(1, testDate)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeDailyIsIdempotentUpsert(t *testing.T) {
	db, mock := newMockDB(t)

	// Second recompute over an unchanged entry set updates the existing row
	// in place with the same totals instead of inserting a duplicate.
	mock.ExpectQuery(`SELECT \* FROM "daily_tracker"`).
		WillReturnRows(trackerRows(testDate, 10.0, 40.0, 8.0, 32.0))
	mock.ExpectQuery(`SELECT \* FROM "sugar_insights"`).
		WillReturnRows(emptyInsightRows().AddRow(5, 1, testDate, 18.0, 72.0, 2, false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "sugar_insights"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := NewInsightService(db).RecomputeDaily(1, testDate)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentInsights(t *testing.T) {
	db, mock := newMockDB(t)

	// Only 3 days of history exist; the result carries exactly those 3 rows,
	// never zero-filled placeholders for the missing days.
	mock.ExpectQuery(`SELECT \* FROM "sugar_insights"`).
		WillReturnRows(emptyInsightRows().
			AddRow(3, 1, "2024-06-03", 30.0, 500.0, 4, true).
			AddRow(2, 1, "2024-06-02", 12.0, 300.0, 2, false).
			AddRow(1, 1, "2024-06-01", 5.0, 150.0, 1, false))

	insights, err := NewInsightService(db).Recent(1, 7)
	require.NoError(t, err)
	require.Len(t, insights, 3)
	assert.Equal(t, "2024-06-03", insights[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRate(t *testing.T) {
	insights := []models.SugarInsight{
		{ExceededLimit: true},
		{ExceededLimit: false},
		{ExceededLimit: false},
	}
	// Denominator is the number of returned rows, not the requested span.
	assert.InDelta(t, 2.0/3.0*100, ComplianceRate(insights), 1e-9)
	assert.Zero(t, ComplianceRate(nil))
}

func TestSummarize(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "daily_tracker"`).
		WillReturnRows(trackerRows(testDate, 26.5, 105.0))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "daily_sugar_limit_g"}).
			AddRow(1, "default", 25.0))

	sum, err := NewInsightService(db).Summarize(1, testDate)
	require.NoError(t, err)
	assert.InDelta(t, 26.5, sum.TotalSugarG, 1e-9)
	assert.InDelta(t, 106.0, sum.PercentOfLimit, 1e-9)
	assert.InDelta(t, 6.625, sum.Teaspoons, 1e-9)
	assert.Equal(t, 1, sum.FoodCount)
	assert.Equal(t, "You've exceeded the recommended daily sugar limit!", sum.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
