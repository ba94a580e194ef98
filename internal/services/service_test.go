package services

import (
	"testing"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points the global connection at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Athlete{},
		&models.Test{},
		&models.Performance{},
		&models.Badge{},
		&models.AthleteBadge{},
		&models.AthleteStats{},
		&models.Notification{},
	))

	database.DB = db
}

func createAthlete(t *testing.T, firstName, lastName string) *models.Athlete {
	t.Helper()

	user := &models.User{
		Username: firstName + "." + lastName,
		Email:    firstName + "." + lastName + "@example.com",
		Role:     models.RoleAthlete,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, database.DB.Create(user).Error)

	athlete := &models.Athlete{
		UserID:    user.ID,
		FirstName: firstName,
		LastName:  lastName,
		Gender:    models.GenderMale,
		State:     "Maharashtra",
		District:  "Pune",
		Sport:     models.SportAthletics,
		Category:  models.CategorySprints,
		IsActive:  true,
	}
	require.NoError(t, database.DB.Create(athlete).Error)
	require.NoError(t, database.DB.Create(&models.AthleteStats{AthleteID: athlete.ID}).Error)
	return athlete
}

func createTest(t *testing.T, name, unit string, direction models.Direction) *models.Test {
	t.Helper()

	test := &models.Test{
		Name:      name,
		Unit:      unit,
		Category:  models.CategorySprints,
		Direction: direction,
		IsActive:  true,
	}
	require.NoError(t, database.DB.Create(test).Error)
	return test
}

func createBadge(t *testing.T, name string, points int, active bool) *models.Badge {
	t.Helper()

	badge := &models.Badge{
		Name:      name,
		BadgeType: models.BadgeMilestone,
		Points:    points,
		IsActive:  active,
	}
	require.NoError(t, database.DB.Create(badge).Error)
	return badge
}

// addPerformance inserts a performance with an explicit creation time so
// tests can control tie ordering.
func addPerformance(t *testing.T, athleteID, testID string, value float64, status models.PerformanceStatus, createdAt time.Time) *models.Performance {
	t.Helper()

	perf := &models.Performance{
		TestID:    testID,
		AthleteID: athleteID,
		Value:     value,
		Status:    status,
		CreatedAt: createdAt,
	}
	require.NoError(t, database.DB.Create(perf).Error)
	return perf
}
