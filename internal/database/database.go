package database

import (
	"fmt"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/config"
	logging "github.com/Adi-Yadav1/Aarohan-Backend/internal/logging"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// Composite indexes on the hot query paths are handled separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Athlete{},
		&models.Test{},
		&models.Performance{},
		&models.Badge{},
		&models.AthleteBadge{},
		&models.AthleteStats{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// The leaderboard filters on (test_id, status); the stats aggregator
	// scans (athlete_id, created_at).
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_performances_test_status ON performances (test_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_performances_athlete_created ON performances (athlete_id, created_at);`,
	}
	for _, stmt := range indexes {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatal("Failed to create custom index", zap.Error(err))
		}
	}
	log.Info("Custom indexes ensured successfully.")
}
