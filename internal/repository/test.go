package repository

import (
	"context"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
)

func CreateTest(ctx context.Context, test *models.Test) error {
	return database.DB.WithContext(ctx).Create(test).Error
}

func GetTestByID(ctx context.Context, id string) (*models.Test, error) {
	var test models.Test
	result := database.DB.WithContext(ctx).First(&test, "id = ?", id)
	return &test, result.Error
}

// ListActiveTests returns active tests in the catalogue order used by the
// original listing (category, then name).
func ListActiveTests(ctx context.Context) ([]models.Test, error) {
	var tests []models.Test
	err := database.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category, name").
		Find(&tests).Error
	return tests, err
}

func ListAllTests(ctx context.Context) ([]models.Test, error) {
	var tests []models.Test
	err := database.DB.WithContext(ctx).Order("category, name").Find(&tests).Error
	return tests, err
}

func CountTests(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Test{}).Count(&count).Error
	return count, err
}
