package repository

import (
	"github.com/antikleya/USEHelper/internal/model"
	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

// Create 一次性落库测验及其题目集合
func (r *TestRepository) Create(test *model.Test) error {
	return r.DB.Create(test).Error
}

// FindByIDForUser 测验只对其所有者可见
func (r *TestRepository) FindByIDForUser(testID, userID uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.Preload("Questions").Preload("Answers").
		Where("id = ? AND user_id = ?", testID, userID).
		First(&test).Error
	return &test, err
}

func (r *TestRepository) FindAllByUser(userID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Preload("Questions").Preload("Answers").
		Where("user_id = ?", userID).
		Find(&tests).Error
	return tests, err
}

func (r *TestRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Test{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
