package repository

import (
	"github.com/antikleya/USEHelper/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Find(&questions).Error
	return questions, err
}

// FindAllByTheme 返回主题下的完整题目池，随机抽样在进程内完成
func (r *QuestionRepository) FindAllByTheme(themeID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("theme_id = ?", themeID).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(question *model.Question) error {
	if err := r.DB.Model(question).Association("Tests").Clear(); err != nil {
		return err
	}
	return r.DB.Delete(question).Error
}
