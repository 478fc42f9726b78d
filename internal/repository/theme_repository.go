package repository

import (
	"github.com/antikleya/USEHelper/internal/model"
	"gorm.io/gorm"
)

type ThemeRepository struct {
	DB *gorm.DB
}

func NewThemeRepository(db *gorm.DB) *ThemeRepository {
	return &ThemeRepository{DB: db}
}

func (r *ThemeRepository) Create(theme *model.Theme) error {
	return r.DB.Create(theme).Error
}

// FindByID 主题查询始终带科目范围
func (r *ThemeRepository) FindByID(subjectID, themeID uint) (*model.Theme, error) {
	var theme model.Theme
	err := r.DB.Where("id = ? AND subject_id = ?", themeID, subjectID).First(&theme).Error
	return &theme, err
}

func (r *ThemeRepository) FindByIDOnly(themeID uint) (*model.Theme, error) {
	var theme model.Theme
	err := r.DB.First(&theme, themeID).Error
	return &theme, err
}

func (r *ThemeRepository) FindByName(subjectID uint, name string) (*model.Theme, error) {
	var theme model.Theme
	err := r.DB.Where("subject_id = ? AND name = ?", subjectID, name).First(&theme).Error
	return &theme, err
}

func (r *ThemeRepository) FindAllBySubject(subjectID uint) ([]model.Theme, error) {
	var themes []model.Theme
	err := r.DB.Where("subject_id = ?", subjectID).Find(&themes).Error
	return themes, err
}

func (r *ThemeRepository) Update(theme *model.Theme) error {
	return r.DB.Save(theme).Error
}

func (r *ThemeRepository) Delete(theme *model.Theme) error {
	// 先清掉与教师的关联，再删主题
	if err := r.DB.Model(theme).Association("Teachers").Clear(); err != nil {
		return err
	}
	return r.DB.Delete(theme).Error
}
