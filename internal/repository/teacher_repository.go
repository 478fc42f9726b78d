package repository

import (
	"github.com/antikleya/USEHelper/internal/model"
	"gorm.io/gorm"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(teacher *model.Teacher) error {
	return r.DB.Create(teacher).Error
}

func (r *TeacherRepository) FindByID(id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.DB.Preload("Themes").First(&teacher, id).Error
	return &teacher, err
}

func (r *TeacherRepository) FindByPhone(phoneNumber string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.DB.Where("phone_number = ?", phoneNumber).First(&teacher).Error
	return &teacher, err
}

func (r *TeacherRepository) FindAll() ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.DB.Preload("Themes").Find(&teachers).Error
	return teachers, err
}

func (r *TeacherRepository) Update(teacher *model.Teacher) error {
	return r.DB.Save(teacher).Error
}

// ReplaceThemes 整体替换教师与主题的关联
func (r *TeacherRepository) ReplaceThemes(teacher *model.Teacher, themes []model.Theme) error {
	return r.DB.Model(teacher).Association("Themes").Replace(themes)
}

func (r *TeacherRepository) Delete(teacher *model.Teacher) error {
	if err := r.DB.Model(teacher).Association("Themes").Clear(); err != nil {
		return err
	}
	return r.DB.Delete(teacher).Error
}
