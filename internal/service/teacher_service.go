package service

import (
	"errors"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"gorm.io/gorm"
)

type TeacherService struct {
	TeacherRepo *repository.TeacherRepository
	ThemeRepo   *repository.ThemeRepository
}

func NewTeacherService(teacherRepo *repository.TeacherRepository, themeRepo *repository.ThemeRepository) *TeacherService {
	return &TeacherService{TeacherRepo: teacherRepo, ThemeRepo: themeRepo}
}

type TeacherRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	ThemeIDs    []uint `json:"themeIds"`
}

// resolveThemes 所有主题ID必须存在，否则整体失败
func (s *TeacherService) resolveThemes(themeIDs []uint) ([]model.Theme, error) {
	themes := make([]model.Theme, 0, len(themeIDs))
	for _, id := range themeIDs {
		theme, err := s.ThemeRepo.FindByIDOnly(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrThemeNotFound
		} else if err != nil {
			return nil, err
		}
		themes = append(themes, *theme)
	}
	return themes, nil
}

func (s *TeacherService) CreateTeacher(req TeacherRequest) (*model.Teacher, error) {
	if _, err := s.TeacherRepo.FindByPhone(req.PhoneNumber); err == nil {
		return nil, util.ErrPhoneRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	themes, err := s.resolveThemes(req.ThemeIDs)
	if err != nil {
		return nil, err
	}

	teacher := &model.Teacher{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Themes:      themes,
	}
	if err := s.TeacherRepo.Create(teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) ListTeachers() ([]model.Teacher, error) {
	return s.TeacherRepo.FindAll()
}

func (s *TeacherService) GetTeacher(id uint) (*model.Teacher, error) {
	teacher, err := s.TeacherRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTeacherNotFound
	}
	return teacher, err
}

func (s *TeacherService) UpdateTeacher(id uint, req TeacherRequest) (*model.Teacher, error) {
	teacher, err := s.GetTeacher(id)
	if err != nil {
		return nil, err
	}

	themes, err := s.resolveThemes(req.ThemeIDs)
	if err != nil {
		return nil, err
	}

	teacher.Name = req.Name
	teacher.PhoneNumber = req.PhoneNumber

	if err := s.TeacherRepo.Update(teacher); err != nil {
		return nil, err
	}
	if err := s.TeacherRepo.ReplaceThemes(teacher, themes); err != nil {
		return nil, err
	}

	return s.GetTeacher(id)
}

func (s *TeacherService) DeleteTeacher(id uint) error {
	teacher, err := s.GetTeacher(id)
	if err != nil {
		return err
	}
	return s.TeacherRepo.Delete(teacher)
}
