package service

import (
	"errors"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"gorm.io/gorm"
)

type ThemeService struct {
	ThemeRepo   *repository.ThemeRepository
	SubjectRepo *repository.SubjectRepository
}

func NewThemeService(themeRepo *repository.ThemeRepository, subjectRepo *repository.SubjectRepository) *ThemeService {
	return &ThemeService{ThemeRepo: themeRepo, SubjectRepo: subjectRepo}
}

type ThemeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (s *ThemeService) CreateTheme(subjectID uint, req ThemeRequest) (*model.Theme, error) {
	if _, err := s.SubjectRepo.FindByID(subjectID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	} else if err != nil {
		return nil, err
	}

	theme := &model.Theme{
		Name:        req.Name,
		Description: req.Description,
		SubjectID:   subjectID,
	}
	if err := s.ThemeRepo.Create(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *ThemeService) ListThemes(subjectID uint) ([]model.Theme, error) {
	if _, err := s.SubjectRepo.FindByID(subjectID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	} else if err != nil {
		return nil, err
	}
	return s.ThemeRepo.FindAllBySubject(subjectID)
}

func (s *ThemeService) GetTheme(subjectID, themeID uint) (*model.Theme, error) {
	theme, err := s.ThemeRepo.FindByID(subjectID, themeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrThemeNotFound
	}
	return theme, err
}

func (s *ThemeService) UpdateTheme(subjectID, themeID uint, req ThemeRequest) (*model.Theme, error) {
	theme, err := s.GetTheme(subjectID, themeID)
	if err != nil {
		return nil, err
	}

	theme.Name = req.Name
	theme.Description = req.Description

	if err := s.ThemeRepo.Update(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *ThemeService) DeleteTheme(subjectID, themeID uint) error {
	theme, err := s.GetTheme(subjectID, themeID)
	if err != nil {
		return err
	}
	return s.ThemeRepo.Delete(theme)
}
