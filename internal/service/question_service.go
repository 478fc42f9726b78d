package service

import (
	"errors"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	ThemeRepo    *repository.ThemeRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, themeRepo *repository.ThemeRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo, ThemeRepo: themeRepo}
}

type QuestionRequest struct {
	Text    string `json:"text" binding:"required"`
	Answer  string `json:"answer" binding:"required"`
	MaxMark int    `json:"maxMark" binding:"required,min=1"`
}

func (s *QuestionService) CreateQuestion(themeID uint, req QuestionRequest) (*model.Question, error) {
	if _, err := s.ThemeRepo.FindByIDOnly(themeID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrThemeNotFound
	} else if err != nil {
		return nil, err
	}

	question := &model.Question{
		Text:    req.Text,
		Answer:  req.Answer,
		MaxMark: req.MaxMark,
		ThemeID: themeID,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) ListQuestions() ([]model.Question, error) {
	return s.QuestionRepo.FindAll()
}

func (s *QuestionService) GetQuestion(id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return question, err
}

func (s *QuestionService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	question, err := s.GetQuestion(id)
	if err != nil {
		return nil, err
	}

	question.Text = req.Text
	question.Answer = req.Answer
	question.MaxMark = req.MaxMark

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	question, err := s.GetQuestion(id)
	if err != nil {
		return err
	}
	return s.QuestionRepo.Delete(question)
}
