package service

import (
	"errors"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"gorm.io/gorm"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

type SubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *SubjectService) CreateSubject(req SubjectRequest) (*model.Subject, error) {
	if _, err := s.SubjectRepo.FindByName(req.Name); err == nil {
		return nil, util.ErrSubjectExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subject := &model.Subject{Name: req.Name}
	if err := s.SubjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) ListSubjects() ([]model.Subject, error) {
	return s.SubjectRepo.FindAll()
}

func (s *SubjectService) GetSubject(id uint) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	}
	return subject, err
}

func (s *SubjectService) UpdateSubject(id uint, req SubjectRequest) (*model.Subject, error) {
	subject, err := s.GetSubject(id)
	if err != nil {
		return nil, err
	}

	subject.Name = req.Name
	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) DeleteSubject(id uint) error {
	subject, err := s.GetSubject(id)
	if err != nil {
		return err
	}
	return s.SubjectRepo.Delete(subject)
}
