package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	subjectCatalogKey = "use_helper:subjects:catalog"
	subjectCatalogTTL = 5 * time.Minute
)

type SubjectRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewSubjectRepository(db *gorm.DB, rdb *redis.Client) *SubjectRepository {
	return &SubjectRepository{DB: db, Redis: rdb}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	if err := r.DB.Create(subject).Error; err != nil {
		return err
	}
	r.invalidateCatalog()
	return nil
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.Preload("Themes").First(&subject, id).Error
	return &subject, err
}

func (r *SubjectRepository) FindByName(name string) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.Where("name = ?", name).First(&subject).Error
	return &subject, err
}

// FindAll 科目目录走 Redis 缓存，管理端变更时失效
func (r *SubjectRepository) FindAll() ([]model.Subject, error) {
	ctx := context.Background()

	if cached, err := r.Redis.Get(ctx, subjectCatalogKey).Result(); err == nil {
		var subjects []model.Subject
		if err := json.Unmarshal([]byte(cached), &subjects); err == nil {
			return subjects, nil
		}
	}

	var subjects []model.Subject
	if err := r.DB.Preload("Themes").Find(&subjects).Error; err != nil {
		return nil, err
	}

	if data, err := json.Marshal(subjects); err == nil {
		r.Redis.Set(ctx, subjectCatalogKey, data, subjectCatalogTTL)
	}

	return subjects, nil
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	if err := r.DB.Save(subject).Error; err != nil {
		return err
	}
	r.invalidateCatalog()
	return nil
}

func (r *SubjectRepository) Delete(subject *model.Subject) error {
	if err := r.DB.Delete(subject).Error; err != nil {
		return err
	}
	r.invalidateCatalog()
	return nil
}

func (r *SubjectRepository) invalidateCatalog() {
	r.Redis.Del(context.Background(), subjectCatalogKey)
}
