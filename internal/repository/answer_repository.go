package repository

import (
	"github.com/antikleya/USEHelper/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// Upsert 按 (test_id, question_id) 原子写入：已存在则覆盖答案文本和得分。
// 依赖 answers 表的复合唯一索引，并发重复提交也不会产生第二行
func (r *AnswerRepository) Upsert(answer *model.Answer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "test_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"given_answer", "mark", "updated_at"}),
	}).Create(answer).Error
}

func (r *AnswerRepository) FindByTestAndQuestion(testID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.Where("test_id = ? AND question_id = ?", testID, questionID).First(&answer).Error
	return &answer, err
}

func (r *AnswerRepository) FindAllByTest(testID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("test_id = ?", testID).Find(&answers).Error
	return answers, err
}
