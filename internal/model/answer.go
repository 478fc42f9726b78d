package model

// Answer 用户对某测验中某题目的作答，(test_id, question_id) 全局唯一
// swagger:model Answer
type Answer struct {
	BaseModel
	GivenAnswer string `gorm:"size:500;default:''" json:"givenAnswer"`
	Mark        int    `gorm:"not null" json:"mark"`
	TestID      uint   `gorm:"uniqueIndex:idx_answers_test_question;not null" json:"testId"`
	QuestionID  uint   `gorm:"uniqueIndex:idx_answers_test_question;not null" json:"questionId"`
}

func (Answer) TableName() string {
	return "answers"
}
