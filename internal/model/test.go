package model

import "time"

// Test 一次生成的测验。题目集合在生成时确定，之后只读
// swagger:model Test
type Test struct {
	BaseModel
	Date      time.Time  `gorm:"not null" json:"date"`
	UserID    uint       `gorm:"index;not null" json:"userId"`
	Questions []Question `gorm:"many2many:test_questions" json:"questions,omitempty"`
	Answers   []Answer   `json:"answers,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}
