package model

// Question 题目。多答案题的标准答案用 "; " 连接多个答案项
// swagger:model Question
type Question struct {
	BaseModel
	Text    string `gorm:"type:text;not null" json:"text"`
	Answer  string `gorm:"size:500;not null" json:"answer"`
	MaxMark int    `gorm:"not null" json:"maxMark"`
	ThemeID uint   `gorm:"index;not null" json:"themeId"`
	Tests   []Test `gorm:"many2many:test_questions" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
