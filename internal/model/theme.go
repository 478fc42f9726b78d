package model

// swagger:model Theme
type Theme struct {
	BaseModel
	Name        string     `gorm:"size:100;not null;index" json:"name"`
	Description string     `gorm:"size:500;not null" json:"description"`
	SubjectID   uint       `gorm:"index;not null" json:"subjectId"`
	Questions   []Question `json:"questions,omitempty"`
	Teachers    []Teacher  `gorm:"many2many:teacher_themes" json:"teachers,omitempty"`
}

func (Theme) TableName() string {
	return "themes"
}
