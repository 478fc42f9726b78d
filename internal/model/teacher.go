package model

// swagger:model Teacher
type Teacher struct {
	BaseModel
	Name        string  `gorm:"size:100;not null" json:"name"`
	PhoneNumber string  `gorm:"size:20;unique;not null" json:"phoneNumber"`
	Themes      []Theme `gorm:"many2many:teacher_themes" json:"themes,omitempty"`
}

func (Teacher) TableName() string {
	return "teachers"
}
