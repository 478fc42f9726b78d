package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name   string  `gorm:"size:100;unique;not null" json:"name"`
	Themes []Theme `json:"themes,omitempty"`
}

func (Subject) TableName() string {
	return "subjects"
}
