package model

// swagger:model User
type User struct {
	BaseModel
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Name     string `gorm:"size:100;default:''" json:"name"`
	Password string `gorm:"size:100;not null" json:"-"`
	RoleID   uint   `gorm:"default:1" json:"roleId"`
	Role     Role   `json:"role"`
	Tests    []Test `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin 判断用户是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role.Name == RoleAdministrator
}
