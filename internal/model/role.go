package model

type RoleName string

const (
	RoleUser          RoleName = "user"
	RoleAdministrator RoleName = "administrator"
)

// 角色表的固定主键，由首次迁移时的种子数据保证
const (
	RoleIDUser          uint = 1
	RoleIDAdministrator uint = 2
)

// swagger:model Role
type Role struct {
	BaseModel
	Name RoleName `gorm:"size:50;unique;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}
