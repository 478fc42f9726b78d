package database

import (
	"fmt"
	"log"

	"github.com/antikleya/USEHelper/internal/config"
	"github.com/antikleya/USEHelper/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认跳过迁移，用 -migrate 参数强制执行
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Subject{},
		&model.Theme{},
		&model.Teacher{},
		&model.Question{},
		&model.Test{},
		&model.Answer{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认角色
	var roleCount int64
	db.Model(&model.Role{}).Count(&roleCount)
	if roleCount == 0 {
		defaultRoles := []model.Role{
			{BaseModel: model.BaseModel{ID: model.RoleIDUser}, Name: model.RoleUser},
			{BaseModel: model.BaseModel{ID: model.RoleIDAdministrator}, Name: model.RoleAdministrator},
		}
		for _, r := range defaultRoles {
			db.Create(&r)
		}
	}

	// 默认管理员账号
	var adminCount int64
	db.Model(&model.User{}).Where("role_id = ?", model.RoleIDAdministrator).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &model.User{
			Email:    "admin@mail.ru",
			Name:     "admin",
			Password: string(hashed),
			RoleID:   model.RoleIDAdministrator,
		}
		db.Create(admin)
	}

	return db, nil
}
