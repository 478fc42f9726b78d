package service

import (
	"errors"

	"github.com/antikleya/USEHelper/internal/config"
	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	RoleRepo *repository.RoleRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, roleRepo *repository.RoleRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		Cfg:      cfg,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=4"`
}

// Register 注册新用户并直接返回访问令牌
func (s *AuthService) Register(req RegisterRequest) (string, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// 默认角色按名称解析，不依赖种子数据的主键取值
	role, err := s.RoleRepo.FindByName(model.RoleUser)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashedPassword),
		RoleID:   role.ID,
	}

	if err := s.UserRepo.Create(user); err != nil {
		return "", err
	}

	// 重新加载以带上角色信息
	created, err := s.UserRepo.FindByID(user.ID)
	if err != nil {
		return "", err
	}

	return util.GenerateJWT(created, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
