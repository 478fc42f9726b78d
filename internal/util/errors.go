package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrPhoneRegistered  = errors.New("该手机号已被使用")
	ErrPermissionDenied = errors.New("permission denied")
	ErrSubjectExists    = errors.New("subject already exists")
	ErrSubjectNotFound  = errors.New("subject does not exist")
	ErrThemeNotFound    = errors.New("theme does not exist")
	ErrTeacherNotFound  = errors.New("teacher does not exist")
	ErrQuestionNotFound = errors.New("question does not exist")
	ErrTestNotFound     = errors.New("test does not exist")
	ErrEmptyThemeList   = errors.New("theme list must not be empty")
	ErrBadThemeName     = errors.New("incorrect theme name")
)
