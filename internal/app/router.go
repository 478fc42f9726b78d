package app

import (
	"github.com/antikleya/USEHelper/internal/config"
	"github.com/antikleya/USEHelper/internal/middleware"
	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 用户
		authGroup.GET("/roles", c.user.ListRoles)
		authGroup.GET("/users", c.user.ListUsers)
		authGroup.GET("/users/:id", c.user.GetUser)
		authGroup.PUT("/users/:id", c.user.UpdateUser)
		authGroup.DELETE("/users/:id", c.user.DeleteUser)

		// 目录只读接口
		authGroup.GET("/subjects", c.subject.ListSubjects)
		authGroup.GET("/subjects/:subjectId", c.subject.GetSubject)
		authGroup.GET("/subjects/:subjectId/themes", c.theme.ListThemes)
		authGroup.GET("/subjects/:subjectId/themes/:themeId", c.theme.GetTheme)
		authGroup.GET("/teachers", c.teacher.ListTeachers)
		authGroup.GET("/teachers/:id", c.teacher.GetTeacher)
		authGroup.GET("/questions", c.question.ListQuestions)
		authGroup.GET("/questions/:id", c.question.GetQuestion)

		// 测验
		authGroup.POST("/tests", c.test.GenerateTest)
		authGroup.GET("/tests", c.test.ListTests)
		authGroup.GET("/tests/:id", c.test.GetTest)
		authGroup.PUT("/tests/:id/questions/:questionId/answer", c.test.SubmitAnswer)
	}

	// 3. 管理员接口：目录类数据的全部变更
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdministrator))
	{
		admin.POST("/subjects", c.subject.CreateSubject)
		admin.PUT("/subjects/:subjectId", c.subject.UpdateSubject)
		admin.DELETE("/subjects/:subjectId", c.subject.DeleteSubject)

		admin.POST("/subjects/:subjectId/themes", c.theme.CreateTheme)
		admin.PUT("/subjects/:subjectId/themes/:themeId", c.theme.UpdateTheme)
		admin.DELETE("/subjects/:subjectId/themes/:themeId", c.theme.DeleteTheme)

		admin.POST("/teachers", c.teacher.CreateTeacher)
		admin.PUT("/teachers/:id", c.teacher.UpdateTeacher)
		admin.DELETE("/teachers/:id", c.teacher.DeleteTeacher)

		admin.POST("/themes/:themeId/questions", c.question.CreateQuestion)
		admin.PUT("/questions/:id", c.question.UpdateQuestion)
		admin.DELETE("/questions/:id", c.question.DeleteQuestion)
	}
}
