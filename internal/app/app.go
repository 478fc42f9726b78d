package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antikleya/USEHelper/internal/config"
	"github.com/antikleya/USEHelper/internal/controller"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/service"
	"github.com/antikleya/USEHelper/pkg/database"
	"github.com/antikleya/USEHelper/pkg/logger"
	"github.com/antikleya/USEHelper/pkg/monitoring"
	"github.com/antikleya/USEHelper/pkg/security"
	"github.com/antikleya/USEHelper/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user     *repository.UserRepository
	role     *repository.RoleRepository
	subject  *repository.SubjectRepository
	theme    *repository.ThemeRepository
	teacher  *repository.TeacherRepository
	question *repository.QuestionRepository
	test     *repository.TestRepository
	answer   *repository.AnswerRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	subject  *service.SubjectService
	theme    *service.ThemeService
	teacher  *service.TeacherService
	question *service.QuestionService
	test     *service.TestService
	answer   *service.AnswerService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	subject  *controller.SubjectController
	theme    *controller.ThemeController
	teacher  *controller.TeacherController
	question *controller.QuestionController
	test     *controller.TestController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		role:     repository.NewRoleRepository(db),
		subject:  repository.NewSubjectRepository(db, rdb),
		theme:    repository.NewThemeRepository(db),
		teacher:  repository.NewTeacherRepository(db),
		question: repository.NewQuestionRepository(db),
		test:     repository.NewTestRepository(db),
		answer:   repository.NewAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, repos.role, cfg)
	s.user = service.NewUserService(repos.user, repos.role)
	s.subject = service.NewSubjectService(repos.subject)
	s.theme = service.NewThemeService(repos.theme, repos.subject)
	s.teacher = service.NewTeacherService(repos.teacher, repos.theme)
	s.question = service.NewQuestionService(repos.question, repos.theme)
	s.test = service.NewTestService(repos.test, repos.theme, repos.question, cfg)
	s.answer = service.NewAnswerService(repos.answer, repos.test)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		subject:  controller.NewSubjectController(s.subject),
		theme:    controller.NewThemeController(s.theme),
		teacher:  controller.NewTeacherController(s.teacher),
		question: controller.NewQuestionController(s.question),
		test:     controller.NewTestController(s.test, s.answer),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("use-helper", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

// ReloadConfig 配置热更新回调：目前只替换组卷参数等运行时可变项
func (a *App) ReloadConfig(newCfg *config.Config) {
	a.Config.Quiz = newCfg.Quiz
	a.Config.RateLimit = newCfg.RateLimit
	logger.Log.Info("Config reloaded",
		zap.Int("questionsPerTest", newCfg.Quiz.QuestionsPerTest))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
