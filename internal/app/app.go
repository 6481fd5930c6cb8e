package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codestreak_backend/internal/config"
	"codestreak_backend/internal/controller"
	"codestreak_backend/internal/repository"
	"codestreak_backend/internal/repository/memory"
	"codestreak_backend/internal/service"
	"codestreak_backend/pkg/database"
	"codestreak_backend/pkg/logger"
	"codestreak_backend/pkg/monitoring"
	"codestreak_backend/pkg/security"
	"codestreak_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	configCallbacks []func(*config.Config)
}

// stores 核心依赖的存储接口实现，按 database.driver 切换
type stores struct {
	questions   service.QuestionStore
	assignments service.DailyAssignmentStore
	progress    service.ProgressStore
	profiles    service.UserProfileStore
	admins      service.AdminStore
}

type services struct {
	auth          *service.AuthService
	dailyQuestion *service.DailyQuestionService
	progress      *service.ProgressService
	question      *service.QuestionService
	importer      *service.ImportService
	user          *service.UserService
	storage       *service.StorageService
}

type controllers struct {
	dailyQuestion *controller.DailyQuestionController
	progress      *controller.ProgressController
	question      *controller.QuestionController
	admin         *controller.AdminController
	health        *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热加载入口，通知所有注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initStores(db *gorm.DB) *stores {
	if db == nil {
		return &stores{
			questions:   memory.NewQuestionStore(),
			assignments: memory.NewAssignmentStore(),
			progress:    memory.NewProgressStore(),
			profiles:    memory.NewProfileStore(),
			admins:      memory.NewAdminStore(),
		}
	}
	return &stores{
		questions:   repository.NewQuestionRepository(db),
		assignments: repository.NewDailyAssignmentRepository(db),
		progress:    repository.NewProgressRepository(db),
		profiles:    repository.NewUserProfileRepository(db),
		admins:      repository.NewAdminRepository(db),
	}
}

func (a *App) initServices(st *stores, cfg *config.Config) *services {
	return &services{
		auth:          service.NewAuthService(st.admins, cfg),
		dailyQuestion: service.NewDailyQuestionService(st.questions, st.assignments),
		progress:      service.NewProgressService(st.progress),
		question:      service.NewQuestionService(st.questions),
		importer:      service.NewImportService(),
		user:          service.NewUserService(st.profiles, st.progress),
		storage:       service.NewStorageService(cfg),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		dailyQuestion: controller.NewDailyQuestionController(s.dailyQuestion),
		progress:      controller.NewProgressController(s.progress),
		question:      controller.NewQuestionController(s.question, s.importer, s.storage),
		admin:         controller.NewAdminController(s.auth, s.user),
		health:        controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	var db *gorm.DB
	if cfg.Database.Driver != "memory" {
		var err error
		db, err = database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}
	} else {
		logger.Log.Info("Running with in-memory stores")
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	st := app.initStores(db)
	services := app.initServices(st, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	if err := services.auth.SeedAdmins(); err != nil {
		logger.Log.Fatal("Failed to seed admin accounts", zap.Error(err))
	}

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("codestreak-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

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
