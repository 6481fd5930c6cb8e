package app

import (
	"codestreak_backend/docs"
	"codestreak_backend/internal/config"
	"codestreak_backend/internal/middleware"
	"codestreak_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/admin/login", c.admin.Login)
	}

	// 2. 学生接口
	student := router.Group("/api/student")
	{
		student.GET("/daily-question", c.dailyQuestion.GetDailyQuestion)
		student.GET("/progress", c.progress.GetProgress)
		student.POST("/progress", c.progress.RecordCompletion)
	}

	// 3. 管理后台接口（JWT 门禁）
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))
	{
		admin.GET("/questions", c.question.ListQuestions)
		admin.POST("/questions", c.question.SaveQuestions)
		admin.POST("/upload-questions", c.question.UploadQuestions)
		admin.GET("/users", c.admin.GetUsers)
		admin.GET("/stats", c.admin.GetStats)
		admin.PUT("/users/:id", c.admin.UpdateUser)
		admin.DELETE("/users/:id", c.admin.DeleteUser)
	}
}
