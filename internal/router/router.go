package router

import (
	"fmt"

	"github.com/jipgi-intake/internal/cache"
	"github.com/jipgi-intake/internal/config"
	adminhandlers "github.com/jipgi-intake/internal/http/handlers/admin"
	publichandlers "github.com/jipgi-intake/internal/http/handlers/public"
	vendorhandlers "github.com/jipgi-intake/internal/http/handlers/vendor"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 라우터 초기화
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	vendorHandler := vendorhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", cache.Prefix()),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	redisClient := cache.Client()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 접수 화면 (인증 없음)
		public := apiV1.Group("/public")
		{
			public.GET("/form-options", publicHandler.GetFormOptions)
			public.POST("/requests", publicHandler.SubmitRequest)
			public.GET("/requests", publicHandler.ListRequests)
		}

		// 업체 처리 화면
		vendor := apiV1.Group("/vendor")
		{
			vendor.POST("/login", RateLimitMiddleware(redisClient, loginRule), vendorHandler.Login)

			authorized := vendor.Use(VendorAuthMiddleware(c.AuthService))
			{
				authorized.GET("/requests", vendorHandler.ListMyRequests)
				authorized.POST("/requests/:id/schedule", vendorHandler.ScheduleRequest)
			}
		}

		// 데이터 관리 화면
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule), adminHandler.Login)

			authorized := admin.Use(AdminAuthMiddleware(c.AuthService))
			{
				authorized.GET("/stats/completion", adminHandler.GetCompletionStats)
				authorized.GET("/requests", adminHandler.ListRequests)
				authorized.DELETE("/requests/:id", adminHandler.DeleteRequest)
				authorized.GET("/routing-rules", adminHandler.ListRoutingRules)
				authorized.PUT("/routing-rules", adminHandler.ReplaceRoutingRules)
				authorized.POST("/routing-rules/upsert", adminHandler.UpsertRoutingRule)
				authorized.POST("/archive/sweep", adminHandler.SweepArchive)
				authorized.GET("/archive", adminHandler.ListArchive)
				authorized.POST("/archive/clear", adminHandler.ClearArchive)
			}
		}
	}

	return r
}
