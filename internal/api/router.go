package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/delivery-insights-go/internal/auth"
	"github.com/jengzang/delivery-insights-go/internal/config"
	"github.com/jengzang/delivery-insights-go/internal/handler"
	"github.com/jengzang/delivery-insights-go/internal/metrics"
	"github.com/jengzang/delivery-insights-go/internal/middleware"
	"github.com/jengzang/delivery-insights-go/internal/service"
)

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Config    *config.Config
	Logger    *slog.Logger
	Dashboard *service.DashboardService
	Metrics   *metrics.Metrics
}

// SetupRouter 设置路由
func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		report := deps.Dashboard.Report()
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Delivery Insights API is running",
			"orders":   report.Load.KeptRows,
			"loadedAt": report.LoadedAt,
		})
	})

	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)

	// API 路由组
	api := r.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	if cfg.Auth.Enabled {
		api.Use(middleware.Auth(TokenService(cfg.Auth)))
	}
	{
		api.GET("/filters", dashboardHandler.GetFilterOptions)
		api.GET("/dataset/report", dashboardHandler.GetDatasetReport)

		views := api.Group("/views")
		{
			views.GET("/:name", dashboardHandler.GetView)
		}
	}

	return r
}

// TokenService builds the bearer token service from auth config
func TokenService(cfg config.AuthConfig) auth.TokenService {
	return auth.TokenService{
		Secret:   []byte(cfg.Secret),
		Issuer:   cfg.Issuer,
		Duration: cfg.TokenTTL,
	}
}
