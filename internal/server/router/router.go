package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/server/handlers"
)

// Handlers bundles every HTTP adapter the router mounts.
type Handlers struct {
	Calculator *handlers.CalculatorHandler
	Expenses   *handlers.ExpenseHandler
	Plan       *handlers.PlanHandler
	Learning   *handlers.LearningHandler
	Market     *handlers.MarketHandler
	Alerts     *handlers.AlertHandler
	Reports    *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/calculator/profit", h.Calculator.Profit)
	api.POST("/calculator/risk", h.Calculator.Risk)

	api.GET("/expenses", h.Expenses.List)
	api.POST("/expenses", h.Expenses.Create)
	api.PATCH("/expenses/:id", h.Expenses.Update)
	api.DELETE("/expenses/:id", h.Expenses.Delete)

	api.GET("/profit-plan", h.Plan.Get)
	api.PUT("/profit-plan", h.Plan.Save)

	api.GET("/learning/modules", h.Learning.Modules)
	api.GET("/learning/progress", h.Learning.Progress)
	api.POST("/learning/progress/:moduleID/:lessonID", h.Learning.Complete)

	api.GET("/market/prices", h.Market.Prices)
	api.GET("/market/prices/:crop", h.Market.Price)
	api.GET("/market/outlook", h.Market.Outlook)

	api.GET("/price-alerts", h.Alerts.List)
	api.POST("/price-alerts", h.Alerts.Create)
	api.DELETE("/price-alerts/:id", h.Alerts.Delete)
	api.POST("/price-alerts/sweep", h.Alerts.Sweep)

	api.GET("/reports/expenses/summary", h.Reports.Summary)
	api.POST("/reports/expenses", h.Reports.Export)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
