package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gameroom/backoffice/internal/adapters/config"
	"github.com/gameroom/backoffice/internal/adapters/http/controllers"
	"github.com/gameroom/backoffice/internal/adapters/http/middleware"
	"github.com/gameroom/backoffice/internal/core/service"
)

type Router struct {
	healthController   *controllers.HealthController
	authController     *controllers.AuthController
	saleController     *controllers.SaleController
	productController  *controllers.ProductController
	preorderController *controllers.PreorderController
	sessionController  *controllers.SessionController
	reportController   *controllers.ReportController
	authService        *service.AuthService
	rateLimiter        middleware.RateLimiter
	allowedOrigins     []string
}

func NewRouter(
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	saleController *controllers.SaleController,
	productController *controllers.ProductController,
	preorderController *controllers.PreorderController,
	sessionController *controllers.SessionController,
	reportController *controllers.ReportController,
	authService *service.AuthService,
	rateLimiter middleware.RateLimiter,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		saleController:     saleController,
		productController:  productController,
		preorderController: preorderController,
		sessionController:  sessionController,
		reportController:   reportController,
		authService:        authService,
		rateLimiter:        rateLimiter,
		allowedOrigins:     allowedOrigins,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/auth/register", middleware.RateLimit(rl, 5, 1*time.Minute), r.authController.Register)
		v1Group.POST("/auth/login", middleware.RateLimit(rl, 10, 1*time.Minute), r.authController.Login)

		protected := v1Group.Group("")
		protected.Use(middleware.RequireAuth(r.authService))
		{
			protected.GET("/auth/me", r.authController.Me)

			protected.POST("/ventas", middleware.RateLimit(rl, 15, 1*time.Minute), r.saleController.Checkout)
			protected.GET("/ventas", r.saleController.GetSales)
			protected.GET("/ventas/stats", r.saleController.GetSalesStats)
			protected.GET("/ventas/:id", r.saleController.GetSaleByID)

			protected.POST("/inventario", r.productController.CreateProduct)
			protected.GET("/inventario", r.productController.GetProducts)
			protected.GET("/inventario/:id", r.productController.GetProductByID)
			protected.PUT("/inventario/:id", r.productController.UpdateProduct)
			protected.DELETE("/inventario/:id", r.productController.DeleteProduct)

			protected.POST("/apartados", r.preorderController.CreatePreorder)
			protected.GET("/apartados", r.preorderController.GetPreorders)
			protected.GET("/apartados/:id", r.preorderController.GetPreorderByID)
			protected.PATCH("/apartados/:id/estado", middleware.RateLimit(rl, 20, 1*time.Minute), r.preorderController.UpdatePreorderStatus)
			protected.DELETE("/apartados/:id", r.preorderController.DeletePreorder)

			protected.POST("/sesiones", r.sessionController.CreateSession)
			protected.GET("/sesiones", r.sessionController.GetSessions)
			protected.GET("/sesiones/:id", r.sessionController.GetSessionByID)
			protected.PUT("/sesiones/:id", r.sessionController.UpdateSession)
			protected.DELETE("/sesiones/:id", r.sessionController.DeleteSession)

			protected.GET("/reportes/resumen", r.reportController.GetSummary)
			protected.GET("/reportes/mas-vendidos", r.reportController.GetTopProducts)
			protected.GET("/reportes/menos-vendidos", r.reportController.GetLeastSoldProducts)
			protected.GET("/reportes/stock-bajo", r.reportController.GetLowStock)
			protected.GET("/reportes/ventas-por-dia", r.reportController.GetSalesByDay)
			protected.GET("/reportes/apartados", r.reportController.GetPreorderStats)
		}
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
