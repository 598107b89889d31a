// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/loanpesa/loanpesa-backend/internal/config"
	"github.com/loanpesa/loanpesa-backend/internal/handlers"
	"github.com/loanpesa/loanpesa-backend/internal/middleware"
	"github.com/loanpesa/loanpesa-backend/internal/services"
	"github.com/loanpesa/loanpesa-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	companyService := services.NewCompanyService(db, cfg)
	applicationService := services.NewApplicationService(db, companyService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	companyHandler := handlers.NewCompanyHandler(companyService, storageService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	publicHandler := handlers.NewPublicHandler(companyService, applicationService, notificationService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Company settings routes (dashboard)
		company := v1.Group("/company")
		company.Use(middleware.AuthRequired())
		{
			company.GET("", companyHandler.GetCompany)

			// Settings mutations are admin only; staff can read
			admin := company.Group("")
			admin.Use(middleware.AdminRequired())
			{
				admin.PUT("/settings", companyHandler.UpdateSettings)
				admin.POST("/loan-types", companyHandler.AddLoanType)
				admin.DELETE("/loan-types/:name", companyHandler.RemoveLoanType)
				admin.POST("/loan-periods", companyHandler.AddLoanPeriod)
				admin.DELETE("/loan-periods/:months", companyHandler.RemoveLoanPeriod)
				admin.POST("/public-link", companyHandler.GeneratePublicLink)
				admin.POST("/logo", middleware.UploadRateLimit(), companyHandler.UploadLogo)
			}
		}

		// Application review routes (dashboard)
		applications := v1.Group("/applications")
		applications.Use(middleware.AuthRequired())
		{
			applications.GET("", applicationHandler.GetApplications)
			applications.GET("/stats", applicationHandler.GetStats)
			applications.GET("/export", applicationHandler.ExportCSV)
			applications.GET("/:id", applicationHandler.GetApplication)
			applications.PUT("/:id/status", middleware.AdminRequired(), applicationHandler.UpdateStatus)
		}

		// Public intake routes, reached through a company's shared link
		public := v1.Group("/public")
		public.Use(middleware.OptionalAuth())
		{
			public.GET("/apply/:companyId", publicHandler.GetForm)
			public.POST("/apply/:companyId", middleware.SubmitRateLimit(), publicHandler.SubmitApplication)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Storage.LocalDir)
	}

	return r
}
