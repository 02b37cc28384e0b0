package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"infirmary-app-server/internal/config"
	"infirmary-app-server/internal/handlers"
	"infirmary-app-server/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	columnHandler := handlers.NewColumnHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		// The booking form is the one public mutation in the system.
		public.POST("/appointments", appointmentHandler.CreateAppointment)

		// Published columns are readable by anyone.
		public.GET("/columns", columnHandler.GetColumns)
		public.GET("/columns/:id", columnHandler.GetColumnByID)

		userRoutes := public.Group("/users")
		{
			userRoutes.POST("", authHandler.Register) // gated by invitation code
			userRoutes.POST("/login", authHandler.Login)
			userRoutes.POST("/logout", authHandler.Logout)
			userRoutes.POST("/refresh", authHandler.RefreshToken)
		}
	}

	// Authenticated routes (admin inbox and record keeping)
	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/inbox/count", appointmentHandler.GetInboxCount)
			appointmentRoutes.POST("/scheduled", appointmentHandler.CreateScheduledAppointment)
			appointmentRoutes.DELETE("", appointmentHandler.BulkDeleteAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.GET("/:id/notification", appointmentHandler.GetAppointmentNotification)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.PATCH("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		patientRoutes := private.Group("/patients")
		{
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PATCH("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
		}

		columnRoutes := private.Group("/columns")
		{
			columnRoutes.POST("", columnHandler.CreateColumn)
			columnRoutes.PATCH("/:id", columnHandler.UpdateColumn)
			columnRoutes.DELETE("/:id", columnHandler.DeleteColumn)
		}

		userRoutes := private.Group("/users")
		{
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/auth", authHandler.GetAuthenticatedUser)
			userRoutes.GET("/:id", userHandler.GetUserByID)
			userRoutes.PATCH("/:id", userHandler.UpdateUser)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
