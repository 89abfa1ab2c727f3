package routes

import (
	"time"

	"saarthi/handlers"
	"saarthi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers OTP, token and police credential endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/send-otp", hb.Auth.SendOTPHandler)
		api.POST("/verify-otp", hb.Auth.VerifyOTPHandler)
		api.POST("/police/login", hb.Auth.PoliceLoginHandler)
		api.POST("/police/register", hb.Auth.PoliceRegisterHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/verify-token", hb.Auth.VerifyTokenHandler)
		api.GET("/user", hb.Auth.GetUserHandler)
		api.POST("/police/register-victim", middleware.RequirePolice(), hb.Auth.RegisterVictimHandler)
	}
}

// RegisterComplaintRoutes registers the complaint lifecycle endpoints.
func RegisterComplaintRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/complaints")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Complaints.CreateComplaintHandler)
		api.GET("", hb.Complaints.ListComplaintsHandler)
		api.POST("/analyze", hb.Complaints.AnalyzeComplaintHandler)
		api.GET("/:id", hb.Complaints.GetComplaintHandler)
		api.PATCH("/:id", middleware.RequirePolice(), hb.Complaints.UpdateComplaintHandler)
		api.POST("/:id/notes", middleware.RequirePolice(), hb.Complaints.AddNoteHandler)
		api.GET("/:id/notes", hb.Complaints.ListNotesHandler)
	}
}

// RegisterReferenceRoutes registers the public legal reference endpoints.
func RegisterReferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/police")
	{
		api.GET("/stations", hb.Reference.PoliceStationsHandler)
		api.GET("/ipc-sections", hb.Reference.IPCSectionsHandler)
		api.GET("/legal-rights", hb.Reference.LegalRightsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterComplaintRoutes(r, hb)
	RegisterReferenceRoutes(r, hb)
}
