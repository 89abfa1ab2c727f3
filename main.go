// File: saarthi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saarthi/config"
	"saarthi/database"
	casenoteRepo "saarthi/database/repository/casenote"
	complaintRepo "saarthi/database/repository/complaint"
	notificationRepo "saarthi/database/repository/notification"
	policeRepo "saarthi/database/repository/police"
	referenceRepo "saarthi/database/repository/reference"
	victimRepo "saarthi/database/repository/victim"
	"saarthi/handlers"
	"saarthi/middleware"
	"saarthi/routes"
	"saarthi/services/auth"
	"saarthi/services/complaint"
	"saarthi/services/notification"
	"saarthi/services/otp"
	"saarthi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// The OTP store is Redis-backed when REDIS_ADDR is set; otherwise an
	// in-process store keeps single-instance deployments working.
	var otpStore otp.Store
	if config.AppConfig.RedisAddr != "" {
		utils.InitOTPCache()
		otpStore = otp.NewRedisStore(utils.GetOTPCacheClient())
	} else {
		logger.Sugar().Warn("main: REDIS_ADDR not set, using in-memory OTP store")
		otpStore = otp.NewMemoryStore()
	}

	var sender notification.Sender
	if twilioSender := notification.NewTwilioSender(); twilioSender != nil {
		sender = twilioSender
	} else {
		logger.Sugar().Warn("main: Twilio not configured, OTP codes and notifications will be logged only")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	victims := victimRepo.NewMongoVictimRepo()
	preRegistered := victimRepo.NewMongoPreRegisteredRepo()
	police := policeRepo.NewMongoPoliceRepo()
	complaints := complaintRepo.NewMongoComplaintRepo()
	notes := casenoteRepo.NewMongoCaseNoteRepo()
	notifications := notificationRepo.NewMongoNotificationRepo()
	reference := referenceRepo.NewMongoReferenceRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Sender: sender,
	}

	authService := &auth.DefaultAuthService{
		Victims:       victims,
		PreRegistered: preRegistered,
		Police:        police,
		Complaints:    complaints,
		OTP:           otpStore,
		Sender:        sender,
		AllowTestOTP:  config.AppConfig.AllowTestOTP,
	}

	complaintService := &complaint.DefaultComplaintService{
		Complaints:    complaints,
		Victims:       victims,
		PreRegistered: preRegistered,
		Notes:         notes,
		Notifications: notifications,
		Notifier:      notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:       handlers.NewAuthHandler(authService),
		Complaints: handlers.NewComplaintHandler(complaintService),
		Reference:  handlers.NewReferenceHandler(reference),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.MongoClient, utils.OTPCacheClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
