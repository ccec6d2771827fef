package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forms-service/internal/app/config"
	"forms-service/internal/app/delivery/http/middlewares"
	"forms-service/internal/app/delivery/http/routers"
	"forms-service/internal/app/drivers/database"
	"forms-service/internal/app/drivers/logger"
	"forms-service/internal/app/drivers/mailer"
	"forms-service/internal/app/services/core/submissions"
	"forms-service/internal/app/services/shared/captcha"
	"forms-service/internal/app/services/shared/smtp"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = mongoDB.Disconnect(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Failed to disconnect from mongo database: %v", err)
	}

	log.Sync()
	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Shared services
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	smtpService := smtp.NewSmtpService(smtpClient)
	captchaClient := captcha.NewRecaptchaClient(
		bootstrap.InternalConfig.Captcha.VerifyURL,
		bootstrap.InternalConfig.Captcha.Secret,
	)

	// Submissions
	submissionRepository := submissions.NewSubmissionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	submissionUsecase := submissions.NewSubmissionUsecase(
		submissionRepository,
		captchaClient,
		smtpService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	submissionController := submissions.NewSubmissionController(bootstrap.Logger, submissionUsecase)

	routers.SetupRoutes(bootstrap.Router, middlewares, submissionController)
}
