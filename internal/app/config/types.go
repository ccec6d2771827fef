package config

import (
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB MongoDB
		SMTP    SMTP
		Logger  Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App     App
		Forms   Forms
		Captcha Captcha
	}

	App struct {
		Env             string
		Port            string
		ShutdownTimeout int
	}

	// Forms carries the shared-secret token sets and per-origin notification
	// recipients. Loaded once at startup, never mutated.
	Forms struct {
		WriteTokens       []string
		ReadToken         string
		PortalRecipient   string
		RegistryRecipient string
	}

	Captcha struct {
		Secret    string
		VerifyURL string
	}
)
