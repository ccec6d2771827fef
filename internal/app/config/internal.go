package config

import (
	"strings"

	"forms-service/internal/pkg/utils"
)

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":5000"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Forms: Forms{
			WriteTokens:       splitTokens(utils.GetEnvString("FORMS_WRITE_TOKENS", "")),
			ReadToken:         utils.GetEnvString("FORMS_READ_TOKEN", ""),
			PortalRecipient:   utils.GetEnvString("FORMS_PORTAL_RECIPIENT", ""),
			RegistryRecipient: utils.GetEnvString("FORMS_REGISTRY_RECIPIENT", ""),
		},
		Captcha: Captcha{
			Secret:    utils.GetEnvString("CAPTCHA_SECRET", ""),
			VerifyURL: utils.GetEnvString("CAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		},
	}
}

func splitTokens(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}
