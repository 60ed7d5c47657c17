package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/config"
)

// New builds a JSON production logger for the production environment and a
// human-readable development logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment(zap.AddStacktrace(zap.ErrorLevel))
}
