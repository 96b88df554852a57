package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a JSON production logger, or a console development logger when
// env is "development".
func New(env string) (*zap.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(env), "development") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
