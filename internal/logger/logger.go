package logger

import (
	"strings"

	"github.com/fadilmartias/submitme/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger from the log section of the configuration.
// Entries go to stderr so that the CLI can print results on stdout, and each
// one carries the service name and environment.
func New(log config.LogConfig, app config.AppConfig) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.DisableStacktrace = !log.Debug
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	if !log.JSON {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if log.Debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	cfg.InitialFields = map[string]any{}
	if name := strings.TrimSpace(app.Name); name != "" {
		cfg.InitialFields["service"] = name
	}
	if env := strings.TrimSpace(app.Env); env != "" {
		cfg.InitialFields["env"] = env
	}

	return cfg.Build()
}

// TruncateForLog keeps at most limit runes of the trimmed s and marks the cut
// with "...".
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)

	runes := 0
	for i := range s {
		if runes == limit {
			return s[:i] + "..."
		}
		runes++
	}
	return s
}
