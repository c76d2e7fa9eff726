// Package logs builds the process-wide structured logger.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"aula/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the slog.Logger every component logs through. Output is JSON
// for log collectors; the text handler is for local development only.
func New(params Params) (*slog.Logger, error) {
	cfg := params.Config

	level, ok := logLevels[strings.ToLower(cfg.Env.Log.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", cfg.Env.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", cfg.Env.ServiceName),
		slog.String("env", cfg.Env.Env),
	)

	return logger, nil
}
