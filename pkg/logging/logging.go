// Package logging configures the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance.
var Logger *zap.Logger

// Setup builds the global logger. Debug mode uses zap's development config
// with human-readable console output; otherwise the production config is
// used with stderr-only output so the artifact on stdout stays clean.
func Setup(debug bool, appName, appVersion string) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Keep stdout free for the artifact.
	cfg.OutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}
