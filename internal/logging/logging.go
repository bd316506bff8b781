// Package logging builds the structured logger shared by all components.
package logging

import "go.uber.org/zap"

// New returns a production zap logger tagged with the app name.
func New(app string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"app": app}
	l, _ := cfg.Build()
	return l
}
