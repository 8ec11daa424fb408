// Package logger wraps a global zap sugared logger behind context-aware helpers.
// The level is atomic, so the configuration can change it after start-up,
// and a context can carry a derived logger with extra fields or a name.
package logger
