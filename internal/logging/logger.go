// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}

// NewLogger creates a production zap logger at the given level.
// Unknown levels fall back to error.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger.Named("security")},
	}
}

// SecurityLogger writes structured audit events.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AuthorizationDenied(identityID, operation string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz.denied"),
		zap.String("identity_id", identityID),
		zap.String("operation", operation),
	)
}

func (s *SecurityLogger) InvitationIssued(email string, role string) {
	s.l.Info("invitation issued",
		zap.String("event", "invitation.issued"),
		zap.String("email", email),
		zap.String("role", role),
	)
}

func (s *SecurityLogger) InvitationAccepted(email string, identityID string) {
	s.l.Info("invitation accepted",
		zap.String("event", "invitation.accepted"),
		zap.String("email", email),
		zap.String("identity_id", identityID),
	)
}
