// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit events on a dedicated channel.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthorizationDenied(identityID, operation string)
	InvitationIssued(email string, role string)
	InvitationAccepted(email string, identityID string)
}
