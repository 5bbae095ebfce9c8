// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mail holds the outbound notification surface. Deployments plug
// a real delivery backend behind NotifierInterface; the default logs the
// message instead of sending it, which keeps local and test environments
// free of SMTP dependencies.
package mail

import (
	"context"

	"github.com/canonical/freight-hierarchy-service/internal/logging"
)

var _ NotifierInterface = (*LogNotifier)(nil)

// LogNotifier writes notifications to the service log instead of
// delivering them.
type LogNotifier struct {
	logger logging.LoggerInterface
}

func NewLogNotifier(logger logging.LoggerInterface) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	n.logger.Infof("mail to %s: %s\n%s", recipient, subject, body)
	return nil
}
