// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// NotifierInterface delivers outbound notifications to tenant users.
type NotifierInterface interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
