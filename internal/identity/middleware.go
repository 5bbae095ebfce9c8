// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
)

// HeaderName is the header used to pass the authenticated identity ID.
// It is set by the authenticating proxy in front of the service; a missing
// or empty header means the request is anonymous.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

type contextKey int

const identityIDKey contextKey = 0

// WithIdentityID returns a context carrying the identity ID.
func WithIdentityID(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, identityIDKey, identityID)
}

// IdentityID returns the identity ID from the context, or the empty string
// for anonymous requests.
func IdentityID(ctx context.Context) string {
	id, _ := ctx.Value(identityIDKey).(string)
	return id
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		ctx = WithIdentityID(ctx, r.Header.Get(HeaderName))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
