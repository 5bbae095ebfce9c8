// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// ErrUnauthorized is returned when the caller's role forbids an operation.
var ErrUnauthorized = errors.New("caller is not authorized for this operation")

type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// BuildContext resolves the caller into an authorization context. An empty
// identity ID yields the anonymous context. An authenticated caller with no
// role assignment gets the default one created, matching the first-login
// behaviour of the portals: an end-customer admin with no tenant links, which
// ScopeFilter maps to match-none.
func (a *Authorizer) BuildContext(ctx context.Context, identityID string) (*Context, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.BuildContext")
	defer span.End()

	if identityID == "" {
		return NewContext("", nil, nil), nil
	}

	assignment, err := a.storage.GetRoleAssignmentByIdentityID(ctx, identityID)
	if errors.Is(err, storage.ErrNotFound) {
		assignment, err = a.storage.InsertRoleAssignment(ctx, &types.RoleAssignment{
			IdentityID: identityID,
			Role:       types.RoleEndCustomerAdmin,
		})
		if err != nil && errors.Is(err, storage.ErrDuplicateKey) {
			// Lost a race against a concurrent first request; reread.
			assignment, err = a.storage.GetRoleAssignmentByIdentityID(ctx, identityID)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role assignment: %w", err)
	}

	var linkedCustomerIDs []string
	if assignment.Role == types.RoleFreightAdmin && assignment.CompanyID != "" {
		linkedCustomerIDs, err = a.storage.ListCustomerIDsByCompanyID(ctx, assignment.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list linked customers: %w", err)
		}
	}

	return NewContext(identityID, assignment, linkedCustomerIDs), nil
}

func NewAuthorizer(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)

	authorizer.storage = storage
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
