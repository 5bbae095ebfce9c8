// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// StorageInterface is the subset of the storage layer the authorizer needs
// to resolve a caller into an authorization context.
type StorageInterface interface {
	GetRoleAssignmentByIdentityID(ctx context.Context, identityID string) (*types.RoleAssignment, error)
	InsertRoleAssignment(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error)
	ListCustomerIDsByCompanyID(ctx context.Context, companyID string) ([]string, error)
}
