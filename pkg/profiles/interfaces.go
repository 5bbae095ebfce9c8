// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

type StorageInterface interface {
	GetRoleAssignmentByIdentityID(ctx context.Context, identityID string) (*types.RoleAssignment, error)
	InsertRoleAssignment(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error)
	UpdateRoleAssignment(ctx context.Context, a *types.RoleAssignment) error
	DeleteRoleAssignment(ctx context.Context, identityID string) error
	ListRoleAssignments(ctx context.Context, role types.Role, companyID, customerID string) ([]*types.RoleAssignment, error)
	GetFreightCompanyByID(ctx context.Context, id string) (*types.FreightCompany, error)
	GetEndCustomerByID(ctx context.Context, id string) (*types.EndCustomer, error)
}

type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
}

type AuthorizerInterface interface {
	BuildContext(ctx context.Context, identityID string) (*authorization.Context, error)
}

type ServiceInterface interface {
	Profile(ctx context.Context, authzCtx *authorization.Context) (*Profile, error)
	Reassign(ctx context.Context, authzCtx *authorization.Context, identityID string, role types.Role, companyID, customerID string) (*types.RoleAssignment, error)
	AddCompanyStaff(ctx context.Context, authzCtx *authorization.Context, companyID, identityID string) (*types.RoleAssignment, error)
	AddCustomerStaff(ctx context.Context, authzCtx *authorization.Context, customerID, identityID string, role types.Role) (*types.RoleAssignment, error)
	RemoveStaff(ctx context.Context, authzCtx *authorization.Context, identityID string) error
	ListCompanyStaff(ctx context.Context, authzCtx *authorization.Context, companyID string) ([]*types.StaffMember, error)
	ListCustomerStaff(ctx context.Context, authzCtx *authorization.Context, customerID string) ([]*types.StaffMember, error)
}
