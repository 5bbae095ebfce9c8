// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// StorageInterface is the full persistence surface. Consumer packages
// declare their own narrow subsets; this interface exists so the concrete
// Storage can be asserted against the union of them.
type StorageInterface interface {
	// Provider
	CreateProvider(ctx context.Context, p *types.Provider) (*types.Provider, error)
	GetProvider(ctx context.Context) (*types.Provider, error)

	// Freight companies
	InsertFreightCompany(ctx context.Context, c *types.FreightCompany) (*types.FreightCompany, error)
	GetFreightCompanyByID(ctx context.Context, id string) (*types.FreightCompany, error)
	SelectFreightCompanies(ctx context.Context) ([]*types.FreightCompany, error)
	SelectFreightCompaniesByIDs(ctx context.Context, ids []string) ([]*types.FreightCompany, error)

	// End customers
	InsertEndCustomer(ctx context.Context, c *types.EndCustomer) (*types.EndCustomer, error)
	GetEndCustomerByID(ctx context.Context, id string) (*types.EndCustomer, error)
	SelectEndCustomers(ctx context.Context) ([]*types.EndCustomer, error)
	SelectEndCustomersByIDs(ctx context.Context, ids []string) ([]*types.EndCustomer, error)

	// Tenancy links
	LinkCustomerToCompany(ctx context.Context, companyID, customerID string) error
	UnlinkCustomerFromCompany(ctx context.Context, companyID, customerID string) error
	SetCustomerCompanies(ctx context.Context, customerID string, companyIDs []string) error
	ListCustomerIDsByCompanyID(ctx context.Context, companyID string) ([]string, error)
	ListCompaniesByCustomerID(ctx context.Context, customerID string) ([]*types.FreightCompany, error)

	// Role assignments
	GetRoleAssignmentByIdentityID(ctx context.Context, identityID string) (*types.RoleAssignment, error)
	InsertRoleAssignment(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error)
	UpdateRoleAssignment(ctx context.Context, a *types.RoleAssignment) error
	DeleteRoleAssignment(ctx context.Context, identityID string) error
	ListRoleAssignments(ctx context.Context, role types.Role, companyID, customerID string) ([]*types.RoleAssignment, error)

	// Scope tags
	TagRecord(ctx context.Context, recordType types.RecordType, recordID string, owner types.ScopeOwner) error
	GetScopeTag(ctx context.Context, recordType types.RecordType, recordID string) (*types.ScopeTag, error)
	QueryRecordIDs(ctx context.Context, recordType types.RecordType, filter types.ScopeFilter) ([]string, error)
	DeleteScopeTag(ctx context.Context, recordType types.RecordType, recordID string) error

	// Invitations
	InsertInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	ListInvitations(ctx context.Context, companyID, customerID string) ([]*types.Invitation, error)

	// Shipments
	InsertShipment(ctx context.Context, sh *types.Shipment) (*types.Shipment, error)
	GetShipmentByID(ctx context.Context, id string) (*types.Shipment, error)
	SelectShipments(ctx context.Context) ([]*types.Shipment, error)
	SelectShipmentsByIDs(ctx context.Context, ids []string) ([]*types.Shipment, error)
	DeleteShipment(ctx context.Context, id string) error
}
