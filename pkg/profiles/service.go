// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package profiles manages who an identity is inside the hierarchy: its
// role assignment, the tenant it belongs to, and the staff rosters of
// companies and customers.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// ErrInvalidRoleLinkage is returned when a role and its tenant links do not
// fit together, e.g. a freight admin without a company or a provider with one.
var ErrInvalidRoleLinkage = errors.New("role and tenant linkage are inconsistent")

// Profile is the caller-facing view of an identity's place in the hierarchy.
type Profile struct {
	IdentityID string     `json:"identity_id"`
	Role       types.Role `json:"role"`
	CompanyID  string     `json:"company_id,omitempty"`
	CustomerID string     `json:"customer_id,omitempty"`
}

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, kratos KratosClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.kratos = kratos

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// validateLinkage checks that a role carries exactly the tenant links it
// requires and nothing more.
func validateLinkage(role types.Role, companyID, customerID string) error {
	switch role {
	case types.RoleSaaSProvider:
		if companyID != "" || customerID != "" {
			return ErrInvalidRoleLinkage
		}
	case types.RoleFreightAdmin:
		if companyID == "" || customerID != "" {
			return ErrInvalidRoleLinkage
		}
	case types.RoleEndCustomerAdmin, types.RoleEndCustomerStaff:
		if customerID == "" || companyID != "" {
			return ErrInvalidRoleLinkage
		}
	default:
		return ErrInvalidRoleLinkage
	}
	return nil
}

func (s *Service) Profile(ctx context.Context, authzCtx *authorization.Context) (*Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.Profile")
	defer span.End()

	if authzCtx.IdentityID() == "" {
		return nil, authorization.ErrUnauthorized
	}

	return &Profile{
		IdentityID: authzCtx.IdentityID(),
		Role:       authzCtx.Role(),
		CompanyID:  authzCtx.CompanyID(),
		CustomerID: authzCtx.CustomerID(),
	}, nil
}

// Reassign sets an identity's role and tenant links, replacing whatever
// assignment it had. Reserved for the SaaS provider.
func (s *Service) Reassign(ctx context.Context, authzCtx *authorization.Context, identityID string, role types.Role, companyID, customerID string) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.Reassign")
	defer span.End()

	if authzCtx.Role() != types.RoleSaaSProvider {
		return nil, authorization.ErrUnauthorized
	}

	return s.assign(ctx, identityID, role, companyID, customerID)
}

// AddCompanyStaff makes an identity a freight admin of the company. Allowed
// for the provider and for admins of that company.
func (s *Service) AddCompanyStaff(ctx context.Context, authzCtx *authorization.Context, companyID, identityID string) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.AddCompanyStaff")
	defer span.End()

	if !s.canManageCompany(authzCtx, companyID) {
		return nil, authorization.ErrUnauthorized
	}

	return s.assign(ctx, identityID, types.RoleFreightAdmin, companyID, "")
}

// AddCustomerStaff makes an identity an admin or staff member of the
// customer. Allowed for the provider, for freight admins linked to the
// customer, and for the customer's own admins.
func (s *Service) AddCustomerStaff(ctx context.Context, authzCtx *authorization.Context, customerID, identityID string, role types.Role) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.AddCustomerStaff")
	defer span.End()

	if role != types.RoleEndCustomerAdmin && role != types.RoleEndCustomerStaff {
		return nil, ErrInvalidRoleLinkage
	}
	if !s.canManageCustomer(authzCtx, customerID) {
		return nil, authorization.ErrUnauthorized
	}

	return s.assign(ctx, identityID, role, "", customerID)
}

// RemoveStaff deletes an identity's role assignment. The caller must be
// able to manage the tenant the target belongs to.
func (s *Service) RemoveStaff(ctx context.Context, authzCtx *authorization.Context, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.RemoveStaff")
	defer span.End()

	target, err := s.storage.GetRoleAssignmentByIdentityID(ctx, identityID)
	if err != nil {
		return err
	}

	allowed := false
	switch {
	case authzCtx.Role() == types.RoleSaaSProvider:
		allowed = true
	case target.CompanyID != "":
		allowed = s.canManageCompany(authzCtx, target.CompanyID)
	case target.CustomerID != "":
		allowed = s.canManageCustomer(authzCtx, target.CustomerID)
	}
	if !allowed {
		return authorization.ErrUnauthorized
	}

	return s.storage.DeleteRoleAssignment(ctx, identityID)
}

func (s *Service) ListCompanyStaff(ctx context.Context, authzCtx *authorization.Context, companyID string) ([]*types.StaffMember, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.ListCompanyStaff")
	defer span.End()

	if !s.canManageCompany(authzCtx, companyID) {
		return nil, authorization.ErrUnauthorized
	}

	assignments, err := s.storage.ListRoleAssignments(ctx, "", companyID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list company staff: %w", err)
	}

	return s.enrich(ctx, assignments), nil
}

func (s *Service) ListCustomerStaff(ctx context.Context, authzCtx *authorization.Context, customerID string) ([]*types.StaffMember, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.ListCustomerStaff")
	defer span.End()

	if !s.canViewCustomer(authzCtx, customerID) {
		return nil, authorization.ErrUnauthorized
	}

	assignments, err := s.storage.ListRoleAssignments(ctx, "", "", customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer staff: %w", err)
	}

	return s.enrich(ctx, assignments), nil
}

// assign upserts a role assignment after validating the linkage and the
// referenced tenants.
func (s *Service) assign(ctx context.Context, identityID string, role types.Role, companyID, customerID string) (*types.RoleAssignment, error) {
	if err := validateLinkage(role, companyID, customerID); err != nil {
		return nil, err
	}

	if companyID != "" {
		if _, err := s.storage.GetFreightCompanyByID(ctx, companyID); err != nil {
			return nil, err
		}
	}
	if customerID != "" {
		if _, err := s.storage.GetEndCustomerByID(ctx, customerID); err != nil {
			return nil, err
		}
	}

	assignment := &types.RoleAssignment{
		IdentityID: identityID,
		Role:       role,
		CompanyID:  companyID,
		CustomerID: customerID,
	}

	err := s.storage.UpdateRoleAssignment(ctx, assignment)
	if errors.Is(err, storage.ErrNotFound) {
		return s.storage.InsertRoleAssignment(ctx, assignment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reassign role: %w", err)
	}

	return s.storage.GetRoleAssignmentByIdentityID(ctx, identityID)
}

func (s *Service) canManageCompany(authzCtx *authorization.Context, companyID string) bool {
	switch authzCtx.Role() {
	case types.RoleSaaSProvider:
		return true
	case types.RoleFreightAdmin:
		return authzCtx.CompanyID() == companyID
	}
	return false
}

func (s *Service) canManageCustomer(authzCtx *authorization.Context, customerID string) bool {
	switch authzCtx.Role() {
	case types.RoleSaaSProvider:
		return true
	case types.RoleFreightAdmin:
		return slices.Contains(authzCtx.ScopeFilter().CustomerIDs, customerID)
	case types.RoleEndCustomerAdmin:
		return authzCtx.CustomerID() == customerID
	}
	return false
}

func (s *Service) canViewCustomer(authzCtx *authorization.Context, customerID string) bool {
	if s.canManageCustomer(authzCtx, customerID) {
		return true
	}
	// Staff can see their own roster but not change it.
	return authzCtx.Role() == types.RoleEndCustomerStaff && authzCtx.CustomerID() == customerID
}

// enrich resolves staff emails from the identity provider. A lookup failure
// leaves the email empty rather than failing the whole roster.
func (s *Service) enrich(ctx context.Context, assignments []*types.RoleAssignment) []*types.StaffMember {
	members := make([]*types.StaffMember, 0, len(assignments))
	for _, a := range assignments {
		member := &types.StaffMember{
			IdentityID: a.IdentityID,
			Role:       a.Role,
		}

		identity, err := s.kratos.GetIdentity(ctx, a.IdentityID)
		if err != nil {
			s.logger.Errorf("failed to resolve identity %s: %s", a.IdentityID, err)
		} else if traits, ok := identity.Traits.(map[string]interface{}); ok {
			member.Email, _ = traits["email"].(string)
		}

		members = append(members, member)
	}
	return members
}
