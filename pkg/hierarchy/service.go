// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package hierarchy manages the tenancy graph: the freight companies under
// the SaaS provider, the end customers they serve, the links between the
// two, and the scoped shipment records that flow through them.
package hierarchy

import (
	"context"
	"fmt"
	"slices"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

type Service struct {
	storage   StorageInterface
	companies RepositoryInterface[*types.FreightCompany]
	customers RepositoryInterface[*types.EndCustomer]
	shipments RepositoryInterface[*types.Shipment]

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	companies RepositoryInterface[*types.FreightCompany],
	customers RepositoryInterface[*types.EndCustomer],
	shipments RepositoryInterface[*types.Shipment],
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.companies = companies
	s.customers = customers
	s.shipments = shipments

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// RegisterFreightCompany onboards a company under the provider and tags it
// as its own tenant, so its future admins see it. Provider only.
func (s *Service) RegisterFreightCompany(ctx context.Context, authzCtx *authorization.Context, company *types.FreightCompany) (*types.FreightCompany, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.RegisterFreightCompany")
	defer span.End()

	if authzCtx.Role() != types.RoleSaaSProvider {
		return nil, authorization.ErrUnauthorized
	}

	provider, err := s.storage.GetProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider: %w", err)
	}
	company.ProviderID = provider.ID

	created, err := s.storage.InsertFreightCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to register freight company: %w", err)
	}

	s.tag(ctx, types.RecordTypeFreightCompany, created.ID, types.ScopeOwner{CompanyID: created.ID})

	return created, nil
}

func (s *Service) ListFreightCompanies(ctx context.Context, authzCtx *authorization.Context) ([]*types.FreightCompany, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.ListFreightCompanies")
	defer span.End()

	return s.companies.List(ctx, authzCtx.ScopeFilter())
}

// RegisterEndCustomer onboards a customer. A freight admin's customer is
// tagged with both the admin's company and the customer itself, and linked
// to the company, so both sides of the relationship see the record. A
// provider-registered customer is tagged with itself only.
func (s *Service) RegisterEndCustomer(ctx context.Context, authzCtx *authorization.Context, customer *types.EndCustomer) (*types.EndCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.RegisterEndCustomer")
	defer span.End()

	role := authzCtx.Role()
	if role != types.RoleSaaSProvider && role != types.RoleFreightAdmin {
		return nil, authorization.ErrUnauthorized
	}
	if role == types.RoleFreightAdmin && authzCtx.CompanyID() == "" {
		return nil, authorization.ErrUnauthorized
	}

	created, err := s.storage.InsertEndCustomer(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to register end customer: %w", err)
	}

	owner := types.ScopeOwner{CustomerID: created.ID}
	if role == types.RoleFreightAdmin {
		owner.CompanyID = authzCtx.CompanyID()
		if err := s.storage.LinkCustomerToCompany(ctx, authzCtx.CompanyID(), created.ID); err != nil {
			return nil, fmt.Errorf("failed to link customer to company: %w", err)
		}
	}
	s.tag(ctx, types.RecordTypeEndCustomer, created.ID, owner)

	return created, nil
}

func (s *Service) ListEndCustomers(ctx context.Context, authzCtx *authorization.Context) ([]*types.EndCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.ListEndCustomers")
	defer span.End()

	return s.customers.List(ctx, authzCtx.ScopeFilter())
}

func (s *Service) LinkEndCustomer(ctx context.Context, authzCtx *authorization.Context, companyID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.LinkEndCustomer")
	defer span.End()

	if !s.canManageCompany(authzCtx, companyID) {
		return authorization.ErrUnauthorized
	}

	return s.storage.LinkCustomerToCompany(ctx, companyID, customerID)
}

func (s *Service) UnlinkEndCustomer(ctx context.Context, authzCtx *authorization.Context, companyID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.UnlinkEndCustomer")
	defer span.End()

	if !s.canManageCompany(authzCtx, companyID) {
		return authorization.ErrUnauthorized
	}

	return s.storage.UnlinkCustomerFromCompany(ctx, companyID, customerID)
}

// SetCustomerCompanies replaces a customer's company links wholesale. A
// customer's own admin chooses which companies serve it; the provider may
// do the same for any customer. Freight admins manage single links through
// LinkEndCustomer/UnlinkEndCustomer instead.
func (s *Service) SetCustomerCompanies(ctx context.Context, authzCtx *authorization.Context, customerID string, companyIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.SetCustomerCompanies")
	defer span.End()

	if !s.canReplaceCompanyLinks(authzCtx, customerID) {
		return authorization.ErrUnauthorized
	}

	if _, err := s.storage.GetEndCustomerByID(ctx, customerID); err != nil {
		return err
	}

	return s.storage.SetCustomerCompanies(ctx, customerID, companyIDs)
}

func (s *Service) ListLinkedCompanies(ctx context.Context, authzCtx *authorization.Context, customerID string) ([]*types.FreightCompany, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.ListLinkedCompanies")
	defer span.End()

	if !s.canViewCustomer(authzCtx, customerID) {
		return nil, authorization.ErrUnauthorized
	}

	return s.storage.ListCompaniesByCustomerID(ctx, customerID)
}

func (s *Service) ListLinkedCustomers(ctx context.Context, authzCtx *authorization.Context, companyID string) ([]*types.EndCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.ListLinkedCustomers")
	defer span.End()

	if !s.canManageCompany(authzCtx, companyID) {
		return nil, authorization.ErrUnauthorized
	}

	ids, err := s.storage.ListCustomerIDsByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked customers: %w", err)
	}

	return s.storage.SelectEndCustomersByIDs(ctx, ids)
}

// CreateShipment records a shipment owned by the caller's tenant. Anyone
// with a tenant link may create; provider-created shipments stay untagged
// and provider-only.
func (s *Service) CreateShipment(ctx context.Context, authzCtx *authorization.Context, shipment *types.Shipment) (*types.Shipment, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.CreateShipment")
	defer span.End()

	if authzCtx.IdentityID() == "" {
		return nil, authorization.ErrUnauthorized
	}
	if authzCtx.Owner().Empty() && authzCtx.Role() != types.RoleSaaSProvider {
		return nil, authorization.ErrUnauthorized
	}

	return s.shipments.Create(ctx, shipment, authzCtx.Owner())
}

func (s *Service) ListShipments(ctx context.Context, authzCtx *authorization.Context) ([]*types.Shipment, error) {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.ListShipments")
	defer span.End()

	return s.shipments.List(ctx, authzCtx.ScopeFilter())
}

// DeleteShipment removes a shipment the caller can see. A shipment outside
// the caller's scope is reported as not found rather than forbidden, so the
// response does not leak its existence.
func (s *Service) DeleteShipment(ctx context.Context, authzCtx *authorization.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "hierarchy.Service.DeleteShipment")
	defer span.End()

	visible, err := s.shipments.Visible(ctx, authzCtx.ScopeFilter(), id)
	if err != nil {
		return err
	}
	if !visible {
		return storage.ErrNotFound
	}

	return s.storage.DeleteShipment(ctx, id)
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

func (s *Service) canReplaceCompanyLinks(authzCtx *authorization.Context, customerID string) bool {
	switch authzCtx.Role() {
	case types.RoleSaaSProvider:
		return true
	case types.RoleEndCustomerAdmin:
		return authzCtx.CustomerID() == customerID
	}
	return false
}

func (s *Service) canViewCustomer(authzCtx *authorization.Context, customerID string) bool {
	switch authzCtx.Role() {
	case types.RoleSaaSProvider:
		return true
	case types.RoleFreightAdmin:
		return slices.Contains(authzCtx.ScopeFilter().CustomerIDs, customerID)
	case types.RoleEndCustomerAdmin, types.RoleEndCustomerStaff:
		return authzCtx.CustomerID() == customerID
	}
	return false
}

// tag attaches ownership best effort: a failure leaves the record
// provider-only instead of failing the registration.
func (s *Service) tag(ctx context.Context, recordType types.RecordType, recordID string, owner types.ScopeOwner) {
	if err := s.storage.TagRecord(ctx, recordType, recordID, owner); err != nil {
		s.logger.Errorf("failed to tag %s %s: %s", recordType, recordID, err)
	}
}
