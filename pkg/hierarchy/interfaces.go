// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"context"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/scoped"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

type StorageInterface interface {
	GetProvider(ctx context.Context) (*types.Provider, error)
	CreateProvider(ctx context.Context, p *types.Provider) (*types.Provider, error)
	InsertFreightCompany(ctx context.Context, c *types.FreightCompany) (*types.FreightCompany, error)
	GetFreightCompanyByID(ctx context.Context, id string) (*types.FreightCompany, error)
	InsertEndCustomer(ctx context.Context, c *types.EndCustomer) (*types.EndCustomer, error)
	GetEndCustomerByID(ctx context.Context, id string) (*types.EndCustomer, error)
	TagRecord(ctx context.Context, recordType types.RecordType, recordID string, owner types.ScopeOwner) error
	LinkCustomerToCompany(ctx context.Context, companyID, customerID string) error
	UnlinkCustomerFromCompany(ctx context.Context, companyID, customerID string) error
	SetCustomerCompanies(ctx context.Context, customerID string, companyIDs []string) error
	ListCustomerIDsByCompanyID(ctx context.Context, companyID string) ([]string, error)
	ListCompaniesByCustomerID(ctx context.Context, customerID string) ([]*types.FreightCompany, error)
	SelectEndCustomersByIDs(ctx context.Context, ids []string) ([]*types.EndCustomer, error)
	DeleteShipment(ctx context.Context, id string) error
}

// RepositoryInterface is the scope-enforcing access path for one entity type.
type RepositoryInterface[T scoped.Record] interface {
	Create(ctx context.Context, record T, owner types.ScopeOwner) (T, error)
	List(ctx context.Context, filter types.ScopeFilter) ([]T, error)
	Visible(ctx context.Context, filter types.ScopeFilter, recordID string) (bool, error)
}

type AuthorizerInterface interface {
	BuildContext(ctx context.Context, identityID string) (*authorization.Context, error)
}

type ServiceInterface interface {
	RegisterFreightCompany(ctx context.Context, authzCtx *authorization.Context, company *types.FreightCompany) (*types.FreightCompany, error)
	ListFreightCompanies(ctx context.Context, authzCtx *authorization.Context) ([]*types.FreightCompany, error)
	RegisterEndCustomer(ctx context.Context, authzCtx *authorization.Context, customer *types.EndCustomer) (*types.EndCustomer, error)
	ListEndCustomers(ctx context.Context, authzCtx *authorization.Context) ([]*types.EndCustomer, error)
	LinkEndCustomer(ctx context.Context, authzCtx *authorization.Context, companyID, customerID string) error
	UnlinkEndCustomer(ctx context.Context, authzCtx *authorization.Context, companyID, customerID string) error
	SetCustomerCompanies(ctx context.Context, authzCtx *authorization.Context, customerID string, companyIDs []string) error
	ListLinkedCompanies(ctx context.Context, authzCtx *authorization.Context, customerID string) ([]*types.FreightCompany, error)
	ListLinkedCustomers(ctx context.Context, authzCtx *authorization.Context, companyID string) ([]*types.EndCustomer, error)
	CreateShipment(ctx context.Context, authzCtx *authorization.Context, shipment *types.Shipment) (*types.Shipment, error)
	ListShipments(ctx context.Context, authzCtx *authorization.Context) ([]*types.Shipment, error)
	DeleteShipment(ctx context.Context, authzCtx *authorization.Context, id string) error
}
