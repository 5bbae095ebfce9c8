// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// Per-entity views adapting Storage to the store shape the scoped
// repository consumes.

type FreightCompanyStore struct {
	*Storage
}

func (s FreightCompanyStore) Insert(ctx context.Context, c *types.FreightCompany) (*types.FreightCompany, error) {
	return s.InsertFreightCompany(ctx, c)
}

func (s FreightCompanyStore) SelectAll(ctx context.Context) ([]*types.FreightCompany, error) {
	return s.SelectFreightCompanies(ctx)
}

func (s FreightCompanyStore) SelectByIDs(ctx context.Context, ids []string) ([]*types.FreightCompany, error) {
	return s.SelectFreightCompaniesByIDs(ctx, ids)
}

type EndCustomerStore struct {
	*Storage
}

func (s EndCustomerStore) Insert(ctx context.Context, c *types.EndCustomer) (*types.EndCustomer, error) {
	return s.InsertEndCustomer(ctx, c)
}

func (s EndCustomerStore) SelectAll(ctx context.Context) ([]*types.EndCustomer, error) {
	return s.SelectEndCustomers(ctx)
}

func (s EndCustomerStore) SelectByIDs(ctx context.Context, ids []string) ([]*types.EndCustomer, error) {
	return s.SelectEndCustomersByIDs(ctx, ids)
}

type ShipmentStore struct {
	*Storage
}

func (s ShipmentStore) Insert(ctx context.Context, sh *types.Shipment) (*types.Shipment, error) {
	return s.InsertShipment(ctx, sh)
}

func (s ShipmentStore) SelectAll(ctx context.Context) ([]*types.Shipment, error) {
	return s.SelectShipments(ctx)
}

func (s ShipmentStore) SelectByIDs(ctx context.Context, ids []string) ([]*types.Shipment, error) {
	return s.SelectShipmentsByIDs(ctx, ids)
}
