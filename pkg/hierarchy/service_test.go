// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package hierarchy -destination ./mock_interfaces.go -source=./interfaces.go

type serviceMocks struct {
	storage   *MockStorageInterface
	companies *MockRepositoryInterface[*types.FreightCompany]
	customers *MockRepositoryInterface[*types.EndCustomer]
	shipments *MockRepositoryInterface[*types.Shipment]
}

func newTestService(t *testing.T) (*Service, *serviceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		storage:   NewMockStorageInterface(ctrl),
		companies: NewMockRepositoryInterface[*types.FreightCompany](ctrl),
		customers: NewMockRepositoryInterface[*types.EndCustomer](ctrl),
		shipments: NewMockRepositoryInterface[*types.Shipment](ctrl),
	}
	svc := NewService(m.storage, m.companies, m.customers, m.shipments, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return svc, m, ctrl
}

func providerCtx() *authorization.Context {
	return authorization.NewContext("provider-1", &types.RoleAssignment{IdentityID: "provider-1", Role: types.RoleSaaSProvider}, nil)
}

func freightAdminCtx(companyID string, linkedCustomerIDs ...string) *authorization.Context {
	return authorization.NewContext("admin-1", &types.RoleAssignment{IdentityID: "admin-1", Role: types.RoleFreightAdmin, CompanyID: companyID}, linkedCustomerIDs)
}

func customerAdminCtx(customerID string) *authorization.Context {
	return authorization.NewContext("cadmin-1", &types.RoleAssignment{IdentityID: "cadmin-1", Role: types.RoleEndCustomerAdmin, CustomerID: customerID}, nil)
}

func customerStaffCtx(customerID string) *authorization.Context {
	return authorization.NewContext("staff-1", &types.RoleAssignment{IdentityID: "staff-1", Role: types.RoleEndCustomerStaff, CustomerID: customerID}, nil)
}

func TestService_RegisterFreightCompany(t *testing.T) {
	t.Run("only the provider can register companies", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := svc.RegisterFreightCompany(context.Background(), freightAdminCtx("company-1"), &types.FreightCompany{Name: "Acme Freight"})
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("a new company is tagged as its own tenant", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetProvider(gomock.Any()).Return(&types.Provider{ID: "provider-row"}, nil)
		m.storage.EXPECT().InsertFreightCompany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *types.FreightCompany) (*types.FreightCompany, error) {
				if c.ProviderID != "provider-row" {
					t.Errorf("expected provider link, got %q", c.ProviderID)
				}
				c.ID = "company-1"
				return c, nil
			})
		m.storage.EXPECT().TagRecord(gomock.Any(), types.RecordTypeFreightCompany, "company-1", types.ScopeOwner{CompanyID: "company-1"}).
			Return(nil)

		company, err := svc.RegisterFreightCompany(context.Background(), providerCtx(), &types.FreightCompany{Name: "Acme Freight"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if company.ID != "company-1" {
			t.Errorf("expected created company back, got %+v", company)
		}
	})

	t.Run("tagging failure does not fail the registration", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetProvider(gomock.Any()).Return(&types.Provider{ID: "provider-row"}, nil)
		m.storage.EXPECT().InsertFreightCompany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *types.FreightCompany) (*types.FreightCompany, error) {
				c.ID = "company-1"
				return c, nil
			})
		m.storage.EXPECT().TagRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("tag table unavailable"))

		_, err := svc.RegisterFreightCompany(context.Background(), providerCtx(), &types.FreightCompany{Name: "Acme Freight"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_RegisterEndCustomer(t *testing.T) {
	t.Run("customer staff cannot register customers", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := svc.RegisterEndCustomer(context.Background(), customerStaffCtx("customer-1"), &types.EndCustomer{Name: "Beta Corp"})
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("freight admin registration links and tags both tenants", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().InsertEndCustomer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *types.EndCustomer) (*types.EndCustomer, error) {
				c.ID = "customer-1"
				return c, nil
			})
		m.storage.EXPECT().LinkCustomerToCompany(gomock.Any(), "company-1", "customer-1").Return(nil)
		m.storage.EXPECT().TagRecord(gomock.Any(), types.RecordTypeEndCustomer, "customer-1",
			types.ScopeOwner{CompanyID: "company-1", CustomerID: "customer-1"}).Return(nil)

		customer, err := svc.RegisterEndCustomer(context.Background(), freightAdminCtx("company-1"), &types.EndCustomer{Name: "Beta Corp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ID != "customer-1" {
			t.Errorf("expected created customer back, got %+v", customer)
		}
	})

	t.Run("provider registration tags the customer only", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().InsertEndCustomer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *types.EndCustomer) (*types.EndCustomer, error) {
				c.ID = "customer-1"
				return c, nil
			})
		m.storage.EXPECT().TagRecord(gomock.Any(), types.RecordTypeEndCustomer, "customer-1",
			types.ScopeOwner{CustomerID: "customer-1"}).Return(nil)

		_, err := svc.RegisterEndCustomer(context.Background(), providerCtx(), &types.EndCustomer{Name: "Beta Corp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_CreateShipment(t *testing.T) {
	t.Run("anonymous cannot create shipments", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := svc.CreateShipment(context.Background(), authorization.NewContext("", nil, nil), &types.Shipment{Reference: "SH-1"})
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("caller without tenant links cannot create shipments", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		defaultCtx := authorization.NewContext("new-user", &types.RoleAssignment{IdentityID: "new-user", Role: types.RoleEndCustomerAdmin}, nil)
		_, err := svc.CreateShipment(context.Background(), defaultCtx, &types.Shipment{Reference: "SH-1"})
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("tenant member creates a shipment owned by their tenant", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		shipment := &types.Shipment{Reference: "SH-1"}
		m.shipments.EXPECT().Create(gomock.Any(), shipment, types.ScopeOwner{CustomerID: "customer-1"}).
			Return(shipment, nil)

		_, err := svc.CreateShipment(context.Background(), customerStaffCtx("customer-1"), shipment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider shipments stay untagged", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		shipment := &types.Shipment{Reference: "SH-1"}
		m.shipments.EXPECT().Create(gomock.Any(), shipment, types.ScopeOwner{}).Return(shipment, nil)

		_, err := svc.CreateShipment(context.Background(), providerCtx(), shipment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_DeleteShipment(t *testing.T) {
	t.Run("out of scope shipments look like they do not exist", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.shipments.EXPECT().Visible(gomock.Any(), gomock.Any(), "ship-1").Return(false, nil)

		err := svc.DeleteShipment(context.Background(), customerStaffCtx("customer-1"), "ship-1")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("visible shipments are deleted", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.shipments.EXPECT().Visible(gomock.Any(), gomock.Any(), "ship-1").Return(true, nil)
		m.storage.EXPECT().DeleteShipment(gomock.Any(), "ship-1").Return(nil)

		if err := svc.DeleteShipment(context.Background(), customerStaffCtx("customer-1"), "ship-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_TenancyLinkAuthorization(t *testing.T) {
	t.Run("freight admin can link into own company", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().LinkCustomerToCompany(gomock.Any(), "company-1", "customer-1").Return(nil)

		if err := svc.LinkEndCustomer(context.Background(), freightAdminCtx("company-1"), "company-1", "customer-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("freight admin cannot link into another company", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		err := svc.LinkEndCustomer(context.Background(), freightAdminCtx("company-1"), "company-2", "customer-1")
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("freight admin cannot replace a customer's links wholesale", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		err := svc.SetCustomerCompanies(context.Background(), freightAdminCtx("company-1"), "customer-1", []string{"company-1"})
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("customer admin replaces their own customer's links", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-1").Return(&types.EndCustomer{ID: "customer-1"}, nil)
		m.storage.EXPECT().SetCustomerCompanies(gomock.Any(), "customer-1", []string{"company-1", "company-2"}).Return(nil)

		if err := svc.SetCustomerCompanies(context.Background(), customerAdminCtx("customer-1"), "customer-1", []string{"company-1", "company-2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer admin cannot replace another customer's links", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		err := svc.SetCustomerCompanies(context.Background(), customerAdminCtx("customer-1"), "customer-2", []string{"company-1"})
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("customer staff cannot replace company links", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		err := svc.SetCustomerCompanies(context.Background(), customerStaffCtx("customer-1"), "customer-1", []string{"company-1"})
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("provider replaces links after checking the customer exists", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-1").Return(&types.EndCustomer{ID: "customer-1"}, nil)
		m.storage.EXPECT().SetCustomerCompanies(gomock.Any(), "customer-1", []string{"company-1", "company-2"}).Return(nil)

		if err := svc.SetCustomerCompanies(context.Background(), providerCtx(), "customer-1", []string{"company-1", "company-2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer member sees their linked companies", func(t *testing.T) {
		svc, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ListCompaniesByCustomerID(gomock.Any(), "customer-1").
			Return([]*types.FreightCompany{{ID: "company-1"}}, nil)

		companies, err := svc.ListLinkedCompanies(context.Background(), customerStaffCtx("customer-1"), "customer-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(companies) != 1 {
			t.Fatalf("expected 1 company, got %d", len(companies))
		}
	})

	t.Run("customer member cannot inspect another customer's links", func(t *testing.T) {
		svc, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := svc.ListLinkedCompanies(context.Background(), customerStaffCtx("customer-1"), "customer-2")
		if !errors.Is(err, authorization.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestService_ListShipmentsUsesCallerScope(t *testing.T) {
	svc, m, ctrl := newTestService(t)
	defer ctrl.Finish()

	m.shipments.EXPECT().List(gomock.Any(), types.ScopeFilter{CustomerIDs: []string{"customer-1"}}).
		Return([]*types.Shipment{{ID: "ship-1"}}, nil)

	shipments, err := svc.ListShipments(context.Background(), customerStaffCtx("customer-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shipments) != 1 {
		t.Fatalf("expected 1 shipment, got %d", len(shipments))
	}
}
