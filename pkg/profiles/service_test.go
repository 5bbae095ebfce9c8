// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"errors"
	"testing"

	ory "github.com/ory/client-go"
	"go.uber.org/mock/gomock"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(s StorageInterface, k KratosClientInterface) *Service {
	return NewService(s, k, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
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

func TestService_Reassign(t *testing.T) {
	testCases := []struct {
		name        string
		authzCtx    *authorization.Context
		role        types.Role
		companyID   string
		customerID  string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "only the provider can reassign",
			authzCtx:    freightAdminCtx("company-1"),
			role:        types.RoleFreightAdmin,
			companyID:   "company-1",
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:        "freight admin requires a company link",
			authzCtx:    providerCtx(),
			role:        types.RoleFreightAdmin,
			expectedErr: ErrInvalidRoleLinkage,
		},
		{
			name:        "provider must carry no links",
			authzCtx:    providerCtx(),
			role:        types.RoleSaaSProvider,
			companyID:   "company-1",
			expectedErr: ErrInvalidRoleLinkage,
		},
		{
			name:        "customer staff requires a customer link",
			authzCtx:    providerCtx(),
			role:        types.RoleEndCustomerStaff,
			expectedErr: ErrInvalidRoleLinkage,
		},
		{
			name:        "unknown role is rejected",
			authzCtx:    providerCtx(),
			role:        "SUPERUSER",
			expectedErr: ErrInvalidRoleLinkage,
		},
		{
			name:       "referenced company must exist",
			authzCtx:   providerCtx(),
			role:       types.RoleFreightAdmin,
			companyID:  "company-missing",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetFreightCompanyByID(gomock.Any(), "company-missing").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:      "first assignment inserts",
			authzCtx:  providerCtx(),
			role:      types.RoleFreightAdmin,
			companyID: "company-1",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetFreightCompanyByID(gomock.Any(), "company-1").Return(&types.FreightCompany{ID: "company-1"}, nil)
				m.EXPECT().UpdateRoleAssignment(gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
				m.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
						return a, nil
					})
			},
		},
		{
			name:       "existing assignment updates",
			authzCtx:   providerCtx(),
			role:       types.RoleEndCustomerAdmin,
			customerID: "customer-1",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-1").Return(&types.EndCustomer{ID: "customer-1"}, nil)
				m.EXPECT().UpdateRoleAssignment(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), "target-1").
					Return(&types.RoleAssignment{IdentityID: "target-1", Role: types.RoleEndCustomerAdmin, CustomerID: "customer-1"}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			if tc.setupMocks != nil {
				tc.setupMocks(mockStorage)
			}

			svc := newTestService(mockStorage, mockKratos)

			_, err := svc.Reassign(context.Background(), tc.authzCtx, "target-1", tc.role, tc.companyID, tc.customerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_AddCustomerStaff(t *testing.T) {
	testCases := []struct {
		name        string
		authzCtx    *authorization.Context
		role        types.Role
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "company roles cannot be granted through customer staff",
			authzCtx:    providerCtx(),
			role:        types.RoleFreightAdmin,
			expectedErr: ErrInvalidRoleLinkage,
		},
		{
			name:        "unlinked freight admin is rejected",
			authzCtx:    freightAdminCtx("company-1"),
			role:        types.RoleEndCustomerStaff,
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:        "admin of another customer is rejected",
			authzCtx:    customerAdminCtx("customer-2"),
			role:        types.RoleEndCustomerStaff,
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:     "linked freight admin can add staff",
			authzCtx: freightAdminCtx("company-1", "customer-1"),
			role:     types.RoleEndCustomerAdmin,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-1").Return(&types.EndCustomer{ID: "customer-1"}, nil)
				m.EXPECT().UpdateRoleAssignment(gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
				m.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
						return a, nil
					})
			},
		},
		{
			name:     "own admin can add staff",
			authzCtx: customerAdminCtx("customer-1"),
			role:     types.RoleEndCustomerStaff,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-1").Return(&types.EndCustomer{ID: "customer-1"}, nil)
				m.EXPECT().UpdateRoleAssignment(gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
				m.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
						return a, nil
					})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			if tc.setupMocks != nil {
				tc.setupMocks(mockStorage)
			}

			svc := newTestService(mockStorage, mockKratos)

			_, err := svc.AddCustomerStaff(context.Background(), tc.authzCtx, "customer-1", "target-1", tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_RemoveStaff(t *testing.T) {
	testCases := []struct {
		name        string
		authzCtx    *authorization.Context
		target      *types.RoleAssignment
		expectDel   bool
		expectedErr error
	}{
		{
			name:      "provider can remove anyone",
			authzCtx:  providerCtx(),
			target:    &types.RoleAssignment{IdentityID: "target-1", Role: types.RoleFreightAdmin, CompanyID: "company-9"},
			expectDel: true,
		},
		{
			name:      "company admin can remove own company staff",
			authzCtx:  freightAdminCtx("company-1"),
			target:    &types.RoleAssignment{IdentityID: "target-1", Role: types.RoleFreightAdmin, CompanyID: "company-1"},
			expectDel: true,
		},
		{
			name:        "company admin cannot remove staff of another company",
			authzCtx:    freightAdminCtx("company-1"),
			target:      &types.RoleAssignment{IdentityID: "target-1", Role: types.RoleFreightAdmin, CompanyID: "company-2"},
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:      "customer admin can remove own staff",
			authzCtx:  customerAdminCtx("customer-1"),
			target:    &types.RoleAssignment{IdentityID: "target-1", Role: types.RoleEndCustomerStaff, CustomerID: "customer-1"},
			expectDel: true,
		},
		{
			name:        "customer staff cannot remove anyone",
			authzCtx:    authorization.NewContext("staff-1", &types.RoleAssignment{IdentityID: "staff-1", Role: types.RoleEndCustomerStaff, CustomerID: "customer-1"}, nil),
			target:      &types.RoleAssignment{IdentityID: "target-1", Role: types.RoleEndCustomerStaff, CustomerID: "customer-1"},
			expectedErr: authorization.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)

			mockStorage.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), "target-1").Return(tc.target, nil)
			if tc.expectDel {
				mockStorage.EXPECT().DeleteRoleAssignment(gomock.Any(), "target-1").Return(nil)
			}

			svc := newTestService(mockStorage, mockKratos)

			err := svc.RemoveStaff(context.Background(), tc.authzCtx, "target-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListCustomerStaffEnrichesEmails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)

	mockStorage.EXPECT().ListRoleAssignments(gomock.Any(), types.Role(""), "", "customer-1").
		Return([]*types.RoleAssignment{
			{IdentityID: "id-1", Role: types.RoleEndCustomerAdmin, CustomerID: "customer-1"},
			{IdentityID: "id-2", Role: types.RoleEndCustomerStaff, CustomerID: "customer-1"},
		}, nil)
	mockKratos.EXPECT().GetIdentity(gomock.Any(), "id-1").
		Return(&ory.Identity{Id: "id-1", Traits: map[string]interface{}{"email": "admin@acme.test"}}, nil)
	mockKratos.EXPECT().GetIdentity(gomock.Any(), "id-2").
		Return(nil, errors.New("kratos unavailable"))

	svc := newTestService(mockStorage, mockKratos)

	staff, err := svc.ListCustomerStaff(context.Background(), customerAdminCtx("customer-1"), "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("expected 2 staff members, got %d", len(staff))
	}
	if staff[0].Email != "admin@acme.test" {
		t.Errorf("expected enriched email, got %q", staff[0].Email)
	}
	if staff[1].Email != "" {
		t.Errorf("expected empty email on lookup failure, got %q", staff[1].Email)
	}
}
