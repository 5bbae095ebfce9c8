// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go

func newTestAuthorizer(s StorageInterface) *Authorizer {
	return NewAuthorizer(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestAuthorizer_BuildContext(t *testing.T) {
	identityID := "identity-1"

	testCases := []struct {
		name         string
		identityID   string
		setupMocks   func(*MockStorageInterface)
		expectedRole types.Role
		expectedErr  bool
	}{
		{
			name:         "anonymous caller gets the empty context",
			identityID:   "",
			setupMocks:   func(m *MockStorageInterface) {},
			expectedRole: "",
		},
		{
			name:       "existing assignment is used as is",
			identityID: identityID,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), identityID).
					Return(&types.RoleAssignment{IdentityID: identityID, Role: types.RoleSaaSProvider}, nil)
			},
			expectedRole: types.RoleSaaSProvider,
		},
		{
			name:       "first login creates the default assignment",
			identityID: identityID,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), identityID).
					Return(nil, storage.ErrNotFound)
				m.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
						if a.Role != types.RoleEndCustomerAdmin {
							t.Errorf("expected default role %s, got %s", types.RoleEndCustomerAdmin, a.Role)
						}
						if a.CompanyID != "" || a.CustomerID != "" {
							t.Errorf("default assignment must carry no tenant links, got %+v", a)
						}
						return a, nil
					})
			},
			expectedRole: types.RoleEndCustomerAdmin,
		},
		{
			name:       "lost race against concurrent first request rereads",
			identityID: identityID,
			setupMocks: func(m *MockStorageInterface) {
				first := m.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), identityID).
					Return(nil, storage.ErrNotFound)
				m.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrDuplicateKey)
				m.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), identityID).
					After(first).
					Return(&types.RoleAssignment{IdentityID: identityID, Role: types.RoleEndCustomerAdmin}, nil)
			},
			expectedRole: types.RoleEndCustomerAdmin,
		},
		{
			name:       "freight admin preloads linked customers",
			identityID: identityID,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), identityID).
					Return(&types.RoleAssignment{IdentityID: identityID, Role: types.RoleFreightAdmin, CompanyID: "company-1"}, nil)
				m.EXPECT().ListCustomerIDsByCompanyID(gomock.Any(), "company-1").
					Return([]string{"customer-1"}, nil)
			},
			expectedRole: types.RoleFreightAdmin,
		},
		{
			name:       "storage error is surfaced",
			identityID: identityID,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetRoleAssignmentByIdentityID(gomock.Any(), identityID).
					Return(nil, errors.New("connection refused"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			authz := newTestAuthorizer(mockStorage)

			authzCtx, err := authz.BuildContext(context.Background(), tc.identityID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if authzCtx.Role() != tc.expectedRole {
				t.Errorf("expected role %q, got %q", tc.expectedRole, authzCtx.Role())
			}
		})
	}
}

func TestContext_ScopeFilter(t *testing.T) {
	testCases := []struct {
		name              string
		assignment        *types.RoleAssignment
		linkedCustomerIDs []string
		expected          types.ScopeFilter
	}{
		{
			name:     "anonymous matches nothing",
			expected: types.ScopeFilter{},
		},
		{
			name:       "provider matches everything",
			assignment: &types.RoleAssignment{Role: types.RoleSaaSProvider},
			expected:   types.ScopeFilter{All: true},
		},
		{
			name:              "freight admin matches own company and linked customers",
			assignment:        &types.RoleAssignment{Role: types.RoleFreightAdmin, CompanyID: "company-1"},
			linkedCustomerIDs: []string{"customer-1", "customer-2"},
			expected: types.ScopeFilter{
				CompanyIDs:  []string{"company-1"},
				CustomerIDs: []string{"customer-1", "customer-2"},
			},
		},
		{
			name:       "freight admin without company matches nothing",
			assignment: &types.RoleAssignment{Role: types.RoleFreightAdmin},
			expected:   types.ScopeFilter{},
		},
		{
			name:       "customer admin matches own customer",
			assignment: &types.RoleAssignment{Role: types.RoleEndCustomerAdmin, CustomerID: "customer-1"},
			expected:   types.ScopeFilter{CustomerIDs: []string{"customer-1"}},
		},
		{
			name:       "customer staff matches own customer",
			assignment: &types.RoleAssignment{Role: types.RoleEndCustomerStaff, CustomerID: "customer-1"},
			expected:   types.ScopeFilter{CustomerIDs: []string{"customer-1"}},
		},
		{
			name:       "default assignment without links matches nothing",
			assignment: &types.RoleAssignment{Role: types.RoleEndCustomerAdmin},
			expected:   types.ScopeFilter{},
		},
		{
			name:       "unknown role matches nothing",
			assignment: &types.RoleAssignment{Role: "SUPERUSER"},
			expected:   types.ScopeFilter{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContext("identity-1", tc.assignment, tc.linkedCustomerIDs)

			got := c.ScopeFilter()
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected filter %+v, got %+v", tc.expected, got)
			}
		})
	}
}
