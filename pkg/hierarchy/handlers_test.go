// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hierarchy

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/identity"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

func newTestAPI(service ServiceInterface, authorizer AuthorizerInterface) *chi.Mux {
	api := NewAPI(service, authorizer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux
}

func TestAPI_HandleRegisterCompany(t *testing.T) {
	authzCtx := providerCtx()

	tests := []struct {
		name           string
		body           any
		setupMocks     func(*MockServiceInterface, *MockAuthorizerInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: RegisterCompanyRequest{Name: "Acme Freight", Email: "ops@acme.test"},
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().BuildContext(gomock.Any(), "provider-1").Return(authzCtx, nil)
				svc.EXPECT().RegisterFreightCompany(gomock.Any(), authzCtx, gomock.Any()).
					DoAndReturn(func(ctx any, a any, c *types.FreightCompany) (*types.FreightCompany, error) {
						c.ID = "company-1"
						return c, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing name fails validation",
			body: RegisterCompanyRequest{Email: "ops@acme.test"},
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().BuildContext(gomock.Any(), "provider-1").Return(authzCtx, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "non provider is forbidden",
			body: RegisterCompanyRequest{Name: "Acme Freight", Email: "ops@acme.test"},
			setupMocks: func(svc *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().BuildContext(gomock.Any(), "provider-1").Return(authzCtx, nil)
				svc.EXPECT().RegisterFreightCompany(gomock.Any(), authzCtx, gomock.Any()).
					Return(nil, authorization.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthorizer := NewMockAuthorizerInterface(ctrl)
			tt.setupMocks(mockService, mockAuthorizer)

			mux := newTestAPI(mockService, mockAuthorizer)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/v0/companies", bytes.NewReader(body))
			req = req.WithContext(identity.WithIdentityID(req.Context(), "provider-1"))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_HandleListShipments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthorizer := NewMockAuthorizerInterface(ctrl)

	authzCtx := customerStaffCtx("customer-1")
	mockAuthorizer.EXPECT().BuildContext(gomock.Any(), "staff-1").Return(authzCtx, nil)
	mockService.EXPECT().ListShipments(gomock.Any(), authzCtx).
		Return([]*types.Shipment{{ID: "ship-1", Reference: "SH-1"}}, nil)

	mux := newTestAPI(mockService, mockAuthorizer)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/shipments", nil)
	req = req.WithContext(identity.WithIdentityID(req.Context(), "staff-1"))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Data []*types.Shipment `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Reference != "SH-1" {
		t.Errorf("unexpected shipments payload: %+v", resp.Data)
	}
}

func TestAPI_HandleDeleteShipment(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "out of scope", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthorizer := NewMockAuthorizerInterface(ctrl)

			authzCtx := customerStaffCtx("customer-1")
			mockAuthorizer.EXPECT().BuildContext(gomock.Any(), "staff-1").Return(authzCtx, nil)
			mockService.EXPECT().DeleteShipment(gomock.Any(), authzCtx, "ship-1").Return(tt.serviceErr)

			mux := newTestAPI(mockService, mockAuthorizer)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/shipments/ship-1", nil)
			req = req.WithContext(identity.WithIdentityID(req.Context(), "staff-1"))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_HandleLink(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusCreated},
		{name: "duplicate link", serviceErr: storage.ErrDuplicateKey, expectedStatus: http.StatusConflict},
		{name: "unknown tenant", serviceErr: storage.ErrForeignKeyViolation, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthorizer := NewMockAuthorizerInterface(ctrl)

			authzCtx := freightAdminCtx("company-1")
			mockAuthorizer.EXPECT().BuildContext(gomock.Any(), "admin-1").Return(authzCtx, nil)
			mockService.EXPECT().LinkEndCustomer(gomock.Any(), authzCtx, "company-1", "customer-1").Return(tt.serviceErr)

			mux := newTestAPI(mockService, mockAuthorizer)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/companies/company-1/customers/customer-1", nil)
			req = req.WithContext(identity.WithIdentityID(req.Context(), "admin-1"))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}
