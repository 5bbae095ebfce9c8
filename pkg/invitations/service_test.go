// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
	"github.com/canonical/freight-hierarchy-service/pkg/profiles"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	db      *MockDBClientInterface
	kratos  *MockKratosClientInterface
	mail    *MockMailInterface
}

func newTestService(t *testing.T, config Config) (*Service, *serviceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		db:      NewMockDBClientInterface(ctrl),
		kratos:  NewMockKratosClientInterface(ctrl),
		mail:    NewMockMailInterface(ctrl),
	}
	svc := NewService(config, m.storage, m.db, m.kratos, m.mail, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return svc, m, ctrl
}

func defaultConfig() Config {
	return Config{
		Lifetime:         168 * time.Hour,
		BaseURL:          "http://localhost:8080",
		RestrictToLinked: true,
	}
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

func TestService_IssueAuthorization(t *testing.T) {
	testCases := []struct {
		name             string
		restrictToLinked bool
		authzCtx         *authorization.Context
		role             types.Role
		companyID        string
		customerID       string
		expectedErr      error
	}{
		{
			name:        "anonymous cannot issue",
			authzCtx:    authorization.NewContext("", nil, nil),
			role:        types.RoleEndCustomerStaff,
			customerID:  "customer-1",
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:        "provider role cannot be granted by invitation",
			authzCtx:    providerCtx(),
			role:        types.RoleSaaSProvider,
			expectedErr: profiles.ErrInvalidRoleLinkage,
		},
		{
			name:        "freight admin invite requires a company",
			authzCtx:    providerCtx(),
			role:        types.RoleFreightAdmin,
			expectedErr: profiles.ErrInvalidRoleLinkage,
		},
		{
			name:        "freight admin cannot invite into another company",
			authzCtx:    freightAdminCtx("company-1"),
			role:        types.RoleFreightAdmin,
			companyID:   "company-2",
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:        "freight admin cannot invite freight admins even for their own company",
			authzCtx:    freightAdminCtx("company-1"),
			role:        types.RoleFreightAdmin,
			companyID:   "company-1",
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:             "restricted freight admin cannot invite into unlinked customer",
			restrictToLinked: true,
			authzCtx:         freightAdminCtx("company-1", "customer-1"),
			role:             types.RoleEndCustomerAdmin,
			customerID:       "customer-2",
			expectedErr:      authorization.ErrUnauthorized,
		},
		{
			name:        "customer admin cannot invite freight admins",
			authzCtx:    customerAdminCtx("customer-1"),
			role:        types.RoleFreightAdmin,
			companyID:   "company-1",
			expectedErr: authorization.ErrUnauthorized,
		},
		{
			name:        "customer admin cannot invite into another customer",
			authzCtx:    customerAdminCtx("customer-1"),
			role:        types.RoleEndCustomerStaff,
			customerID:  "customer-2",
			expectedErr: authorization.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := defaultConfig()
			config.RestrictToLinked = tc.restrictToLinked

			svc, _, ctrl := newTestService(t, config)
			defer ctrl.Finish()

			_, err := svc.Issue(context.Background(), tc.authzCtx, "invitee@acme.test", tc.role, tc.companyID, tc.customerID)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_IssueSuccess(t *testing.T) {
	svc, m, ctrl := newTestService(t, defaultConfig())
	defer ctrl.Finish()

	var inserted *types.Invitation
	m.storage.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-1").Return(&types.EndCustomer{ID: "customer-1"}, nil)
	m.storage.EXPECT().InsertInvitation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
			inserted = inv
			inv.ID = "inv-1"
			return inv, nil
		})
	m.mail.EXPECT().Send(gomock.Any(), "invitee@acme.test", gomock.Any(), gomock.Any()).Return(nil)

	before := time.Now()
	invitation, err := svc.Issue(context.Background(), customerAdminCtx("customer-1"), "invitee@acme.test", types.RoleEndCustomerStaff, "", "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invitation.ID != "inv-1" {
		t.Errorf("expected persisted invitation back, got %+v", invitation)
	}
	// 128 bits in unpadded base64url.
	if len(inserted.Token) != 22 {
		t.Errorf("expected a 22 character token, got %q", inserted.Token)
	}
	if inserted.InvitedBy != "cadmin-1" {
		t.Errorf("expected issuer to be recorded, got %q", inserted.InvitedBy)
	}
	wantExpiry := before.Add(168 * time.Hour)
	if inserted.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || inserted.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expected expiry about %v, got %v", wantExpiry, inserted.ExpiresAt)
	}
}

func TestService_IssueUnrestrictedAllowsUnlinkedCustomer(t *testing.T) {
	config := defaultConfig()
	config.RestrictToLinked = false

	svc, m, ctrl := newTestService(t, config)
	defer ctrl.Finish()

	m.storage.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-2").Return(&types.EndCustomer{ID: "customer-2"}, nil)
	m.storage.EXPECT().InsertInvitation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
			return inv, nil
		})
	m.mail.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Issue(context.Background(), freightAdminCtx("company-1", "customer-1"), "invitee@acme.test", types.RoleEndCustomerAdmin, "", "customer-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_IssueDeliveryFailureKeepsInvitation(t *testing.T) {
	svc, m, ctrl := newTestService(t, defaultConfig())
	defer ctrl.Finish()

	m.storage.EXPECT().GetEndCustomerByID(gomock.Any(), "customer-1").Return(&types.EndCustomer{ID: "customer-1"}, nil)
	m.storage.EXPECT().InsertInvitation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
			inv.ID = "inv-1"
			return inv, nil
		})
	m.mail.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp unreachable"))

	invitation, err := svc.Issue(context.Background(), customerAdminCtx("customer-1"), "invitee@acme.test", types.RoleEndCustomerStaff, "", "customer-1")
	if !errors.Is(err, ErrDeliveryFailure) {
		t.Fatalf("expected ErrDeliveryFailure, got %v", err)
	}
	if invitation == nil || invitation.ID != "inv-1" {
		t.Fatalf("expected the persisted invitation alongside the error, got %+v", invitation)
	}
}

func TestService_Get(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		invitation  *types.Invitation
		storageErr  error
		expectedErr error
	}{
		{
			name:        "unknown token",
			storageErr:  storage.ErrNotFound,
			expectedErr: storage.ErrNotFound,
		},
		{
			name:        "already accepted",
			invitation:  &types.Invitation{Token: "tok", Accepted: true, ExpiresAt: now.Add(time.Hour)},
			expectedErr: ErrAlreadyAccepted,
		},
		{
			name:        "expired",
			invitation:  &types.Invitation{Token: "tok", ExpiresAt: now.Add(-time.Hour)},
			expectedErr: ErrExpired,
		},
		{
			name:       "valid",
			invitation: &types.Invitation{Token: "tok", ExpiresAt: now.Add(time.Hour)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m, ctrl := newTestService(t, defaultConfig())
			defer ctrl.Finish()

			m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(tc.invitation, tc.storageErr)

			_, err := svc.Get(context.Background(), "tok")
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

func TestService_Accept(t *testing.T) {
	validInvitation := func() *types.Invitation {
		return &types.Invitation{
			ID:         "inv-1",
			Email:      "invitee@acme.test",
			Token:      "tok",
			Role:       types.RoleEndCustomerAdmin,
			CustomerID: "customer-1",
			ExpiresAt:  time.Now().Add(time.Hour),
		}
	}

	passTx := func(m *serviceMocks) {
		m.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
	}

	t.Run("provisions a new identity", func(t *testing.T) {
		svc, m, ctrl := newTestService(t, defaultConfig())
		defer ctrl.Finish()

		passTx(m)
		m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(validInvitation(), nil)
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "invitee@acme.test").Return("", nil)
		m.kratos.EXPECT().CreateIdentityWithCredentials(gomock.Any(), "invitee@acme.test", "invitee", "s3cr3tpass").Return("identity-9", nil)
		m.storage.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
				if a.IdentityID != "identity-9" || a.Role != types.RoleEndCustomerAdmin || a.CustomerID != "customer-1" {
					t.Errorf("unexpected assignment %+v", a)
				}
				return a, nil
			})
		m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)

		assignment, err := svc.Accept(context.Background(), "tok", "invitee", "s3cr3tpass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if assignment.IdentityID != "identity-9" {
			t.Errorf("expected assignment for the new identity, got %+v", assignment)
		}
	})

	t.Run("reuses an existing identity and replaces its default assignment", func(t *testing.T) {
		svc, m, ctrl := newTestService(t, defaultConfig())
		defer ctrl.Finish()

		passTx(m)
		m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(validInvitation(), nil)
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "invitee@acme.test").Return("identity-5", nil)
		m.storage.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
		m.storage.EXPECT().UpdateRoleAssignment(gomock.Any(), gomock.Any()).Return(nil)
		m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)

		assignment, err := svc.Accept(context.Background(), "tok", "invitee", "s3cr3tpass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if assignment.IdentityID != "identity-5" {
			t.Errorf("expected assignment for the existing identity, got %+v", assignment)
		}
	})

	t.Run("expired invitation aborts before provisioning", func(t *testing.T) {
		svc, m, ctrl := newTestService(t, defaultConfig())
		defer ctrl.Finish()

		expired := validInvitation()
		expired.ExpiresAt = time.Now().Add(-time.Hour)

		passTx(m)
		m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(expired, nil)

		_, err := svc.Accept(context.Background(), "tok", "invitee", "s3cr3tpass")
		if !errors.Is(err, ErrExpired) {
			t.Fatalf("expected ErrExpired, got %v", err)
		}
	})

	t.Run("spent token is rejected", func(t *testing.T) {
		svc, m, ctrl := newTestService(t, defaultConfig())
		defer ctrl.Finish()

		spent := validInvitation()
		spent.Accepted = true

		passTx(m)
		m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(spent, nil)

		_, err := svc.Accept(context.Background(), "tok", "invitee", "s3cr3tpass")
		if !errors.Is(err, ErrAlreadyAccepted) {
			t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
		}
	})

	t.Run("losing a concurrent acceptance reports the token as spent", func(t *testing.T) {
		svc, m, ctrl := newTestService(t, defaultConfig())
		defer ctrl.Finish()

		passTx(m)
		m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(validInvitation(), nil)
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "invitee@acme.test").Return("identity-5", nil)
		m.storage.EXPECT().InsertRoleAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
				return a, nil
			})
		m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(storage.ErrNotFound)

		_, err := svc.Accept(context.Background(), "tok", "invitee", "s3cr3tpass")
		if !errors.Is(err, ErrAlreadyAccepted) {
			t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
		}
	})

	t.Run("identity provisioning failure rolls back", func(t *testing.T) {
		svc, m, ctrl := newTestService(t, defaultConfig())
		defer ctrl.Finish()

		passTx(m)
		m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(validInvitation(), nil)
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "invitee@acme.test").Return("", nil)
		m.kratos.EXPECT().CreateIdentityWithCredentials(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("kratos unavailable"))

		_, err := svc.Accept(context.Background(), "tok", "invitee", "s3cr3tpass")
		if err == nil {
			t.Fatal("expected error but got none")
		}
	})
}

func TestService_List(t *testing.T) {
	testCases := []struct {
		name        string
		authzCtx    *authorization.Context
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:     "provider lists everything",
			authzCtx: providerCtx(),
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListInvitations(gomock.Any(), "", "").Return(nil, nil)
			},
		},
		{
			name:     "freight admin lists own company",
			authzCtx: freightAdminCtx("company-1"),
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListInvitations(gomock.Any(), "company-1", "").Return(nil, nil)
			},
		},
		{
			name:     "customer admin lists own customer",
			authzCtx: customerAdminCtx("customer-1"),
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListInvitations(gomock.Any(), "", "customer-1").Return(nil, nil)
			},
		},
		{
			name:        "staff cannot list invitations",
			authzCtx:    authorization.NewContext("staff-1", &types.RoleAssignment{IdentityID: "staff-1", Role: types.RoleEndCustomerStaff, CustomerID: "customer-1"}, nil),
			expectedErr: authorization.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m, ctrl := newTestService(t, defaultConfig())
			defer ctrl.Finish()

			if tc.setupMocks != nil {
				tc.setupMocks(m.storage)
			}

			_, err := svc.List(context.Background(), tc.authzCtx)
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
