// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"time"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

type StorageInterface interface {
	InsertInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	ListInvitations(ctx context.Context, companyID, customerID string) ([]*types.Invitation, error)
	GetFreightCompanyByID(ctx context.Context, id string) (*types.FreightCompany, error)
	GetEndCustomerByID(ctx context.Context, id string) (*types.EndCustomer, error)
	InsertRoleAssignment(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error)
	UpdateRoleAssignment(ctx context.Context, a *types.RoleAssignment) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentityWithCredentials(ctx context.Context, email, username, password string) (string, error)
}

type DBClientInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type MailInterface interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type AuthorizerInterface interface {
	BuildContext(ctx context.Context, identityID string) (*authorization.Context, error)
}

type ServiceInterface interface {
	Issue(ctx context.Context, authzCtx *authorization.Context, email string, role types.Role, companyID, customerID string) (*types.Invitation, error)
	Get(ctx context.Context, token string) (*types.Invitation, error)
	Accept(ctx context.Context, token, username, password string) (*types.RoleAssignment, error)
	List(ctx context.Context, authzCtx *authorization.Context) ([]*types.Invitation, error)
}
