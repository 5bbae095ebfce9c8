// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invitations implements the invitation lifecycle: issuance by an
// authorized caller, delivery by email, and single-use acceptance that
// provisions the invitee's identity and role assignment atomically.
package invitations

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/canonical/freight-hierarchy-service/internal/authorization"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
	"github.com/canonical/freight-hierarchy-service/pkg/profiles"
)

var (
	// ErrExpired is returned for invitations past their expiry.
	ErrExpired = errors.New("invitation has expired")
	// ErrAlreadyAccepted is returned when the single-use token was spent.
	ErrAlreadyAccepted = errors.New("invitation was already accepted")
	// ErrDeliveryFailure is returned when the invitation was recorded but
	// the email could not be sent. The invitation stays valid.
	ErrDeliveryFailure = errors.New("failed to deliver invitation email")
)

// Config carries the issuance policy.
type Config struct {
	// Lifetime is how long a token stays valid after issuance.
	Lifetime time.Duration
	// BaseURL is the externally reachable prefix for acceptance links.
	BaseURL string
	// RestrictToLinked requires freight admins to only invite users into
	// customers already linked to their company.
	RestrictToLinked bool
}

type Service struct {
	config  Config
	storage StorageInterface
	db      DBClientInterface
	kratos  KratosClientInterface
	mail    MailInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(config Config, storage StorageInterface, db DBClientInterface, kratos KratosClientInterface, mail MailInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.config = config
	s.storage = storage
	s.db = db
	s.kratos = kratos
	s.mail = mail

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Issue records an invitation and emails the acceptance link. The caller
// must be allowed to grant the invited role; a delivery failure is reported
// as ErrDeliveryFailure together with the persisted invitation.
func (s *Service) Issue(ctx context.Context, authzCtx *authorization.Context, email string, role types.Role, companyID, customerID string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Issue")
	defer span.End()

	if err := s.authorizeIssue(authzCtx, role, companyID, customerID); err != nil {
		s.logger.Security().AuthorizationDenied(authzCtx.IdentityID(), "invitations.Issue")
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

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	invitation, err := s.storage.InsertInvitation(ctx, &types.Invitation{
		Email:      email,
		Token:      token,
		Role:       role,
		CompanyID:  companyID,
		CustomerID: customerID,
		InvitedBy:  authzCtx.IdentityID(),
		ExpiresAt:  time.Now().Add(s.config.Lifetime),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record invitation: %w", err)
	}

	s.logger.Security().InvitationIssued(email, string(role))

	link := fmt.Sprintf("%s/invitations/%s", s.config.BaseURL, invitation.Token)
	body := fmt.Sprintf("You have been invited to join as %s.\n\nAccept your invitation: %s\n\nThe invitation expires on %s.", role, link, invitation.ExpiresAt.Format(time.RFC1123))
	if err := s.mail.Send(ctx, email, "You have been invited", body); err != nil {
		s.logger.Errorf("failed to deliver invitation %s: %s", invitation.ID, err)
		return invitation, ErrDeliveryFailure
	}

	return invitation, nil
}

// Get validates a token and returns the invitation behind it.
func (s *Service) Get(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Get")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invitation.Accepted {
		return nil, ErrAlreadyAccepted
	}
	if invitation.IsExpired(time.Now()) {
		return nil, ErrExpired
	}

	return invitation, nil
}

// Accept spends the token: it provisions the invitee's identity, writes the
// role assignment the invitation promised, and marks the invitation
// accepted, all in one transaction. A concurrent acceptance of the same
// token loses on the accepted-flag guard and rolls back.
func (s *Service) Accept(ctx context.Context, token, username, password string) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Accept")
	defer span.End()

	var assignment *types.RoleAssignment
	var email string

	err := s.db.WithTx(ctx, func(txCtx context.Context) error {
		invitation, err := s.storage.GetInvitationByToken(txCtx, token)
		if err != nil {
			return err
		}
		if invitation.Accepted {
			return ErrAlreadyAccepted
		}
		if invitation.IsExpired(time.Now()) {
			return ErrExpired
		}
		email = invitation.Email

		identityID, err := s.kratos.GetIdentityIDByEmail(txCtx, invitation.Email)
		if err != nil {
			return fmt.Errorf("failed to look up identity: %w", err)
		}
		if identityID == "" {
			// Identity creation happens outside the database transaction. If
			// a later step rolls back, the identity survives without a role
			// assignment; a retry finds it through the email lookup above and
			// the lazy default assignment keeps it scoped to nothing.
			identityID, err = s.kratos.CreateIdentityWithCredentials(txCtx, invitation.Email, username, password)
			if err != nil {
				return fmt.Errorf("failed to provision identity: %w", err)
			}
		}

		assignment = &types.RoleAssignment{
			IdentityID: identityID,
			Role:       invitation.Role,
			CompanyID:  invitation.CompanyID,
			CustomerID: invitation.CustomerID,
		}
		created, err := s.storage.InsertRoleAssignment(txCtx, assignment)
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Invitee signed in before: replace the lazily created default
			// assignment with the invited one.
			if err := s.storage.UpdateRoleAssignment(txCtx, assignment); err != nil {
				return fmt.Errorf("failed to update role assignment: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to insert role assignment: %w", err)
		} else {
			assignment = created
		}

		if err := s.storage.MarkInvitationAccepted(txCtx, invitation.ID, time.Now()); err != nil {
			// The invitation was read unaccepted in this transaction, so a
			// miss on the accepted-flag guard means a concurrent acceptance
			// committed first.
			if errors.Is(err, storage.ErrNotFound) {
				return ErrAlreadyAccepted
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InvitationAccepted(email, assignment.IdentityID)

	return assignment, nil
}

// List returns the invitations visible to the caller: the provider sees
// all, tenant admins see their own tenant's.
func (s *Service) List(ctx context.Context, authzCtx *authorization.Context) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.List")
	defer span.End()

	switch authzCtx.Role() {
	case types.RoleSaaSProvider:
		return s.storage.ListInvitations(ctx, "", "")
	case types.RoleFreightAdmin:
		if authzCtx.CompanyID() == "" {
			return nil, authorization.ErrUnauthorized
		}
		return s.storage.ListInvitations(ctx, authzCtx.CompanyID(), "")
	case types.RoleEndCustomerAdmin:
		if authzCtx.CustomerID() == "" {
			return nil, authorization.ErrUnauthorized
		}
		return s.storage.ListInvitations(ctx, "", authzCtx.CustomerID())
	}

	return nil, authorization.ErrUnauthorized
}

// authorizeIssue enforces who may grant which role where.
func (s *Service) authorizeIssue(authzCtx *authorization.Context, role types.Role, companyID, customerID string) error {
	if err := validateLinkage(role, companyID, customerID); err != nil {
		return err
	}

	switch authzCtx.Role() {
	case types.RoleSaaSProvider:
		return nil
	case types.RoleFreightAdmin:
		// Freight admins onboard end-customer users only; company admin
		// grants go through staff management.
		if authzCtx.CompanyID() == "" || role == types.RoleFreightAdmin {
			return authorization.ErrUnauthorized
		}
		if s.config.RestrictToLinked && !slices.Contains(authzCtx.ScopeFilter().CustomerIDs, customerID) {
			return authorization.ErrUnauthorized
		}
		return nil
	case types.RoleEndCustomerAdmin:
		if role == types.RoleFreightAdmin || role == types.RoleSaaSProvider {
			return authorization.ErrUnauthorized
		}
		if authzCtx.CustomerID() == "" || customerID != authzCtx.CustomerID() {
			return authorization.ErrUnauthorized
		}
		return nil
	}

	return authorization.ErrUnauthorized
}

func validateLinkage(role types.Role, companyID, customerID string) error {
	switch role {
	case types.RoleFreightAdmin:
		if companyID == "" || customerID != "" {
			return profiles.ErrInvalidRoleLinkage
		}
	case types.RoleEndCustomerAdmin, types.RoleEndCustomerStaff:
		if customerID == "" || companyID != "" {
			return profiles.ErrInvalidRoleLinkage
		}
	default:
		// Provider access is granted out of band, never by invitation.
		return profiles.ErrInvalidRoleLinkage
	}
	return nil
}

// newToken draws 128 bits from the system CSPRNG.
func newToken() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
