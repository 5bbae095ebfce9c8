// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

func (s *Storage) InsertInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var (
		created           types.Invitation
		company, customer sql.NullString
		invitedBy         sql.NullString
		acceptedAt        sql.NullTime
	)
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "token", "role", "freight_company_id", "end_customer_id", "invited_by", "expires_at").
		Values(id.String(), inv.Email, inv.Token, inv.Role, nullable(inv.CompanyID), nullable(inv.CustomerID), nullable(inv.InvitedBy), inv.ExpiresAt).
		Suffix("RETURNING id, email, token, role, freight_company_id, end_customer_id, invited_by, created_at, expires_at, accepted, accepted_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Email, &created.Token, &created.Role, &company, &customer, &invitedBy, &created.CreatedAt, &created.ExpiresAt, &created.Accepted, &acceptedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	created.CompanyID = stringOrEmpty(company)
	created.CustomerID = stringOrEmpty(customer)
	created.InvitedBy = stringOrEmpty(invitedBy)
	if acceptedAt.Valid {
		created.AcceptedAt = &acceptedAt.Time
	}

	return &created, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	var (
		inv               types.Invitation
		company, customer sql.NullString
		invitedBy         sql.NullString
		acceptedAt        sql.NullTime
	)
	err := s.db.Statement(ctx).
		Select("id", "email", "token", "role", "freight_company_id", "end_customer_id", "invited_by", "created_at", "expires_at", "accepted", "accepted_at").
		From("invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.Email, &inv.Token, &inv.Role, &company, &customer, &invitedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.Accepted, &acceptedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	inv.CompanyID = stringOrEmpty(company)
	inv.CustomerID = stringOrEmpty(customer)
	inv.InvitedBy = stringOrEmpty(invitedBy)
	if acceptedAt.Valid {
		inv.AcceptedAt = &acceptedAt.Time
	}

	return &inv, nil
}

// MarkInvitationAccepted flips the invitation to accepted. The guard on the
// accepted column makes concurrent acceptances race safely: only one caller
// sees a row updated, every other caller gets ErrNotFound.
func (s *Storage) MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("accepted", true).
		Set("accepted_at", acceptedAt).
		Where(sq.Eq{"id": id, "accepted": false}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListInvitations lists invitations scoped to a company or customer;
// empty arguments are ignored.
func (s *Storage) ListInvitations(ctx context.Context, companyID, customerID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitations")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "email", "token", "role", "freight_company_id", "end_customer_id", "invited_by", "created_at", "expires_at", "accepted", "accepted_at").
		From("invitations").
		OrderBy("created_at DESC")

	if companyID != "" {
		query = query.Where(sq.Eq{"freight_company_id": companyID})
	}
	if customerID != "" {
		query = query.Where(sq.Eq{"end_customer_id": customerID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var (
			inv               types.Invitation
			company, customer sql.NullString
			invitedBy         sql.NullString
			acceptedAt        sql.NullTime
		)
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.Token, &inv.Role, &company, &customer, &invitedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.Accepted, &acceptedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		inv.CompanyID = stringOrEmpty(company)
		inv.CustomerID = stringOrEmpty(customer)
		inv.InvitedBy = stringOrEmpty(invitedBy)
		if acceptedAt.Valid {
			inv.AcceptedAt = &acceptedAt.Time
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}
