// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

func (s *Storage) GetRoleAssignmentByIdentityID(ctx context.Context, identityID string) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleAssignmentByIdentityID")
	defer span.End()

	var (
		a                   types.RoleAssignment
		companyID, customer sql.NullString
	)
	err := s.db.Statement(ctx).
		Select("id", "identity_id", "role", "freight_company_id", "end_customer_id", "created_at").
		From("role_assignments").
		Where(sq.Eq{"identity_id": identityID}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.IdentityID, &a.Role, &companyID, &customer, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role assignment: %w", err)
	}

	a.CompanyID = stringOrEmpty(companyID)
	a.CustomerID = stringOrEmpty(customer)

	return &a, nil
}

func (s *Storage) InsertRoleAssignment(ctx context.Context, a *types.RoleAssignment) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertRoleAssignment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate assignment ID: %w", err)
	}

	var (
		created             types.RoleAssignment
		companyID, customer sql.NullString
	)
	err = s.db.Statement(ctx).
		Insert("role_assignments").
		Columns("id", "identity_id", "role", "freight_company_id", "end_customer_id").
		Values(id.String(), a.IdentityID, a.Role, nullable(a.CompanyID), nullable(a.CustomerID)).
		Suffix("RETURNING id, identity_id, role, freight_company_id, end_customer_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.IdentityID, &created.Role, &companyID, &customer, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert role assignment: %w", err)
	}

	created.CompanyID = stringOrEmpty(companyID)
	created.CustomerID = stringOrEmpty(customer)

	return &created, nil
}

func (s *Storage) UpdateRoleAssignment(ctx context.Context, a *types.RoleAssignment) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRoleAssignment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("role_assignments").
		Set("role", a.Role).
		Set("freight_company_id", nullable(a.CompanyID)).
		Set("end_customer_id", nullable(a.CustomerID)).
		Where(sq.Eq{"identity_id": a.IdentityID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update role assignment: %w", err)
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

func (s *Storage) DeleteRoleAssignment(ctx context.Context, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRoleAssignment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("role_assignments").
		Where(sq.Eq{"identity_id": identityID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete role assignment: %w", err)
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

// ListRoleAssignments lists assignments filtered by any combination of role,
// company link and customer link; empty arguments are ignored.
func (s *Storage) ListRoleAssignments(ctx context.Context, role types.Role, companyID, customerID string) ([]*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleAssignments")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "identity_id", "role", "freight_company_id", "end_customer_id", "created_at").
		From("role_assignments").
		OrderBy("created_at ASC")

	if role != "" {
		query = query.Where(sq.Eq{"role": role})
	}
	if companyID != "" {
		query = query.Where(sq.Eq{"freight_company_id": companyID})
	}
	if customerID != "" {
		query = query.Where(sq.Eq{"end_customer_id": customerID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*types.RoleAssignment
	for rows.Next() {
		var (
			a                 types.RoleAssignment
			company, customer sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.IdentityID, &a.Role, &company, &customer, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role assignment: %w", err)
		}
		a.CompanyID = stringOrEmpty(company)
		a.CustomerID = stringOrEmpty(customer)
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}
