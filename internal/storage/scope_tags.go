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

// TagRecord attaches tenant links to a record. Tagging is idempotent: a
// record carries at most one tag and re-tagging an already tagged record
// is a no-op, so a retried create never flips ownership.
func (s *Storage) TagRecord(ctx context.Context, recordType types.RecordType, recordID string, owner types.ScopeOwner) error {
	ctx, span := s.tracer.Start(ctx, "storage.TagRecord")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate tag ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("scope_tags").
		Columns("id", "record_type", "record_id", "freight_company_id", "end_customer_id").
		Values(id.String(), recordType, recordID, nullable(owner.CompanyID), nullable(owner.CustomerID)).
		Suffix("ON CONFLICT (record_type, record_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to tag record: %w", err)
	}

	return nil
}

func (s *Storage) GetScopeTag(ctx context.Context, recordType types.RecordType, recordID string) (*types.ScopeTag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetScopeTag")
	defer span.End()

	var (
		tag               types.ScopeTag
		company, customer sql.NullString
	)
	err := s.db.Statement(ctx).
		Select("id", "record_type", "record_id", "freight_company_id", "end_customer_id", "created_at").
		From("scope_tags").
		Where(sq.Eq{"record_type": recordType, "record_id": recordID}).
		QueryRowContext(ctx).
		Scan(&tag.ID, &tag.RecordType, &tag.RecordID, &company, &customer, &tag.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scope tag: %w", err)
	}

	tag.CompanyID = stringOrEmpty(company)
	tag.CustomerID = stringOrEmpty(customer)

	return &tag, nil
}

// QueryRecordIDs returns the IDs of records of the given type whose tag
// matches the filter. Callers must handle the match-all and match-none
// filters themselves; passing either here is a programming error and
// yields an empty result.
func (s *Storage) QueryRecordIDs(ctx context.Context, recordType types.RecordType, filter types.ScopeFilter) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.QueryRecordIDs")
	defer span.End()

	cond := scopeTagCondition(filter)
	if cond == nil {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("record_id").
		From("scope_tags").
		Where(sq.Eq{"record_type": recordType}).
		Where(cond).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to query record IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan record ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) DeleteScopeTag(ctx context.Context, recordType types.RecordType, recordID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteScopeTag")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("scope_tags").
		Where(sq.Eq{"record_type": recordType, "record_id": recordID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete scope tag: %w", err)
	}

	return nil
}

// scopeTagCondition translates a scope filter into a tag predicate. The
// match-all and match-none filters return nil: those cases never reach the
// tag table.
func scopeTagCondition(f types.ScopeFilter) sq.Sqlizer {
	if f.All || f.MatchNone() {
		return nil
	}

	var or sq.Or
	if len(f.CompanyIDs) > 0 {
		or = append(or, sq.Eq{"freight_company_id": f.CompanyIDs})
	}
	if len(f.CustomerIDs) > 0 {
		or = append(or, sq.Eq{"end_customer_id": f.CustomerIDs})
	}

	return or
}
