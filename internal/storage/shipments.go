// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

func (s *Storage) InsertShipment(ctx context.Context, sh *types.Shipment) (*types.Shipment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertShipment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate shipment ID: %w", err)
	}

	var created types.Shipment
	err = s.db.Statement(ctx).
		Insert("shipments").
		Columns("id", "reference", "origin", "destination", "status").
		Values(id.String(), sh.Reference, sh.Origin, sh.Destination, sh.Status).
		Suffix("RETURNING id, reference, origin, destination, status, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Reference, &created.Origin, &created.Destination, &created.Status, &created.CreatedAt)

	if err != nil {
		return nil, WrapDuplicateKeyError(err, "shipment reference already exists")
	}

	return &created, nil
}

func (s *Storage) GetShipmentByID(ctx context.Context, id string) (*types.Shipment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetShipmentByID")
	defer span.End()

	var sh types.Shipment
	err := s.db.Statement(ctx).
		Select("id", "reference", "origin", "destination", "status", "created_at").
		From("shipments").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&sh.ID, &sh.Reference, &sh.Origin, &sh.Destination, &sh.Status, &sh.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return &sh, nil
}

func (s *Storage) SelectShipments(ctx context.Context) ([]*types.Shipment, error) {
	return s.selectShipments(ctx, nil)
}

func (s *Storage) SelectShipmentsByIDs(ctx context.Context, ids []string) ([]*types.Shipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.selectShipments(ctx, sq.Eq{"id": ids})
}

func (s *Storage) selectShipments(ctx context.Context, where sq.Sqlizer) ([]*types.Shipment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SelectShipments")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "reference", "origin", "destination", "status", "created_at").
		From("shipments").
		OrderBy("created_at ASC")

	if where != nil {
		query = query.Where(where)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*types.Shipment
	for rows.Next() {
		var sh types.Shipment
		if err := rows.Scan(&sh.ID, &sh.Reference, &sh.Origin, &sh.Destination, &sh.Status, &sh.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		shipments = append(shipments, &sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shipments, nil
}

// DeleteShipment removes a shipment together with its scope tag so no
// orphaned tag survives the record.
func (s *Storage) DeleteShipment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteShipment")
	defer span.End()

	return s.db.WithTx(ctx, func(txCtx context.Context) error {
		res, err := s.db.Statement(txCtx).
			Delete("shipments").
			Where(sq.Eq{"id": id}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to delete shipment: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}

		_, err = s.db.Statement(txCtx).
			Delete("scope_tags").
			Where(sq.Eq{"record_type": types.RecordTypeShipment, "record_id": id}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to delete shipment tag: %w", err)
		}

		return nil
	})
}
