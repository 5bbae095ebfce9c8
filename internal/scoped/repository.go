// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package scoped implements the repository that enforces row-level data
// scoping. Every read narrows to the caller's scope filter and every write
// tags the new record with the creator's tenant links, so callers cannot
// bypass scoping by accident.
package scoped

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// Repository mediates all access to one scoped entity type.
type Repository[T Record] struct {
	recordType types.RecordType
	entities   EntityStore[T]
	tags       TagStore

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRepository[T Record](recordType types.RecordType, entities EntityStore[T], tags TagStore, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Repository[T] {
	r := new(Repository[T])

	r.recordType = recordType
	r.entities = entities
	r.tags = tags

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}

// Create persists the record and tags it with the given owner. An empty
// owner leaves the record untagged, which makes it visible only to the
// SaaS provider. A failed tagging does not roll the record back: the
// record exists but stays provider-only until re-tagged.
func (r *Repository[T]) Create(ctx context.Context, record T, owner types.ScopeOwner) (T, error) {
	ctx, span := r.tracer.Start(ctx, "scoped.Repository.Create")
	defer span.End()

	created, err := r.entities.Insert(ctx, record)
	if err != nil {
		var zero T
		return zero, err
	}

	if owner.Empty() {
		return created, nil
	}

	if err := r.tags.TagRecord(ctx, r.recordType, created.ScopeRecordID(), owner); err != nil {
		r.logger.Errorf("failed to tag %s %s: %s", r.recordType, created.ScopeRecordID(), err)
	}

	return created, nil
}

// List returns the records visible under the filter. Match-all skips the
// tag table entirely, match-none returns nothing without touching storage.
func (r *Repository[T]) List(ctx context.Context, filter types.ScopeFilter) ([]T, error) {
	ctx, span := r.tracer.Start(ctx, "scoped.Repository.List")
	defer span.End()

	if filter.All {
		return r.entities.SelectAll(ctx)
	}
	if filter.MatchNone() {
		return nil, nil
	}

	ids, err := r.tags.QueryRecordIDs(ctx, r.recordType, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve visible records: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return r.entities.SelectByIDs(ctx, ids)
}

// Visible reports whether a single record falls inside the filter.
// Untagged records are visible only under the match-all filter.
func (r *Repository[T]) Visible(ctx context.Context, filter types.ScopeFilter, recordID string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "scoped.Repository.Visible")
	defer span.End()

	if filter.All {
		return true, nil
	}
	if filter.MatchNone() {
		return false, nil
	}

	tag, err := r.tags.GetScopeTag(ctx, r.recordType, recordID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve record tag: %w", err)
	}

	if tag.CompanyID != "" && slices.Contains(filter.CompanyIDs, tag.CompanyID) {
		return true, nil
	}
	if tag.CustomerID != "" && slices.Contains(filter.CustomerIDs, tag.CustomerID) {
		return true, nil
	}

	return false, nil
}
