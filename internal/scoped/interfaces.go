// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scoped

import (
	"context"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// Record is any entity that participates in row-level scoping.
type Record interface {
	ScopeRecordID() string
}

// EntityStore persists records of a single scoped entity type.
type EntityStore[T Record] interface {
	Insert(ctx context.Context, record T) (T, error)
	SelectAll(ctx context.Context) ([]T, error)
	SelectByIDs(ctx context.Context, ids []string) ([]T, error)
}

// TagStore persists and queries the ownership tags attached to records.
type TagStore interface {
	TagRecord(ctx context.Context, recordType types.RecordType, recordID string, owner types.ScopeOwner) error
	GetScopeTag(ctx context.Context, recordType types.RecordType, recordID string) (*types.ScopeTag, error)
	QueryRecordIDs(ctx context.Context, recordType types.RecordType, filter types.ScopeFilter) ([]string, error)
}
