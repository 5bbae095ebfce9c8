// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scoped

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

type fakeEntityStore struct {
	records  []*types.Shipment
	inserted []*types.Shipment
	err      error
}

func (f *fakeEntityStore) Insert(ctx context.Context, sh *types.Shipment) (*types.Shipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, sh)
	return sh, nil
}

func (f *fakeEntityStore) SelectAll(ctx context.Context) ([]*types.Shipment, error) {
	return f.records, f.err
}

func (f *fakeEntityStore) SelectByIDs(ctx context.Context, ids []string) ([]*types.Shipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*types.Shipment
	for _, r := range f.records {
		for _, id := range ids {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

type taggedRecord struct {
	recordID string
	owner    types.ScopeOwner
}

type fakeTagStore struct {
	tags     map[string]*types.ScopeTag
	queryIDs []string
	tagged   []taggedRecord
	tagErr   error
	queryErr error
}

func (f *fakeTagStore) TagRecord(ctx context.Context, rt types.RecordType, recordID string, owner types.ScopeOwner) error {
	if f.tagErr != nil {
		return f.tagErr
	}
	f.tagged = append(f.tagged, taggedRecord{recordID: recordID, owner: owner})
	return nil
}

func (f *fakeTagStore) GetScopeTag(ctx context.Context, rt types.RecordType, recordID string) (*types.ScopeTag, error) {
	tag, ok := f.tags[recordID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return tag, nil
}

func (f *fakeTagStore) QueryRecordIDs(ctx context.Context, rt types.RecordType, filter types.ScopeFilter) ([]string, error) {
	return f.queryIDs, f.queryErr
}

func newTestRepository(entities *fakeEntityStore, tags *fakeTagStore) *Repository[*types.Shipment] {
	return NewRepository[*types.Shipment](
		types.RecordTypeShipment,
		entities,
		tags,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestRepositoryCreateTagsWithOwner(t *testing.T) {
	entities := &fakeEntityStore{}
	tags := &fakeTagStore{}
	repo := newTestRepository(entities, tags)

	owner := types.ScopeOwner{CompanyID: "company-1"}
	created, err := repo.Create(context.Background(), &types.Shipment{ID: "ship-1"}, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "ship-1" {
		t.Fatalf("expected created record back, got %v", created)
	}
	if len(tags.tagged) != 1 {
		t.Fatalf("expected one tag write, got %d", len(tags.tagged))
	}
	if tags.tagged[0].recordID != "ship-1" || tags.tagged[0].owner != owner {
		t.Fatalf("unexpected tag write: %+v", tags.tagged[0])
	}
}

func TestRepositoryCreateEmptyOwnerStaysUntagged(t *testing.T) {
	entities := &fakeEntityStore{}
	tags := &fakeTagStore{}
	repo := newTestRepository(entities, tags)

	_, err := repo.Create(context.Background(), &types.Shipment{ID: "ship-1"}, types.ScopeOwner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags.tagged) != 0 {
		t.Fatalf("expected no tag write, got %d", len(tags.tagged))
	}
}

func TestRepositoryCreateSurvivesTagFailure(t *testing.T) {
	entities := &fakeEntityStore{}
	tags := &fakeTagStore{tagErr: errors.New("tag table unavailable")}
	repo := newTestRepository(entities, tags)

	created, err := repo.Create(context.Background(), &types.Shipment{ID: "ship-1"}, types.ScopeOwner{CompanyID: "company-1"})
	if err != nil {
		t.Fatalf("expected create to succeed despite tag failure, got %v", err)
	}
	if created == nil {
		t.Fatal("expected the created record back")
	}
}

func TestRepositoryList(t *testing.T) {
	all := []*types.Shipment{{ID: "ship-1"}, {ID: "ship-2"}, {ID: "ship-3"}}

	tests := []struct {
		name     string
		filter   types.ScopeFilter
		queryIDs []string
		wantIDs  []string
	}{
		{
			name:    "match all bypasses the tag table",
			filter:  types.ScopeFilter{All: true},
			wantIDs: []string{"ship-1", "ship-2", "ship-3"},
		},
		{
			name:    "match none returns nothing",
			filter:  types.ScopeFilter{},
			wantIDs: nil,
		},
		{
			name:     "scoped filter narrows to tagged records",
			filter:   types.ScopeFilter{CompanyIDs: []string{"company-1"}},
			queryIDs: []string{"ship-2"},
			wantIDs:  []string{"ship-2"},
		},
		{
			name:     "scoped filter with no matching tags",
			filter:   types.ScopeFilter{CustomerIDs: []string{"customer-9"}},
			queryIDs: nil,
			wantIDs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := &fakeEntityStore{records: all}
			tags := &fakeTagStore{queryIDs: tt.queryIDs}
			repo := newTestRepository(entities, tags)

			got, err := repo.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d records, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Fatalf("expected record %q at %d, got %q", id, i, got[i].ID)
				}
			}
		})
	}
}

func TestRepositoryVisible(t *testing.T) {
	tags := &fakeTagStore{
		tags: map[string]*types.ScopeTag{
			"ship-company": {RecordType: types.RecordTypeShipment, RecordID: "ship-company", CompanyID: "company-1"},
			"ship-cust":    {RecordType: types.RecordTypeShipment, RecordID: "ship-cust", CompanyID: "company-1", CustomerID: "customer-1"},
		},
	}

	tests := []struct {
		name     string
		filter   types.ScopeFilter
		recordID string
		want     bool
	}{
		{
			name:     "provider sees everything",
			filter:   types.ScopeFilter{All: true},
			recordID: "untagged",
			want:     true,
		},
		{
			name:     "anonymous sees nothing",
			filter:   types.ScopeFilter{},
			recordID: "ship-company",
			want:     false,
		},
		{
			name:     "company match",
			filter:   types.ScopeFilter{CompanyIDs: []string{"company-1"}},
			recordID: "ship-company",
			want:     true,
		},
		{
			name:     "customer match",
			filter:   types.ScopeFilter{CustomerIDs: []string{"customer-1"}},
			recordID: "ship-cust",
			want:     true,
		},
		{
			name:     "other tenant does not match",
			filter:   types.ScopeFilter{CompanyIDs: []string{"company-2"}},
			recordID: "ship-company",
			want:     false,
		},
		{
			name:     "untagged record hidden from scoped callers",
			filter:   types.ScopeFilter{CompanyIDs: []string{"company-1"}},
			recordID: "untagged",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(&fakeEntityStore{}, tags)

			got, err := repo.Visible(context.Background(), tt.filter, tt.recordID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected visible=%v, got %v", tt.want, got)
			}
		})
	}
}
