// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"reflect"
	"testing"

	"github.com/canonical/freight-hierarchy-service/internal/types"
)

func TestScopeTagCondition(t *testing.T) {
	tests := []struct {
		name     string
		filter   types.ScopeFilter
		wantNil  bool
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:    "match all filters never reach the tag table",
			filter:  types.ScopeFilter{All: true},
			wantNil: true,
		},
		{
			name:    "empty filter matches nothing",
			filter:  types.ScopeFilter{},
			wantNil: true,
		},
		{
			name:     "company only",
			filter:   types.ScopeFilter{CompanyIDs: []string{"company-1"}},
			wantSQL:  "(freight_company_id IN (?))",
			wantArgs: []interface{}{"company-1"},
		},
		{
			name:     "customer only",
			filter:   types.ScopeFilter{CustomerIDs: []string{"customer-1"}},
			wantSQL:  "(end_customer_id IN (?))",
			wantArgs: []interface{}{"customer-1"},
		},
		{
			name: "freight admin sees own company or linked customers",
			filter: types.ScopeFilter{
				CompanyIDs:  []string{"company-1"},
				CustomerIDs: []string{"customer-1", "customer-2"},
			},
			wantSQL:  "(freight_company_id IN (?) OR end_customer_id IN (?,?))",
			wantArgs: []interface{}{"company-1", "customer-1", "customer-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := scopeTagCondition(tt.filter)

			if tt.wantNil {
				if cond != nil {
					t.Fatalf("expected nil condition, got %v", cond)
				}
				return
			}

			if cond == nil {
				t.Fatal("expected a condition, got nil")
			}

			sql, args, err := cond.ToSql()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.wantSQL {
				t.Fatalf("expected SQL %q, got %q", tt.wantSQL, sql)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}
