// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/freight-hierarchy-service/internal/types"
)

// Context is the per-operation view of who is asking and what they can see.
// It is built once per inbound operation and never cached across requests,
// since tenant links can change between requests.
type Context struct {
	identityID        string
	assignment        *types.RoleAssignment
	linkedCustomerIDs []string
}

// NewContext assembles a context from a resolved role assignment.
// A nil assignment is the anonymous context: every scoped access matches nothing.
// linkedCustomerIDs are the customers linked to the assignment's company and
// are only meaningful for freight admins.
func NewContext(identityID string, assignment *types.RoleAssignment, linkedCustomerIDs []string) *Context {
	return &Context{
		identityID:        identityID,
		assignment:        assignment,
		linkedCustomerIDs: linkedCustomerIDs,
	}
}

func (c *Context) IdentityID() string {
	return c.identityID
}

// Role returns the caller's role, or the empty role when anonymous.
func (c *Context) Role() types.Role {
	if c.assignment == nil {
		return ""
	}
	return c.assignment.Role
}

func (c *Context) CompanyID() string {
	if c.assignment == nil {
		return ""
	}
	return c.assignment.CompanyID
}

func (c *Context) CustomerID() string {
	if c.assignment == nil {
		return ""
	}
	return c.assignment.CustomerID
}

// Owner returns the tenant links new records created by this caller are
// tagged with. Empty for anonymous callers and for the SaaS provider.
func (c *Context) Owner() types.ScopeOwner {
	if c.assignment == nil {
		return types.ScopeOwner{}
	}
	return types.ScopeOwner{
		CompanyID:  c.assignment.CompanyID,
		CustomerID: c.assignment.CustomerID,
	}
}

// ScopeFilter computes the row-level predicate for this caller. A role whose
// required tenant link is missing maps to match-none, never match-all: the
// lazily created default assignment (customer admin, no links) must stay
// inert for data access.
func (c *Context) ScopeFilter() types.ScopeFilter {
	if c.assignment == nil {
		return types.ScopeFilter{}
	}

	switch c.assignment.Role {
	case types.RoleSaaSProvider:
		return types.ScopeFilter{All: true}
	case types.RoleFreightAdmin:
		if c.assignment.CompanyID == "" {
			return types.ScopeFilter{}
		}
		return types.ScopeFilter{
			CompanyIDs:  []string{c.assignment.CompanyID},
			CustomerIDs: c.linkedCustomerIDs,
		}
	case types.RoleEndCustomerAdmin, types.RoleEndCustomerStaff:
		if c.assignment.CustomerID == "" {
			return types.ScopeFilter{}
		}
		return types.ScopeFilter{CustomerIDs: []string{c.assignment.CustomerID}}
	}

	return types.ScopeFilter{}
}
