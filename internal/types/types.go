// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the role attached to an identity's role assignment.
type Role string

const (
	RoleSaaSProvider     Role = "SAAS_PROVIDER"
	RoleFreightAdmin     Role = "FREIGHT_ADMIN"
	RoleEndCustomerAdmin Role = "END_CUSTOMER_ADMIN"
	RoleEndCustomerStaff Role = "END_CUSTOMER_STAFF"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSaaSProvider, RoleFreightAdmin, RoleEndCustomerAdmin, RoleEndCustomerStaff:
		return true
	}
	return false
}

// RecordType enumerates the entity types that participate in scoping.
type RecordType string

const (
	RecordTypeFreightCompany RecordType = "freight_company"
	RecordTypeEndCustomer    RecordType = "end_customer"
	RecordTypeShipment       RecordType = "shipment"
)

type Provider struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	ContactEmail string    `db:"contact_email"`
	CreatedAt    time.Time `db:"created_at"`
}

type FreightCompany struct {
	ID         string    `db:"id"`
	ProviderID string    `db:"provider_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Address    string    `db:"address"`
	CreatedAt  time.Time `db:"created_at"`
}

func (c *FreightCompany) ScopeRecordID() string { return c.ID }

type EndCustomer struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

func (c *EndCustomer) ScopeRecordID() string { return c.ID }

type Shipment struct {
	ID          string    `db:"id"`
	Reference   string    `db:"reference"`
	Origin      string    `db:"origin"`
	Destination string    `db:"destination"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

func (s *Shipment) ScopeRecordID() string { return s.ID }

// RoleAssignment binds an identity to a role and at most one tenant link.
// CompanyID and CustomerID are empty when the link is absent.
type RoleAssignment struct {
	ID         string    `db:"id"`
	IdentityID string    `db:"identity_id"`
	Role       Role      `db:"role"`
	CompanyID  string    `db:"freight_company_id"`
	CustomerID string    `db:"end_customer_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// ScopeOwner is the tenant ownership recorded on a scope tag.
// Either field may be empty; both empty means the record stays untagged.
type ScopeOwner struct {
	CompanyID  string
	CustomerID string
}

// Empty reports whether the owner carries no tenant link at all.
func (o ScopeOwner) Empty() bool { return o.CompanyID == "" && o.CustomerID == "" }

// ScopeFilter is the pure row-level predicate computed from an authorization
// context. The zero value matches nothing; All matches everything; otherwise
// a record matches when its scope tag owner is one of the listed companies or
// customers.
type ScopeFilter struct {
	All         bool
	CompanyIDs  []string
	CustomerIDs []string
}

// MatchNone reports whether the filter can never match a record.
func (f ScopeFilter) MatchNone() bool {
	return !f.All && len(f.CompanyIDs) == 0 && len(f.CustomerIDs) == 0
}

// ScopeTag is the ownership metadata attached to a scoped record.
// Exactly one tag exists per (RecordType, RecordID); it is immutable.
type ScopeTag struct {
	ID         string     `db:"id"`
	RecordType RecordType `db:"record_type"`
	RecordID   string     `db:"record_id"`
	CompanyID  string     `db:"freight_company_id"`
	CustomerID string     `db:"end_customer_id"`
	CreatedAt  time.Time  `db:"created_at"`
}

type Invitation struct {
	ID         string     `db:"id"`
	Email      string     `db:"email"`
	Token      string     `db:"token"`
	Role       Role       `db:"role"`
	CompanyID  string     `db:"freight_company_id"`
	CustomerID string     `db:"end_customer_id"`
	InvitedBy  string     `db:"invited_by"`
	CreatedAt  time.Time  `db:"created_at"`
	ExpiresAt  time.Time  `db:"expires_at"`
	Accepted   bool       `db:"accepted"`
	AcceptedAt *time.Time `db:"accepted_at"`
}

// IsExpired reports whether the invitation is past its expiry at the given instant.
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

type StaffMember struct {
	IdentityID string
	Email      string
	Role       Role
}
