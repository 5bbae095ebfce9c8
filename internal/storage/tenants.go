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

func (s *Storage) CreateProvider(ctx context.Context, p *types.Provider) (*types.Provider, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProvider")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate provider ID: %w", err)
	}

	var created types.Provider
	err = s.db.Statement(ctx).
		Insert("providers").
		Columns("id", "name", "contact_email").
		Values(id.String(), p.Name, p.ContactEmail).
		Suffix("RETURNING id, name, contact_email, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.ContactEmail, &created.CreatedAt)

	if err != nil {
		return nil, WrapDuplicateKeyError(err, "provider already exists")
	}

	return &created, nil
}

// GetProvider returns the deployment's SaaS provider. There is exactly one
// per deployment; the oldest row wins if seeding ever created more.
func (s *Storage) GetProvider(ctx context.Context) (*types.Provider, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProvider")
	defer span.End()

	var p types.Provider
	err := s.db.Statement(ctx).
		Select("id", "name", "contact_email", "created_at").
		From("providers").
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Name, &p.ContactEmail, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	return &p, nil
}

func (s *Storage) InsertFreightCompany(ctx context.Context, c *types.FreightCompany) (*types.FreightCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertFreightCompany")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate company ID: %w", err)
	}

	var created types.FreightCompany
	err = s.db.Statement(ctx).
		Insert("freight_companies").
		Columns("id", "provider_id", "name", "email", "phone", "address").
		Values(id.String(), c.ProviderID, c.Name, c.Email, c.Phone, c.Address).
		Suffix("RETURNING id, provider_id, name, email, phone, address, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.ProviderID, &created.Name, &created.Email, &created.Phone, &created.Address, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert freight company: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetFreightCompanyByID(ctx context.Context, id string) (*types.FreightCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFreightCompanyByID")
	defer span.End()

	var c types.FreightCompany
	err := s.db.Statement(ctx).
		Select("id", "provider_id", "name", "email", "phone", "address", "created_at").
		From("freight_companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.ProviderID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get freight company: %w", err)
	}

	return &c, nil
}

func (s *Storage) SelectFreightCompanies(ctx context.Context) ([]*types.FreightCompany, error) {
	return s.selectFreightCompanies(ctx, nil)
}

func (s *Storage) SelectFreightCompaniesByIDs(ctx context.Context, ids []string) ([]*types.FreightCompany, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.selectFreightCompanies(ctx, sq.Eq{"id": ids})
}

func (s *Storage) selectFreightCompanies(ctx context.Context, where sq.Sqlizer) ([]*types.FreightCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SelectFreightCompanies")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "provider_id", "name", "email", "phone", "address", "created_at").
		From("freight_companies").
		OrderBy("created_at ASC")

	if where != nil {
		query = query.Where(where)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list freight companies: %w", err)
	}
	defer rows.Close()

	var companies []*types.FreightCompany
	for rows.Next() {
		var c types.FreightCompany
		if err := rows.Scan(&c.ID, &c.ProviderID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan freight company: %w", err)
		}
		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

func (s *Storage) InsertEndCustomer(ctx context.Context, c *types.EndCustomer) (*types.EndCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertEndCustomer")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate customer ID: %w", err)
	}

	var created types.EndCustomer
	err = s.db.Statement(ctx).
		Insert("end_customers").
		Columns("id", "name", "email", "phone", "address").
		Values(id.String(), c.Name, c.Email, c.Phone, c.Address).
		Suffix("RETURNING id, name, email, phone, address, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Address, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert end customer: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetEndCustomerByID(ctx context.Context, id string) (*types.EndCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEndCustomerByID")
	defer span.End()

	var c types.EndCustomer
	err := s.db.Statement(ctx).
		Select("id", "name", "email", "phone", "address", "created_at").
		From("end_customers").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get end customer: %w", err)
	}

	return &c, nil
}

func (s *Storage) SelectEndCustomers(ctx context.Context) ([]*types.EndCustomer, error) {
	return s.selectEndCustomers(ctx, nil)
}

func (s *Storage) SelectEndCustomersByIDs(ctx context.Context, ids []string) ([]*types.EndCustomer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.selectEndCustomers(ctx, sq.Eq{"id": ids})
}

func (s *Storage) selectEndCustomers(ctx context.Context, where sq.Sqlizer) ([]*types.EndCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SelectEndCustomers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "email", "phone", "address", "created_at").
		From("end_customers").
		OrderBy("created_at ASC")

	if where != nil {
		query = query.Where(where)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list end customers: %w", err)
	}
	defer rows.Close()

	var customers []*types.EndCustomer
	for rows.Next() {
		var c types.EndCustomer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan end customer: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return customers, nil
}

func (s *Storage) LinkCustomerToCompany(ctx context.Context, companyID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LinkCustomerToCompany")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("company_customers").
		Columns("freight_company_id", "end_customer_id").
		Values(companyID, customerID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to link customer to company: %w", err)
	}

	return nil
}

func (s *Storage) UnlinkCustomerFromCompany(ctx context.Context, companyID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UnlinkCustomerFromCompany")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("company_customers").
		Where(sq.Eq{
			"freight_company_id": companyID,
			"end_customer_id":    customerID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to unlink customer from company: %w", err)
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

// SetCustomerCompanies replaces the full set of companies linked to a
// customer, as a single transaction.
func (s *Storage) SetCustomerCompanies(ctx context.Context, customerID string, companyIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCustomerCompanies")
	defer span.End()

	return s.db.WithTx(ctx, func(txCtx context.Context) error {
		_, err := s.db.Statement(txCtx).
			Delete("company_customers").
			Where(sq.Eq{"end_customer_id": customerID}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to clear customer links: %w", err)
		}

		if len(companyIDs) == 0 {
			return nil
		}

		insert := s.db.Statement(txCtx).
			Insert("company_customers").
			Columns("freight_company_id", "end_customer_id")
		for _, companyID := range companyIDs {
			insert = insert.Values(companyID, customerID)
		}

		if _, err := insert.ExecContext(txCtx); err != nil {
			if IsForeignKeyViolation(err) {
				return ErrForeignKeyViolation
			}
			return fmt.Errorf("failed to set customer companies: %w", err)
		}

		return nil
	})
}

func (s *Storage) ListCustomerIDsByCompanyID(ctx context.Context, companyID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomerIDsByCompanyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("end_customer_id").
		From("company_customers").
		Where(sq.Eq{"freight_company_id": companyID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked customers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan customer id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) ListCompaniesByCustomerID(ctx context.Context, customerID string) ([]*types.FreightCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompaniesByCustomerID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("c.id", "c.provider_id", "c.name", "c.email", "c.phone", "c.address", "c.created_at").
		From("freight_companies c").
		Join("company_customers cc ON c.id = cc.freight_company_id").
		Where(sq.Eq{"cc.end_customer_id": customerID}).
		OrderBy("c.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for customer: %w", err)
	}
	defer rows.Close()

	var companies []*types.FreightCompany
	for rows.Next() {
		var c types.FreightCompany
		if err := rows.Scan(&c.ID, &c.ProviderID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan freight company: %w", err)
		}
		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}
