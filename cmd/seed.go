// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/canonical/freight-hierarchy-service/internal/db"
	"github.com/canonical/freight-hierarchy-service/internal/logging"
	"github.com/canonical/freight-hierarchy-service/internal/monitoring"
	"github.com/canonical/freight-hierarchy-service/internal/storage"
	"github.com/canonical/freight-hierarchy-service/internal/tracing"
	"github.com/canonical/freight-hierarchy-service/internal/types"
	"github.com/spf13/cobra"
)

// seedCmd populates a fresh database with a demo hierarchy: one provider,
// two freight companies, three end customers and their tenancy links.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a demo hierarchy",
	Long:  `Seed the database with a demo provider, freight companies, end customers and tenancy links. Intended for development environments only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		providerAdmin, _ := cmd.Flags().GetString("provider-admin")

		if err := seed(cmd.Context(), dsn, providerAdmin); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	seedCmd.Flags().String("provider-admin", "", "Identity ID to assign the provider role")
	_ = seedCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(seedCmd)
}

func seed(ctx context.Context, dsn, providerAdmin string) error {
	logger := logging.NewLogger("info")
	defer logger.Sync()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()

	dbClient, err := db.NewDBClient(db.Config{
		DSN:             dsn,
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	provider, err := s.CreateProvider(ctx, &types.Provider{
		Name:         "Freight SaaS Demo",
		ContactEmail: "ops@freight-saas.test",
	})
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	fmt.Printf("Provider: %s (ID: %s)\n", provider.Name, provider.ID)

	companies := []*types.FreightCompany{
		{ProviderID: provider.ID, Name: "Atlas Freight", Email: "dispatch@atlas-freight.test"},
		{ProviderID: provider.ID, Name: "Meridian Logistics", Email: "dispatch@meridian-logistics.test"},
	}
	for i, c := range companies {
		created, err := s.InsertFreightCompany(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to create company %q: %w", c.Name, err)
		}
		companies[i] = created
		if err := s.TagRecord(ctx, types.RecordTypeFreightCompany, created.ID, types.ScopeOwner{CompanyID: created.ID}); err != nil {
			return fmt.Errorf("failed to tag company %q: %w", created.Name, err)
		}
		fmt.Printf("Company: %s (ID: %s)\n", created.Name, created.ID)
	}

	customers := []*types.EndCustomer{
		{Name: "Northwind Traders", Email: "shipping@northwind.test"},
		{Name: "Contoso Retail", Email: "shipping@contoso.test"},
		{Name: "Fabrikam Industrial", Email: "shipping@fabrikam.test"},
	}
	for i, c := range customers {
		created, err := s.InsertEndCustomer(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to create customer %q: %w", c.Name, err)
		}
		customers[i] = created
		fmt.Printf("Customer: %s (ID: %s)\n", created.Name, created.ID)
	}

	// The first two customers belong to the first company, the third to the
	// second. Tags mirror who registered the customer: a company-registered
	// customer is visible to both the company and the customer's own staff.
	links := []struct {
		company  *types.FreightCompany
		customer *types.EndCustomer
	}{
		{companies[0], customers[0]},
		{companies[0], customers[1]},
		{companies[1], customers[2]},
	}
	for _, l := range links {
		if err := s.LinkCustomerToCompany(ctx, l.company.ID, l.customer.ID); err != nil {
			return fmt.Errorf("failed to link %q to %q: %w", l.customer.Name, l.company.Name, err)
		}
		if err := s.TagRecord(ctx, types.RecordTypeEndCustomer, l.customer.ID, types.ScopeOwner{
			CompanyID:  l.company.ID,
			CustomerID: l.customer.ID,
		}); err != nil {
			return fmt.Errorf("failed to tag customer %q: %w", l.customer.Name, err)
		}
	}

	if providerAdmin != "" {
		if _, err := s.InsertRoleAssignment(ctx, &types.RoleAssignment{
			IdentityID: providerAdmin,
			Role:       types.RoleSaaSProvider,
		}); err != nil {
			return fmt.Errorf("failed to assign provider role: %w", err)
		}
		fmt.Printf("Provider role assigned to identity %s\n", providerAdmin)
	}

	fmt.Println("Seed complete")
	return nil
}
