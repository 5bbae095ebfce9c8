// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/canonical/freight-hierarchy-service/internal/types"
	"github.com/spf13/cobra"
)

var (
	contactPhone   string
	contactAddress string
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage freight companies",
}

var registerCompanyCmd = &cobra.Command{
	Use:   "register [name] [email]",
	Short: "Register a new freight company",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var company types.FreightCompany
		_, err := client.post(context.Background(), "/api/v0/companies", map[string]string{
			"name":    args[0],
			"email":   args[1],
			"phone":   contactPhone,
			"address": contactAddress,
		}, &company)
		if err != nil {
			return fmt.Errorf("failed to register company: %w", err)
		}

		fmt.Printf("Company registered: %s (ID: %s)\n", company.Name, company.ID)
		return nil
	},
}

var listCompaniesCmd = &cobra.Command{
	Use:   "list",
	Short: "List freight companies visible to the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var companies []*types.FreightCompany
		if err := client.get(context.Background(), "/api/v0/companies", &companies); err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCREATED_AT")
		for _, c := range companies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var linkCustomerCmd = &cobra.Command{
	Use:   "link [company_id] [customer_id]",
	Short: "Link an end customer to a freight company",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		_, err := client.post(context.Background(), fmt.Sprintf("/api/v0/companies/%s/customers/%s", args[0], args[1]), nil, nil)
		if err != nil {
			return fmt.Errorf("failed to link customer: %w", err)
		}

		fmt.Printf("Customer %s linked to company %s\n", args[1], args[0])
		return nil
	},
}

var unlinkCustomerCmd = &cobra.Command{
	Use:   "unlink [company_id] [customer_id]",
	Short: "Unlink an end customer from a freight company",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		_, err := client.delete(context.Background(), fmt.Sprintf("/api/v0/companies/%s/customers/%s", args[0], args[1]))
		if err != nil {
			return fmt.Errorf("failed to unlink customer: %w", err)
		}

		fmt.Printf("Customer %s unlinked from company %s\n", args[1], args[0])
		return nil
	},
}

var companyCustomersCmd = &cobra.Command{
	Use:   "customers [company_id]",
	Short: "List end customers linked to a freight company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var customers []*types.EndCustomer
		if err := client.get(context.Background(), fmt.Sprintf("/api/v0/companies/%s/customers", args[0]), &customers); err != nil {
			return fmt.Errorf("failed to list linked customers: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCREATED_AT")
		for _, c := range customers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyCmd.AddCommand(registerCompanyCmd)
	companyCmd.AddCommand(listCompaniesCmd)
	companyCmd.AddCommand(linkCustomerCmd)
	companyCmd.AddCommand(unlinkCustomerCmd)
	companyCmd.AddCommand(companyCustomersCmd)

	registerCompanyCmd.Flags().StringVar(&contactPhone, "phone", "", "Contact phone number")
	registerCompanyCmd.Flags().StringVar(&contactAddress, "address", "", "Postal address")
}
