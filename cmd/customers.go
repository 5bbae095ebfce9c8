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

var customerCompanyIDs []string

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage end customers",
}

var registerCustomerCmd = &cobra.Command{
	Use:   "register [name] [email]",
	Short: "Register a new end customer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var customer types.EndCustomer
		_, err := client.post(context.Background(), "/api/v0/customers", map[string]string{
			"name":  args[0],
			"email": args[1],
		}, &customer)
		if err != nil {
			return fmt.Errorf("failed to register customer: %w", err)
		}

		fmt.Printf("Customer registered: %s (ID: %s)\n", customer.Name, customer.ID)
		return nil
	},
}

var listCustomersCmd = &cobra.Command{
	Use:   "list",
	Short: "List end customers visible to the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var customers []*types.EndCustomer
		if err := client.get(context.Background(), "/api/v0/customers", &customers); err != nil {
			return fmt.Errorf("failed to list customers: %w", err)
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

var customerCompaniesCmd = &cobra.Command{
	Use:   "companies [customer_id]",
	Short: "List freight companies linked to an end customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var companies []*types.FreightCompany
		if err := client.get(context.Background(), fmt.Sprintf("/api/v0/customers/%s/companies", args[0]), &companies); err != nil {
			return fmt.Errorf("failed to list linked companies: %w", err)
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

var setCompaniesCmd = &cobra.Command{
	Use:   "set-companies [customer_id]",
	Short: "Replace the full set of company links for an end customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		_, err := client.put(context.Background(), fmt.Sprintf("/api/v0/customers/%s/companies", args[0]), map[string][]string{
			"company_ids": customerCompanyIDs,
		})
		if err != nil {
			return fmt.Errorf("failed to replace company links: %w", err)
		}

		fmt.Printf("Company links replaced for customer %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(registerCustomerCmd)
	customerCmd.AddCommand(listCustomersCmd)
	customerCmd.AddCommand(customerCompaniesCmd)
	customerCmd.AddCommand(setCompaniesCmd)

	setCompaniesCmd.Flags().StringSliceVar(&customerCompanyIDs, "companies", []string{}, "Comma-separated list of company IDs")
}
