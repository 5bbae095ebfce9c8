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

var shipmentStatus string

var shipmentCmd = &cobra.Command{
	Use:   "shipment",
	Short: "Manage shipments",
}

var createShipmentCmd = &cobra.Command{
	Use:   "create [reference] [origin] [destination]",
	Short: "Create a shipment owned by the authenticated user's tenant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var shipment types.Shipment
		_, err := client.post(context.Background(), "/api/v0/shipments", map[string]string{
			"reference":   args[0],
			"origin":      args[1],
			"destination": args[2],
			"status":      shipmentStatus,
		}, &shipment)
		if err != nil {
			return fmt.Errorf("failed to create shipment: %w", err)
		}

		fmt.Printf("Shipment created: %s (ID: %s)\n", shipment.Reference, shipment.ID)
		return nil
	},
}

var listShipmentsCmd = &cobra.Command{
	Use:   "list",
	Short: "List shipments visible to the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var shipments []*types.Shipment
		if err := client.get(context.Background(), "/api/v0/shipments", &shipments); err != nil {
			return fmt.Errorf("failed to list shipments: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tREFERENCE\tORIGIN\tDESTINATION\tSTATUS")
		for _, s := range shipments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Reference, s.Origin, s.Destination, s.Status)
		}
		w.Flush()
		return nil
	},
}

var deleteShipmentCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a shipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		_, err := client.delete(context.Background(), fmt.Sprintf("/api/v0/shipments/%s", args[0]))
		if err != nil {
			return fmt.Errorf("failed to delete shipment: %w", err)
		}

		fmt.Printf("Shipment deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shipmentCmd)
	shipmentCmd.AddCommand(createShipmentCmd)
	shipmentCmd.AddCommand(listShipmentsCmd)
	shipmentCmd.AddCommand(deleteShipmentCmd)

	createShipmentCmd.Flags().StringVar(&shipmentStatus, "status", "pending", "Initial shipment status")
}
