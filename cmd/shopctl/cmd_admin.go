package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopfront/client/internal/application/resource"
	"github.com/shopfront/client/internal/domain/order"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office operations (requires ROLE_ADMIN)",
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAdmin(); err != nil {
			return err
		}
		orders, err := app.Slices.ShopOrders.List(cmd.Context(), resource.Query{Size: app.Config.Page.DefaultSize, Sort: "id,desc"})
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%6d  user %-6d %-10s %10s\n", o.ID, o.UserID, o.Status, o.Total.StringFixed(2))
		}
		fmt.Printf("total: %d\n", app.Slices.ShopOrders.State().TotalItems)
		return nil
	},
}

// adminSetStatusCmd sends exactly one update carrying the fetched order with
// only the status replaced. Any status from the enumerated set may be chosen;
// the backend decides whether the transition is legal.
var adminSetStatusCmd = &cobra.Command{
	Use:   "set-status <order-id> <status>",
	Short: "Transition an order to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAdmin(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		status := order.Status(strings.ToUpper(args[1]))
		updated, err := app.Orders.UpdateStatus(cmd.Context(), id, status)
		if err != nil {
			return err
		}
		fmt.Printf("order %d is now %s\n", updated.ID, updated.Status)
		return nil
	},
}

func init() {
	statuses := make([]string, 0, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		statuses = append(statuses, s.String())
	}
	adminSetStatusCmd.Long = "Valid statuses: " + strings.Join(statuses, ", ")

	adminCmd.AddCommand(adminOrdersCmd)
	adminCmd.AddCommand(adminSetStatusCmd)
}
