package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show order history",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}
		orders, err := app.Orders.FetchUserOrders(cmd.Context(), app.Session.UserID)
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%6d  %-10s %10s  %s\n",
				o.ID, o.Status, o.Total.StringFixed(2), o.OrderDate.Format("2006-01-02"))
		}
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		o, err := app.Orders.FetchOrder(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("order %d  %s  total %s\n", o.ID, o.Status, o.Total.StringFixed(2))
		for _, item := range o.Items {
			fmt.Printf("  %-30s %3d × %8s\n", item.ProductName, item.Quantity, item.Price.StringFixed(2))
		}
		return nil
	},
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel one of your orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		updated, err := app.Orders.Cancel(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("order %d is now %s\n", updated.ID, updated.Status)
		return nil
	},
}

func init() {
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersCancelCmd)
}
