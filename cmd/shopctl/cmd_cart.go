package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart with its items",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}
		fetched, err := app.Cart.FetchWithItems(cmd.Context(), app.Session.UserID)
		if err != nil {
			return err
		}
		for _, item := range fetched.Items {
			fmt.Printf("%6d  %-30s %3d × %8s = %8s\n",
				item.ID, item.ProductName, item.Quantity,
				item.Price.StringFixed(2), item.LineTotal().StringFixed(2))
		}
		fmt.Printf("%d items\n", fetched.ItemCount())
		return nil
	},
}

var addQuantity int

var cartAddCmd = &cobra.Command{
	Use:   "add <product-item-id>",
	Short: "Add a product variant to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}
		productItemID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product item id %q", args[0])
		}
		item, err := app.Cart.AddItem(cmd.Context(), app.Session.UserID, productItemID, addQuantity)
		if err != nil {
			return err
		}
		fmt.Printf("added item %d (qty %d)\n", item.ID, item.Quantity)
		return nil
	},
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <cart-item-id> <quantity>",
	Short: "Change the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}
		itemID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid cart item id %q", args[0])
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		if _, err := app.Cart.ChangeQuantity(cmd.Context(), app.Session.UserID, itemID, quantity); err != nil {
			return err
		}
		fmt.Println("quantity updated")
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <cart-item-id>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}
		itemID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid cart item id %q", args[0])
		}
		if err := app.Cart.RemoveItem(cmd.Context(), app.Session.UserID, itemID); err != nil {
			return err
		}
		fmt.Println("item removed")
		return nil
	},
}

func init() {
	cartAddCmd.Flags().IntVar(&addQuantity, "qty", 1, "quantity to add")
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartQtyCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}
