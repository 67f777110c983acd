package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopfront/client/internal/application/checkout"
)

var shippingForm checkout.ShippingForm

// checkoutCmd replays the checkout page in one shot: select the given cart
// item ids, begin the workflow, print the quote and submit the shipping form.
var checkoutCmd = &cobra.Command{
	Use:   "checkout <cart-item-id>...",
	Short: "Place an order from the selected cart items",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(); err != nil {
			return err
		}

		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid cart item id %q", arg)
			}
			ids = append(ids, id)
		}
		app.Cart.SelectForCheckout(ids)

		workflow := app.Checkout()
		phase, err := workflow.Begin(cmd.Context())
		if err != nil {
			return err
		}
		if phase == checkout.PhaseNothingToCheckOut {
			fmt.Println("nothing to check out")
			return nil
		}

		quote := workflow.Quote()
		fmt.Println("items:")
		for _, item := range workflow.SelectedItems() {
			fmt.Printf("  %-30s %3d × %8s\n", item.ProductName, item.Quantity, item.Price.StringFixed(2))
		}
		fmt.Printf("subtotal: %s\nshipping: %s\ntotal:    %s\n",
			quote.Subtotal.StringFixed(2), quote.Shipping.StringFixed(2), quote.Total.StringFixed(2))

		created, err := workflow.Submit(cmd.Context(), shippingForm)
		if err != nil {
			return err
		}
		fmt.Printf("order %d placed, status %s\n", created.ID, created.Status)

		// Let the delayed navigation print before the process exits
		time.Sleep(app.Config.Checkout.RedirectDelay + 100*time.Millisecond)
		return nil
	},
}

func init() {
	flags := checkoutCmd.Flags()
	flags.StringVar(&shippingForm.FirstName, "first-name", "", "recipient first name")
	flags.StringVar(&shippingForm.LastName, "last-name", "", "recipient last name")
	flags.StringVar(&shippingForm.Email, "email", "", "contact email")
	flags.StringVar(&shippingForm.Phone, "phone", "", "contact phone")
	flags.StringVar(&shippingForm.Address, "address", "", "shipping address")

	required := []string{"first-name", "last-name", "email", "phone", "address"}
	checkoutCmd.Long = "Places an order from the given cart item ids.\n\nRequired flags: --" +
		strings.Join(required, ", --")
}
