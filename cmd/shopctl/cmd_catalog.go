package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shopfront/client/internal/application/resource"
	"github.com/shopfront/client/internal/domain/catalog"
)

var homeLimit int

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the curated home-page product rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sections := []catalog.HomeSection{
			catalog.HomeSectionNew,
			catalog.HomeSectionTrend,
			catalog.HomeSectionBestSeller,
			catalog.HomeSectionFeatured,
		}
		for _, section := range sections {
			products, err := app.Home.FetchSection(ctx, section, homeLimit)
			if err != nil {
				return err
			}
			fmt.Printf("%s:\n", section)
			for _, p := range products {
				fmt.Printf("  %6d  %s\n", p.ID, p.Name)
			}
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the top-level categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := app.Home.FetchParentCategories(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%6d  %s\n", c.ID, c.Name)
		}
		return nil
	},
}

var (
	productsPage int
	productsSize int
	productsSort string
)

var productsCmd = &cobra.Command{
	Use:   "products [id]",
	Short: "List products, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			product, err := app.Slices.Products.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%d  %s\n%s\n", product.ID, product.Name, product.Description)
			return nil
		}

		query := resource.Query{Page: productsPage, Size: productsSize, Sort: productsSort}
		if query.Size == 0 {
			query.Size = app.Config.Page.DefaultSize
		}
		products, err := app.Slices.Products.List(ctx, query)
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%6d  %s\n", p.ID, p.Name)
		}
		fmt.Printf("total: %d\n", app.Slices.Products.State().TotalItems)
		return nil
	},
}

func init() {
	homeCmd.Flags().IntVar(&homeLimit, "limit", 8, "products per section")
	productsCmd.Flags().IntVar(&productsPage, "page", 0, "page number")
	productsCmd.Flags().IntVar(&productsSize, "size", 0, "page size")
	productsCmd.Flags().StringVar(&productsSort, "sort", "", "sort, e.g. id,desc")
}
