// shopctl drives the storefront client library against a live backend:
// browse the catalog, manage the cart, check out and inspect orders.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shopfront/client/internal/infrastructure/config"
	"github.com/shopfront/client/internal/infrastructure/logger"
)

var (
	// Global flags
	tokenFlag   string
	baseURLFlag string

	app *App
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Storefront client for the shop backend",
	Long: `shopctl is a command-line storefront: it browses the catalog, manages
the shopping cart, places orders through the checkout flow and, for
operators, transitions order statuses.

Configuration is read from config.toml and SHOPFRONT_* environment
variables; --token and --base-url override both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if tokenFlag != "" {
			cfg.Auth.Token = tokenFlag
		}
		if baseURLFlag != "" {
			cfg.API.BaseURL = baseURLFlag
		}

		log, err = logger.New(&logger.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: cfg.Log.Output,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		app, err = NewApp(cfg, log)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "access token (overrides config)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "backend base URL (overrides config)")

	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
