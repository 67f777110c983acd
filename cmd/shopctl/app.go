package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	cartapp "github.com/shopfront/client/internal/application/cart"
	catalogapp "github.com/shopfront/client/internal/application/catalog"
	"github.com/shopfront/client/internal/application/checkout"
	orderapp "github.com/shopfront/client/internal/application/order"
	"github.com/shopfront/client/internal/application/resource"
	"github.com/shopfront/client/internal/domain/identity"
	"github.com/shopfront/client/internal/domain/shared"
	"github.com/shopfront/client/internal/infrastructure/config"
	"github.com/shopfront/client/internal/infrastructure/event"
	"github.com/shopfront/client/internal/infrastructure/rest"
	transient "github.com/shopfront/client/internal/infrastructure/session"
)

// App wires the client library together for one CLI invocation
type App struct {
	Config  *config.Config
	Session *identity.Session
	Client  *rest.Client
	Slices  *resource.Set
	Store   *transient.TransientStore
	Bus     *event.InMemoryEventBus
	Home    *catalogapp.HomeService
	Cart    *cartapp.Service
	Orders  *orderapp.Service
	Logger  *zap.Logger
}

// NewApp builds the full dependency graph from configuration
func NewApp(cfg *config.Config, log *zap.Logger) (*App, error) {
	session := identity.Anonymous()
	if cfg.Auth.Token != "" {
		decoded, err := identity.FromToken(cfg.Auth.Token)
		if err != nil {
			return nil, err
		}
		session = decoded
	}

	client, err := rest.New(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.Auth.Token,
		Timeout: cfg.API.Timeout,
	}, log)
	if err != nil {
		return nil, err
	}

	defaults := resource.Query{Size: cfg.Page.DefaultSize, Sort: cfg.Page.DefaultSort}
	slices := resource.NewSet(client, defaults, log)
	store := transient.NewTransientStore()
	bus := event.NewInMemoryEventBus(log)

	return &App{
		Config:  cfg,
		Session: session,
		Client:  client,
		Slices:  slices,
		Store:   store,
		Bus:     bus,
		Home:    catalogapp.NewHomeService(client, log),
		Cart:    cartapp.NewService(client, slices.CartItems, store, bus, log),
		Orders:  orderapp.NewService(client, slices.ShopOrders, log),
		Logger:  log,
	}, nil
}

// Checkout builds a fresh workflow instance for one checkout attempt
func (a *App) Checkout() *checkout.Workflow {
	return checkout.NewWorkflow(checkout.Deps{
		Client:    a.Client,
		Session:   a.Session,
		Store:     a.Store,
		Bus:       a.Bus,
		Notifier:  terminalNotifier{},
		Navigator: terminalNavigator{},
		Pricing: checkout.Pricing{
			FreeShippingThreshold: decimal.NewFromFloat(a.Config.Checkout.FreeShippingThreshold),
			ShippingFee:           decimal.NewFromFloat(a.Config.Checkout.ShippingFee),
		},
		RedirectDelay: a.Config.Checkout.RedirectDelay,
		Logger:        a.Logger,
	})
}

// RequireAuth fails fast when a command needs a session
func (a *App) RequireAuth() error {
	if !a.Session.Authenticated() {
		return shared.ErrUnauthenticated
	}
	return nil
}

// RequireAdmin fails fast when a command needs the back-office role
func (a *App) RequireAdmin() error {
	if err := a.RequireAuth(); err != nil {
		return err
	}
	if !a.Session.IsAdmin() {
		return shared.ErrForbidden
	}
	return nil
}

// terminalNotifier prints transient notifications to the terminal
type terminalNotifier struct{}

func (terminalNotifier) Success(message string) { fmt.Println("✔", message) }
func (terminalNotifier) Error(message string)   { fmt.Println("✘", message) }

// terminalNavigator has no routes to change; it just tells the user where
// the web client would have gone
type terminalNavigator struct{}

func (terminalNavigator) NavigateTo(route string) {
	fmt.Println("→", route)
}
