// Package checkout implements the checkout workflow: a one-shot state
// machine spanning one visit to the checkout page, from consuming the
// selected cart items to submitting the order.
package checkout

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcart "github.com/shopfront/client/internal/domain/cart"
	"github.com/shopfront/client/internal/domain/identity"
	"github.com/shopfront/client/internal/domain/order"
	"github.com/shopfront/client/internal/domain/shared"
	"github.com/shopfront/client/internal/infrastructure/rest"
	transient "github.com/shopfront/client/internal/infrastructure/session"
)

// Phase is the state of a checkout workflow instance
type Phase string

const (
	// PhaseLoading covers the initial cart fetch and selection intersection
	PhaseLoading Phase = "LOADING"
	// PhaseReady means a non-empty selection is held and the form may be submitted
	PhaseReady Phase = "READY"
	// PhaseProcessing means the checkout call is in flight; further submits are rejected
	PhaseProcessing Phase = "PROCESSING"
	// PhaseSucceeded is terminal: the order was created
	PhaseSucceeded Phase = "SUCCEEDED"
	// PhaseNothingToCheckOut is terminal: no selected items survived the
	// intersection with the fetched cart. Distinct from a failure.
	PhaseNothingToCheckOut Phase = "NOTHING_TO_CHECK_OUT"
	// PhaseUnauthenticated is terminal: checkout requires a session
	PhaseUnauthenticated Phase = "UNAUTHENTICATED"
)

// Routes the workflow navigates to
const (
	RouteOrders = "/orders"
	RouteLogin  = "/login"
)

// ShippingForm is the shipping address form. Every field is required but no
// format validation is applied beyond non-emptiness.
type ShippingForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
}

// ErrIncompleteForm indicates a shipping form with empty required fields;
// submission is blocked before any request is issued
var ErrIncompleteForm = shared.NewDomainError("INCOMPLETE_FORM", "All shipping fields are required")

// Notifier surfaces transient, dismissible messages to the user
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator performs route changes on behalf of a workflow
type Navigator interface {
	NavigateTo(route string)
}

// Deps are the collaborators a workflow needs
type Deps struct {
	Client        *rest.Client
	Session       *identity.Session
	Store         *transient.TransientStore
	Bus           shared.EventPublisher
	Notifier      Notifier
	Navigator     Navigator
	Pricing       Pricing
	RedirectDelay time.Duration
	Logger        *zap.Logger
}

// Workflow is one checkout page visit. Create a fresh instance per visit;
// the selected-items hand-off it consumes is gone once Begin has run.
type Workflow struct {
	deps     Deps
	validate *validator.Validate

	mu       sync.Mutex
	phase    Phase
	selected []domcart.Item
}

// NewWorkflow creates a checkout workflow in its loading phase
func NewWorkflow(deps Deps) *Workflow {
	return &Workflow{
		deps:     deps,
		validate: validator.New(),
		phase:    PhaseLoading,
	}
}

// Begin resolves the loading phase: it rejects unauthenticated sessions,
// fetches the cart through the with-items projection, consumes the one-shot
// selected-ids hand-off and intersects it with the fetched items.
func (w *Workflow) Begin(ctx context.Context) (Phase, error) {
	if !w.deps.Session.Authenticated() {
		w.setPhase(PhaseUnauthenticated)
		w.deps.Navigator.NavigateTo(RouteLogin)
		return PhaseUnauthenticated, shared.ErrUnauthenticated
	}

	var fetched domcart.Cart
	path := "/api/carts/with-items/user/" + strconv.FormatInt(w.deps.Session.UserID, 10)
	if err := w.deps.Client.Get(ctx, path, nil, &fetched); err != nil {
		w.deps.Notifier.Error("Could not load your cart")
		return w.Phase(), err
	}

	ids, _ := w.deps.Store.TakeIDs(transient.SelectedItemsKey)
	selected := domcart.IntersectSelected(fetched.Items, ids)
	if len(selected) == 0 {
		w.setPhase(PhaseNothingToCheckOut)
		return PhaseNothingToCheckOut, nil
	}

	w.mu.Lock()
	w.selected = selected
	w.phase = PhaseReady
	w.mu.Unlock()
	return PhaseReady, nil
}

// Phase returns the current workflow phase
func (w *Workflow) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// SelectedItems returns the selected subset held by the workflow
func (w *Workflow) SelectedItems() []domcart.Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domcart.Item(nil), w.selected...)
}

// Quote prices the selected subset
func (w *Workflow) Quote() Quote {
	return w.deps.Pricing.QuoteFor(w.SelectedItems())
}

// Submit validates the shipping form and places the order with a single
// checkout call. Validation failure blocks the request entirely. A rejected
// call notifies and returns the workflow to ready, resubmission allowed.
// Success notifies, broadcasts the cart change and, after the configured
// delay, navigates to the order list.
func (w *Workflow) Submit(ctx context.Context, form ShippingForm) (*order.ShopOrder, error) {
	w.mu.Lock()
	if w.phase != PhaseReady {
		phase := w.phase
		w.mu.Unlock()
		w.deps.Logger.Debug("submit rejected", zap.String("phase", string(phase)))
		return nil, shared.ErrInvalidState
	}

	if err := w.validate.Struct(form); err != nil {
		w.mu.Unlock()
		w.deps.Notifier.Error(ErrIncompleteForm.Message)
		return nil, ErrIncompleteForm
	}

	w.phase = PhaseProcessing
	quote := w.deps.Pricing.QuoteFor(w.selected)
	itemIDs := make([]int64, len(w.selected))
	for i, item := range w.selected {
		itemIDs[i] = item.ID
	}
	w.mu.Unlock()

	// The address travels as one opaque serialized blob
	address, err := json.Marshal(form)
	if err != nil {
		w.setPhase(PhaseReady)
		return nil, shared.ErrInvalidInput
	}

	request := order.CheckoutRequest{
		UserID:          w.deps.Session.UserID,
		Total:           quote.Total,
		ShippingAddress: string(address),
		PaymentMethod:   order.PaymentMethodCashOnDelivery,
		PaymentStatus:   order.PaymentStatusPending,
		SelectedItemIDs: itemIDs,
	}

	var created order.ShopOrder
	if err := w.deps.Client.Post(ctx, "/api/shop-orders/checkout", request, &created); err != nil {
		w.setPhase(PhaseReady)
		w.deps.Notifier.Error("Checkout failed, please try again")
		return nil, err
	}

	w.setPhase(PhaseSucceeded)
	w.deps.Notifier.Success("Order placed successfully")
	if err := w.deps.Bus.Publish(ctx, domcart.NewChangedEvent(w.deps.Session.UserID)); err != nil {
		w.deps.Logger.Warn("failed to publish cart changed event", zap.Error(err))
	}

	time.AfterFunc(w.deps.RedirectDelay, func() {
		w.deps.Navigator.NavigateTo(RouteOrders)
	})

	return &created, nil
}

func (w *Workflow) setPhase(phase Phase) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.phase = phase
}
