package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domaincart "github.com/shop/storefront/internal/domain/cart"
	"github.com/shop/storefront/internal/domain/order"
	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/infrastructure/api"
)

type fakeAPI struct {
	created   *api.OrderInput
	createErr error
	orders    []order.Order
}

func (f *fakeAPI) CreateOrder(_ context.Context, input api.OrderInput) (*order.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &input
	return &order.Order{ID: "o1", Status: order.StatusPending}, nil
}

func (f *fakeAPI) MyOrders(context.Context, api.OrderFilter) ([]order.Order, *api.Pagination, error) {
	return f.orders, nil, nil
}

func (f *fakeAPI) ListOrders(context.Context, api.OrderFilter) ([]order.Order, *api.Pagination, error) {
	return f.orders, nil, nil
}

func (f *fakeAPI) GetOrder(_ context.Context, id string) (*order.Order, error) {
	return &order.Order{ID: id}, nil
}

func (f *fakeAPI) UpdateOrderStatus(_ context.Context, id string, _ api.OrderStatusUpdate) (*order.Order, error) {
	return &order.Order{ID: id}, nil
}

func (f *fakeAPI) DeleteOrder(context.Context, string) error { return nil }

type fakeCart struct {
	entries []domaincart.Entry
	cleared bool
}

func (c *fakeCart) IsEmpty() bool                 { return len(c.entries) == 0 }
func (c *fakeCart) Entries() []domaincart.Entry   { return c.entries }
func (c *fakeCart) ClearCart(context.Context) error {
	c.cleared = true
	c.entries = nil
	return nil
}

type fakeAuth struct{ authed bool }

func (a *fakeAuth) Authenticated() bool { return a.authed }

func validInput() CheckoutInput {
	return CheckoutInput{
		Address:     "1 Main Street, Springfield",
		PhoneNumber: "555-0100",
	}
}

func TestService_CheckoutRequiresSignIn(t *testing.T) {
	client := &fakeAPI{}
	cart := &fakeCart{entries: []domaincart.Entry{{ProductID: "p1", Quantity: 1}}}
	svc := NewService(client, cart, &fakeAuth{authed: false}, zap.NewNop())

	_, err := svc.Checkout(context.Background(), validInput())
	assert.ErrorIs(t, err, shared.ErrSignInRequired)
	assert.Nil(t, client.created)
	assert.False(t, cart.cleared)
}

func TestService_CheckoutRequiresNonEmptyCart(t *testing.T) {
	client := &fakeAPI{}
	svc := NewService(client, &fakeCart{}, &fakeAuth{authed: true}, zap.NewNop())

	_, err := svc.Checkout(context.Background(), validInput())
	assert.ErrorIs(t, err, shared.ErrEmptyCart)
	assert.Nil(t, client.created)
}

func TestService_CheckoutValidatesInput(t *testing.T) {
	tests := []struct {
		name  string
		input CheckoutInput
	}{
		{"missing address", CheckoutInput{PhoneNumber: "555-0100"}},
		{"missing phone", CheckoutInput{Address: "1 Main Street"}},
		{"short address", CheckoutInput{Address: "x", PhoneNumber: "555-0100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeAPI{}
			cart := &fakeCart{entries: []domaincart.Entry{{ProductID: "p1", Quantity: 1}}}
			svc := NewService(client, cart, &fakeAuth{authed: true}, zap.NewNop())

			_, err := svc.Checkout(context.Background(), tt.input)
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "INVALID_INPUT", domainErr.Code)
			assert.Nil(t, client.created)
		})
	}
}

func TestService_CheckoutPlacesOrderAndClearsCart(t *testing.T) {
	client := &fakeAPI{}
	cart := &fakeCart{entries: []domaincart.Entry{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}}
	svc := NewService(client, cart, &fakeAuth{authed: true}, zap.NewNop())

	placed, err := svc.Checkout(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "o1", placed.ID)

	require.NotNil(t, client.created)
	assert.Len(t, client.created.Items, 2)
	assert.Equal(t, "p1", client.created.Items[0].ProductID)
	assert.Equal(t, 2, client.created.Items[0].Quantity)

	assert.True(t, cart.cleared)
}

func TestService_CheckoutFailureKeepsCart(t *testing.T) {
	client := &fakeAPI{createErr: errors.New("insufficient stock")}
	cart := &fakeCart{entries: []domaincart.Entry{{ProductID: "p1", Quantity: 2}}}
	svc := NewService(client, cart, &fakeAuth{authed: true}, zap.NewNop())

	_, err := svc.Checkout(context.Background(), validInput())
	require.Error(t, err)
	assert.False(t, cart.cleared)
	assert.Len(t, cart.entries, 1)
}

func TestService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeAPI{}, &fakeCart{}, &fakeAuth{authed: true}, zap.NewNop())

	bogus := order.Status("TELEPORTED")
	_, err := svc.UpdateStatus(context.Background(), "o1", api.OrderStatusUpdate{Status: &bogus})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
}

func TestService_HistoryRequiresSignIn(t *testing.T) {
	svc := NewService(&fakeAPI{}, &fakeCart{}, &fakeAuth{}, zap.NewNop())

	_, _, err := svc.History(context.Background(), api.OrderFilter{})
	assert.ErrorIs(t, err, shared.ErrSignInRequired)
}
