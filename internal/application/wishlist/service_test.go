package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/infrastructure/api"
)

type fakeAPI struct {
	items map[string]bool
}

func newFakeAPI() *fakeAPI { return &fakeAPI{items: make(map[string]bool)} }

func (f *fakeAPI) FetchWishlist(context.Context) ([]api.WishlistItem, error) {
	out := make([]api.WishlistItem, 0, len(f.items))
	for id := range f.items {
		out = append(out, api.WishlistItem{ProductID: id})
	}
	return out, nil
}

func (f *fakeAPI) AddWishlistItem(_ context.Context, productID string) error {
	f.items[productID] = true
	return nil
}

func (f *fakeAPI) RemoveWishlistItem(_ context.Context, productID string) error {
	delete(f.items, productID)
	return nil
}

func (f *fakeAPI) CheckWishlist(_ context.Context, productID string) (bool, error) {
	return f.items[productID], nil
}

type fakeAuth struct{ authed bool }

func (a *fakeAuth) Authenticated() bool { return a.authed }

func TestService_RequiresSignIn(t *testing.T) {
	svc := NewService(newFakeAPI(), &fakeAuth{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Items(ctx)
	assert.ErrorIs(t, err, shared.ErrSignInRequired)

	assert.ErrorIs(t, svc.Add(ctx, "p1"), shared.ErrSignInRequired)
	assert.ErrorIs(t, svc.Remove(ctx, "p1"), shared.ErrSignInRequired)
}

func TestService_ContainsIsFalseForGuests(t *testing.T) {
	client := newFakeAPI()
	client.items["p1"] = true
	svc := NewService(client, &fakeAuth{authed: false}, zap.NewNop())

	in, err := svc.Contains(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestService_AddRemoveRoundTrip(t *testing.T) {
	client := newFakeAPI()
	svc := NewService(client, &fakeAuth{authed: true}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "p1"))

	in, err := svc.Contains(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, in)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.Remove(ctx, "p1"))
	in, err = svc.Contains(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestService_AddRequiresProductID(t *testing.T) {
	svc := NewService(newFakeAPI(), &fakeAuth{authed: true}, zap.NewNop())
	assert.ErrorIs(t, svc.Add(context.Background(), ""), shared.ErrInvalidInput)
}
