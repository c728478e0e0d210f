// Package cart owns the single in-memory cart and keeps it synchronized
// with whichever source is authoritative for the current auth state:
// the guest snapshot on disk, or the backend's server-side cart.
package cart

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domaincart "github.com/shop/storefront/internal/domain/cart"
	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/domain/shared/valueobject"
	"github.com/shop/storefront/internal/infrastructure/api"
)

// Outcome notification messages. Failure messages are deliberately
// generic; the log carries the underlying error.
const (
	msgCleared      = "Cart has been cleared"
	msgFailedAdd    = "Failed to add item to cart"
	msgFailedRemove = "Failed to remove item from cart"
	msgFailedUpdate = "Failed to update cart item"
	msgFailedClear  = "Failed to clear cart"
)

// RemoteCart is the slice of the backend client the service uses. In
// remote mode every mutation is write-then-refetch: the server's
// post-mutation snapshot always wins over local deltas.
type RemoteCart interface {
	FetchCart(ctx context.Context) ([]api.CartItem, error)
	AddCartItem(ctx context.Context, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error
}

// AuthState reports whether a user session is active
type AuthState interface {
	Authenticated() bool
}

// Service is the cart facade. All mutations route to the guest snapshot
// or the remote cart based on auth state, and every mutation attempt
// produces exactly one outcome notification.
type Service struct {
	remote   RemoteCart
	auth     AuthState
	resolver *Resolver
	store    EntryStore
	notifier Notifier
	logger   *zap.Logger

	mu   sync.Mutex
	cart *domaincart.Cart
}

// NewService creates the cart service with an empty in-memory cart.
// Call Load to populate it from the authoritative source.
func NewService(remote RemoteCart, auth AuthState, resolver *Resolver, store EntryStore, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		remote:   remote,
		auth:     auth,
		resolver: resolver,
		store:    store,
		notifier: notifier,
		logger:   logger,
		cart:     domaincart.New(),
	}
}

// Load populates the in-memory cart from the source that is
// authoritative for the current auth state. When the remote fetch
// fails the guest snapshot serves as the fallback.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth.Authenticated() {
		if err := s.refreshRemoteLocked(ctx); err != nil {
			s.logger.Warn("failed to load remote cart, falling back to local snapshot", zap.Error(err))
			s.loadLocalLocked(ctx)
		}
		return
	}
	s.loadLocalLocked(ctx)
}

// Reconcile reacts to an auth transition: login hands authority to the
// server cart, logout hands it back to the guest snapshot.
func (s *Service) Reconcile(ctx context.Context, authenticated bool) {
	if authenticated {
		s.SyncOnLogin(ctx)
		return
	}
	s.syncOnLogout(ctx)
}

// SyncOnLogin replaces the in-memory cart with the server cart. Local
// entries present before login are not merged; the server cart wins
// wholesale. When the fetch fails the local snapshot stays in effect.
func (s *Service) SyncOnLogin(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshRemoteLocked(ctx); err != nil {
		s.logger.Warn("failed to fetch cart after login, keeping local entries", zap.Error(err))
		s.loadLocalLocked(ctx)
	}
}

// syncOnLogout reloads the guest snapshot, which remote mode never
// writes, so the pre-login guest cart survives a login/logout round trip.
func (s *Service) syncOnLogout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocalLocked(ctx)
}

// AddToCart adds a quantity of the product to the cart. Adding a product
// already present increases its quantity; at most one line per product
// ever exists.
func (s *Service) AddToCart(ctx context.Context, product *catalog.Product, quantity int) error {
	if product == nil || product.ID == "" {
		s.notifier.Error(msgFailedAdd)
		return shared.ErrInvalidInput
	}
	if quantity < 1 {
		s.notifier.Error(msgFailedAdd)
		return shared.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth.Authenticated() {
		if err := s.remote.AddCartItem(ctx, product.ID, quantity); err != nil {
			s.logger.Warn("remote cart add failed", zap.String("product_id", product.ID), zap.Error(err))
			s.notifier.Error(msgFailedAdd)
			return err
		}
		if err := s.refreshRemoteLocked(ctx); err != nil {
			s.logger.Warn("cart refetch after add failed", zap.Error(err))
			s.notifier.Error(msgFailedAdd)
			return err
		}
		s.notifier.Success(fmt.Sprintf("Added %s to your cart", product.Name))
		return nil
	}

	_, existed := s.cart.Get(product.ID)
	if err := s.cart.Add(product, quantity); err != nil {
		s.notifier.Error(msgFailedAdd)
		return err
	}
	s.persistLocked()

	if existed {
		s.notifier.Success(fmt.Sprintf("Updated %s quantity in your cart", product.Name))
	} else {
		s.notifier.Success(fmt.Sprintf("Added %s to your cart", product.Name))
	}
	return nil
}

// RemoveFromCart deletes the product's line. Removing an absent product
// is a successful no-op.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.lineNameLocked(productID)

	if s.auth.Authenticated() {
		if err := s.remote.RemoveCartItem(ctx, productID); err != nil {
			s.logger.Warn("remote cart remove failed", zap.String("product_id", productID), zap.Error(err))
			s.notifier.Error(msgFailedRemove)
			return err
		}
		if err := s.refreshRemoteLocked(ctx); err != nil {
			s.logger.Warn("cart refetch after remove failed", zap.Error(err))
			s.notifier.Error(msgFailedRemove)
			return err
		}
		s.notifier.Success(fmt.Sprintf("Removed %s from your cart", name))
		return nil
	}

	if s.cart.Remove(productID) {
		s.persistLocked()
	}
	s.notifier.Success(fmt.Sprintf("Removed %s from your cart", name))
	return nil
}

// UpdateQuantity sets the quantity of the product's line. A quantity of
// zero or less removes the line entirely.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.lineNameLocked(productID)

	if s.auth.Authenticated() {
		if err := s.remote.UpdateCartItem(ctx, productID, quantity); err != nil {
			s.logger.Warn("remote cart update failed", zap.String("product_id", productID), zap.Error(err))
			s.notifier.Error(msgFailedUpdate)
			return err
		}
		if err := s.refreshRemoteLocked(ctx); err != nil {
			s.logger.Warn("cart refetch after update failed", zap.Error(err))
			s.notifier.Error(msgFailedUpdate)
			return err
		}
		s.notifier.Success(fmt.Sprintf("Updated %s quantity in your cart", name))
		return nil
	}

	if s.cart.UpdateQuantity(productID, quantity) {
		s.persistLocked()
	}
	s.notifier.Success(fmt.Sprintf("Updated %s quantity in your cart", name))
	return nil
}

// ClearCart empties the cart
func (s *Service) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth.Authenticated() {
		if err := s.remote.ClearCart(ctx); err != nil {
			s.logger.Warn("remote cart clear failed", zap.Error(err))
			s.notifier.Error(msgFailedClear)
			return err
		}
		s.cart.Clear()
		s.notifier.Success(msgCleared)
		return nil
	}

	s.cart.Clear()
	s.persistLocked()
	s.notifier.Success(msgCleared)
	return nil
}

// Items returns the current cart lines
func (s *Service) Items() []domaincart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Entries returns the durable (productId, quantity) view of the cart
func (s *Service) Entries() []domaincart.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries()
}

// IsEmpty reports whether the cart holds no lines
func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// TotalItems returns the sum of all line quantities
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// TotalPrice returns the recomputed cart total
func (s *Service) TotalPrice() valueobject.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

// refreshRemoteLocked replaces the in-memory cart with the server's
// canonical cart. On error the in-memory cart is left untouched.
func (s *Service) refreshRemoteLocked(ctx context.Context) error {
	items, err := s.remote.FetchCart(ctx)
	if err != nil {
		return err
	}

	lines := make([]domaincart.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, domaincart.Line{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   item.Product,
		})
	}
	s.cart = domaincart.FromLines(lines)
	return nil
}

// loadLocalLocked rebuilds the cart from the guest snapshot, dropping
// entries whose product no longer resolves. When anything was dropped
// the snapshot is rewritten so it heals itself.
func (s *Service) loadLocalLocked(ctx context.Context) {
	entries := s.store.Load()
	lines, dropped := s.resolver.Resolve(ctx, entries)
	s.cart = domaincart.FromLines(lines)
	if dropped > 0 {
		s.persistLocked()
	}
}

// persistLocked writes the guest snapshot. Only called in local mode;
// remote mode never touches the snapshot file.
func (s *Service) persistLocked() {
	if err := s.store.Save(s.cart.Entries()); err != nil {
		s.logger.Warn("failed to persist cart snapshot", zap.Error(err))
	}
}

// lineNameLocked returns the product name for a line, or a generic
// placeholder when the line (or its snapshot) is unknown.
func (s *Service) lineNameLocked(productID string) string {
	if line, ok := s.cart.Get(productID); ok && line.Product != nil {
		return line.Product.Name
	}
	return "item"
}
