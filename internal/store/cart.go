package store

import (
	"go.uber.org/zap"

	"github.com/zhiqi-health/wellness-client/internal/localstore"
	"github.com/zhiqi-health/wellness-client/internal/models"
)

// AddToCart inserts an item, merging on (type, id): adding an existing
// pair bumps its quantity instead of duplicating the line. A zero
// quantity counts as one. The cart total is recomputed and the full
// cart persisted.
func (s *Store) AddToCart(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	merged := false
	for i := range s.cart.Items {
		if s.cart.Items[i].Type == item.Type && s.cart.Items[i].ID == item.ID {
			s.cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart.Items = append(s.cart.Items, item)
	}

	s.recomputeCartLocked()
	s.persistCartLocked()
}

// RemoveFromCart drops the (itemType, id) line if present.
func (s *Store) RemoveFromCart(itemType models.ItemType, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart.Items[:0]
	for _, it := range s.cart.Items {
		if it.Type == itemType && it.ID == id {
			continue
		}
		kept = append(kept, it)
	}
	s.cart.Items = kept

	s.recomputeCartLocked()
	s.persistCartLocked()
}

// UpdateCartItem sets the quantity of an existing line. Unknown lines
// are ignored.
func (s *Store) UpdateCartItem(itemType models.ItemType, id int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].Type == itemType && s.cart.Items[i].ID == id {
			s.cart.Items[i].Quantity = quantity
			s.recomputeCartLocked()
			s.persistCartLocked()
			return
		}
	}
}

// ClearCart empties the cart and removes its persisted value.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

func (s *Store) clearCartLocked() {
	s.cart = models.Cart{}
	if err := s.local.Delete(localstore.KeyCart); err != nil {
		s.log.Error("failed to remove persisted cart", zap.Error(err))
	}
}

// LoadCart hydrates the cart from durable storage. Absent or malformed
// data leaves the cart untouched.
func (s *Store) LoadCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cart models.Cart
	if s.local.GetJSON(localstore.KeyCart, &cart) {
		s.cart = cart
	}
}

func (s *Store) recomputeCartLocked() {
	total := 0.0
	for _, it := range s.cart.Items {
		total += it.Price * float64(it.Quantity)
	}
	s.cart.Total = total
}

func (s *Store) persistCartLocked() {
	if err := s.local.SetJSON(localstore.KeyCart, s.cart); err != nil {
		s.log.Error("failed to persist cart", zap.Error(err))
	}
}

// CartItems returns a copy of the cart lines in insertion order.
func (s *Store) CartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.cart.Items))
	copy(out, s.cart.Items)
	return out
}

// CartTotal returns the current cart total.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total
}

// CartItemCount returns the summed quantity over all lines.
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, it := range s.cart.Items {
		count += it.Quantity
	}
	return count
}

// AddToFavorites records a favorite. Favoriting an already-favorited
// (type, id) pair leaves the list unchanged.
func (s *Store) AddToFavorites(item models.FavoriteItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fav := range s.favorites {
		if fav.Type == item.Type && fav.ID == item.ID {
			return
		}
	}
	s.favorites = append(s.favorites, item)
	s.persistFavoritesLocked()
}

// RemoveFromFavorites drops the (itemType, id) favorite if present.
func (s *Store) RemoveFromFavorites(itemType models.ItemType, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.favorites[:0]
	for _, fav := range s.favorites {
		if fav.Type == itemType && fav.ID == id {
			continue
		}
		kept = append(kept, fav)
	}
	s.favorites = kept
	s.persistFavoritesLocked()
}

// LoadFavorites hydrates favorites from durable storage.
func (s *Store) LoadFavorites() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var favorites []models.FavoriteItem
	if s.local.GetJSON(localstore.KeyFavorites, &favorites) {
		s.favorites = favorites
	}
}

func (s *Store) persistFavoritesLocked() {
	if err := s.local.SetJSON(localstore.KeyFavorites, s.favorites); err != nil {
		s.log.Error("failed to persist favorites", zap.Error(err))
	}
}

// Favorites returns a copy of the favorites list.
func (s *Store) Favorites() []models.FavoriteItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FavoriteItem, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// IsFavorited reports whether (itemType, id) is in the favorites list.
func (s *Store) IsFavorited(itemType models.ItemType, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.favorites {
		if fav.Type == itemType && fav.ID == id {
			return true
		}
	}
	return false
}
