package store

import (
	"context"

	"lifeboard/internal/gamify"
	"lifeboard/internal/storage"
)

// BuyItem deducts the item price from the XP balance and adds the item to
// the inventory. Failures are typed (ErrUnknownShopItem, ErrAlreadyOwned,
// ErrInsufficientXP) and leave state untouched; double-charging is
// impossible because ownership is checked before the balance.
func (s *Store) BuyItem(ctx context.Context, itemID string) error {
	item, ok := gamify.FindShopItem(itemID)
	if !ok {
		return ErrUnknownShopItem
	}

	return s.mutate(ctx, func(st *storage.State) error {
		for _, owned := range st.Profile.Inventory {
			if owned == item.ID {
				return ErrAlreadyOwned
			}
		}
		if st.Profile.XP < item.Price {
			return ErrInsufficientXP
		}

		p := cloneProfile(st.Profile)
		p.XP -= item.Price
		p.Inventory = append(p.Inventory, item.ID)
		st.Profile = p
		return nil
	})
}

// Owned reports whether the item is in the inventory.
func Owned(p storage.Profile, itemID string) bool {
	for _, id := range p.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}
