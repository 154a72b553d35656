package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hotel_roomservice/database"
	"hotel_roomservice/model"

	"github.com/redis/go-redis/v9"
)

// Session carts live in redis under cart:<sessionID> and are refreshed on
// every write. An idle cart disappears after CartTTL.
const CartTTL = 24 * time.Hour

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// AddItem increments the quantity of an existing entry or appends a new one
// with quantity 1. Entry order is preserved.
func AddItem(entries []model.CartEntry, item model.MenuItem) []model.CartEntry {
	for i := range entries {
		if entries[i].MenuItemID == item.ID {
			entries[i].Quantity++
			return entries
		}
	}
	return append(entries, model.CartEntry{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
}

// AdjustQuantity applies a signed delta, clamping at zero. An entry reaching
// zero is removed, never stored. Adjusting an absent id is a no-op here;
// positive deltas on absent ids are handled by the caller as an insert since
// the item snapshot must come from the catalog.
func AdjustQuantity(entries []model.CartEntry, menuItemID uint, delta int) []model.CartEntry {
	result := make([]model.CartEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.MenuItemID == menuItemID {
			quantity := entry.Quantity + delta
			if quantity <= 0 {
				continue
			}
			entry.Quantity = quantity
		}
		result = append(result, entry)
	}
	return result
}

// RemoveItem deletes the entry unconditionally; absent ids are a no-op.
func RemoveItem(entries []model.CartEntry, menuItemID uint) []model.CartEntry {
	result := make([]model.CartEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.MenuItemID != menuItemID {
			result = append(result, entry)
		}
	}
	return result
}

func TotalItemCount(entries []model.CartEntry) int {
	count := 0
	for _, entry := range entries {
		count += entry.Quantity
	}
	return count
}

func QuantityOf(entries []model.CartEntry, menuItemID uint) int {
	for _, entry := range entries {
		if entry.MenuItemID == menuItemID {
			return entry.Quantity
		}
	}
	return 0
}

// LoadCart returns the session cart. A missing key is an empty cart. An
// unparseable value is logged, deleted, and treated as empty so one corrupt
// write cannot wedge the session.
func LoadCart(ctx context.Context, sessionID string) ([]model.CartEntry, error) {
	raw, err := database.Redis.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return []model.CartEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []model.CartEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("corrupt cart for session %s, resetting: %v", sessionID, err)
		database.Redis.Del(ctx, cartKey(sessionID))
		return []model.CartEntry{}, nil
	}
	return entries, nil
}

func SaveCart(ctx context.Context, sessionID string, entries []model.CartEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, cartKey(sessionID), raw, CartTTL).Err()
}

func ClearCart(ctx context.Context, sessionID string) error {
	return database.Redis.Del(ctx, cartKey(sessionID)).Err()
}
