package cart

import "github.com/bloomstitch/storefront-backend/internal/catalog"

// SnapshotOf copies a registry item into the closed per-line record.
func SnapshotOf(item catalog.Item) ItemSnapshot {
	return ItemSnapshot{
		ID:       item.ID,
		Kind:     LineKindStandard,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
	}
}
