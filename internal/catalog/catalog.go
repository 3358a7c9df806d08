package catalog

import (
	"fmt"
	"strconv"
)

// Item is one purchasable catalog entry. The registry is fixed at process
// start; items are never mutated.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int      `json:"price"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description,omitempty"`
	InStock     bool     `json:"in_stock"`
	Colors      []string `json:"colors,omitempty"`
}

// HasColors reports whether the item is sold in color variants.
func (i Item) HasColors() bool {
	return len(i.Colors) > 0
}

// FirstColor returns the default variant for newly added bouquet units, or
// the empty string for items without a color dimension.
func (i Item) FirstColor() string {
	if len(i.Colors) == 0 {
		return ""
	}
	return i.Colors[0]
}

// HasColor reports whether the item declares the given variant.
func (i Item) HasColor(color string) bool {
	for _, c := range i.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// Category groups items for browsing.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

const (
	CategoryFlowers   = "flowers"
	CategoryBouquets  = "bouquets"
	CategoryLeaves    = "leaves"
	CategoryKeychains = "keychains"
	CategoryBows      = "bows"
	CategoryCoasters  = "coasters"
	CategoryToys      = "toys"
	CategoryBracelets = "bracelets"
)

// ByID returns the item registered under the given key.
func ByID(id string) (Item, bool) {
	item, ok := index[id]
	return item, ok
}

// ByCategory returns all items tagged with the category, in registration order.
func ByCategory(category string) []Item {
	var out []Item
	for _, item := range registry {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// All returns every registered item in registration order.
func All() []Item {
	out := make([]Item, len(registry))
	copy(out, registry)
	return out
}

// Flowers returns the bouquet-builder flower items in registration order.
func Flowers() []Item {
	return ByCategory(CategoryFlowers)
}

// Leaves returns the bouquet-builder filler items in registration order.
func Leaves() []Item {
	return ByCategory(CategoryLeaves)
}

// Categories returns the browsable category list.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryBySlug returns the category registered under the slug.
func CategoryBySlug(slug string) (Category, bool) {
	for _, cat := range categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return Category{}, false
}

// FormatPrice renders a whole-rupee amount with thousands separators,
// e.g. "₨ 1,050".
func FormatPrice(price int) string {
	return fmt.Sprintf("₨ %s", groupDigits(price))
}

func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
