package bouquet

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bloomstitch/storefront-backend/internal/cart"
	"github.com/bloomstitch/storefront-backend/internal/catalog"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
)

const (
	// MaxUnitsPerFlower is a sanity cap per flower kind, not a stock limit.
	MaxUnitsPerFlower = 20
	// MaxUnitsPerLeaf caps the filler count per leaf kind.
	MaxUnitsPerLeaf = 50
	// MinFlowerUnits is the smallest bouquet that can be committed.
	MinFlowerUnits = 3
)

// flowerSelection tracks the chosen quantity for one flower kind plus one
// color entry per unit. len(Colors) == Quantity always holds.
type flowerSelection struct {
	Quantity int      `json:"quantity"`
	Colors   []string `json:"colors"`
}

// Builder accumulates a custom bouquet selection for one session. It is not
// safe for concurrent use.
type Builder struct {
	flowers map[string]*flowerSelection
	leaves  map[string]int
	nextSeq int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		flowers: map[string]*flowerSelection{},
		leaves:  map[string]int{},
	}
}

// SetFlowerQuantity adjusts the unit count for a flower by delta, clamped to
// [0, MaxUnitsPerFlower]. Growing appends units defaulted to the flower's
// first declared color; shrinking drops the most recently added units first.
func (b *Builder) SetFlowerQuantity(flowerID string, delta int) error {
	item, ok := catalog.ByID(flowerID)
	if !ok || item.Category != catalog.CategoryFlowers {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown flower")
	}

	sel := b.flowers[flowerID]
	if sel == nil {
		sel = &flowerSelection{}
		b.flowers[flowerID] = sel
	}

	next := clamp(sel.Quantity+delta, 0, MaxUnitsPerFlower)
	switch {
	case next > sel.Quantity:
		for i := sel.Quantity; i < next; i++ {
			sel.Colors = append(sel.Colors, item.FirstColor())
		}
	case next < sel.Quantity:
		sel.Colors = sel.Colors[:next]
	}
	sel.Quantity = next

	if sel.Quantity == 0 {
		delete(b.flowers, flowerID)
	}
	return nil
}

// SetFlowerUnitColor overwrites the color chosen for one unit. Out-of-range
// indexes are ignored.
func (b *Builder) SetFlowerUnitColor(flowerID string, unitIndex int, color string) error {
	if _, ok := catalog.ByID(flowerID); !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown flower")
	}
	sel := b.flowers[flowerID]
	if sel == nil || unitIndex < 0 || unitIndex >= sel.Quantity {
		return nil
	}
	sel.Colors[unitIndex] = color
	return nil
}

// SetLeafQuantity adjusts the filler count for a leaf by delta, clamped to
// [0, MaxUnitsPerLeaf]. Leaves have no color dimension.
func (b *Builder) SetLeafQuantity(leafID string, delta int) error {
	item, ok := catalog.ByID(leafID)
	if !ok || item.Category != catalog.CategoryLeaves {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown leaf")
	}

	next := clamp(b.leaves[leafID]+delta, 0, MaxUnitsPerLeaf)
	if next == 0 {
		delete(b.leaves, leafID)
		return nil
	}
	b.leaves[leafID] = next
	return nil
}

// FlowerQuantity returns the current unit count for a flower.
func (b *Builder) FlowerQuantity(flowerID string) int {
	if sel := b.flowers[flowerID]; sel != nil {
		return sel.Quantity
	}
	return 0
}

// FlowerColors returns a copy of the per-unit color list for a flower.
func (b *Builder) FlowerColors(flowerID string) []string {
	sel := b.flowers[flowerID]
	if sel == nil {
		return nil
	}
	out := make([]string, len(sel.Colors))
	copy(out, sel.Colors)
	return out
}

// LeafQuantity returns the current filler count for a leaf.
func (b *Builder) LeafQuantity(leafID string) int {
	return b.leaves[leafID]
}

// FlowerUnits returns the total selected flower units across all kinds.
func (b *Builder) FlowerUnits() int {
	total := 0
	for _, sel := range b.flowers {
		total += sel.Quantity
	}
	return total
}

// Total recomputes the bouquet price from the registry on every call.
func (b *Builder) Total() int {
	total := 0
	for id, sel := range b.flowers {
		if item, ok := catalog.ByID(id); ok {
			total += item.Price * sel.Quantity
		}
	}
	for id, qty := range b.leaves {
		if item, ok := catalog.ByID(id); ok {
			total += item.Price * qty
		}
	}
	return total
}

// Commit validates the selection, synthesizes a single custom line item, adds
// it to the cart, and resets the builder. A selection below MinFlowerUnits
// fails without touching either the cart or the builder.
func (b *Builder) Commit(c *cart.Cart) (cart.ItemSnapshot, error) {
	if b.FlowerUnits() < MinFlowerUnits {
		return cart.ItemSnapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "minimum flower count not met").
			WithDetails(map[string]any{"minimum": MinFlowerUnits, "selected": b.FlowerUnits()})
	}

	b.nextSeq++
	snapshot := cart.ItemSnapshot{
		ID:          fmt.Sprintf("bouquet-custom-%d", b.nextSeq),
		Kind:        cart.LineKindCustom,
		Name:        "Custom Bouquet",
		Category:    catalog.CategoryBouquets,
		Price:       b.Total(),
		Description: b.describe(),
	}

	c.Add(snapshot, 1, "")

	b.flowers = map[string]*flowerSelection{}
	b.leaves = map[string]int{}
	return snapshot, nil
}

// describe renders the composition: one entry per flower unit in catalog
// registration order, then one entry per leaf kind with its count. Units
// whose flower declares no colors get a bare name with no parenthetical.
func (b *Builder) describe() string {
	var parts []string
	for _, flower := range catalog.Flowers() {
		sel := b.flowers[flower.ID]
		if sel == nil {
			continue
		}
		for _, color := range sel.Colors {
			if color == "" {
				parts = append(parts, flower.Name)
				continue
			}
			parts = append(parts, fmt.Sprintf("%s (%s)", flower.Name, color))
		}
	}
	for _, leaf := range catalog.Leaves() {
		if qty := b.leaves[leaf.ID]; qty > 0 {
			parts = append(parts, fmt.Sprintf("%dx %s", qty, leaf.Name))
		}
	}
	return strings.Join(parts, ", ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type builderState struct {
	Flowers map[string]*flowerSelection `json:"flowers"`
	Leaves  map[string]int              `json:"leaves"`
	NextSeq int                         `json:"next_seq"`
}

// MarshalJSON serializes the builder for session persistence.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(builderState{Flowers: b.flowers, Leaves: b.leaves, NextSeq: b.nextSeq})
}

// UnmarshalJSON restores a serialized builder.
func (b *Builder) UnmarshalJSON(data []byte) error {
	var state builderState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	b.flowers = state.Flowers
	if b.flowers == nil {
		b.flowers = map[string]*flowerSelection{}
	}
	b.leaves = state.Leaves
	if b.leaves == nil {
		b.leaves = map[string]int{}
	}
	b.nextSeq = state.NextSeq
	return nil
}
