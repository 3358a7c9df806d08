package cart

// LineKind separates ordinary catalog lines from synthesized custom bouquets.
type LineKind string

const (
	LineKindStandard LineKind = "standard"
	LineKindCustom   LineKind = "custom"
)

// ItemSnapshot is the closed per-line copy of the purchased item. Custom
// bouquet lines embed a synthesized snapshot instead of pointing at the
// static registry.
type ItemSnapshot struct {
	ID          string   `json:"id"`
	Kind        LineKind `json:"kind"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int      `json:"price"`
	Description string   `json:"description,omitempty"`
}

// Line is one (item, color) pairing plus a quantity. Quantity is always >= 1;
// a line that would reach zero is removed instead.
type Line struct {
	Item          ItemSnapshot `json:"item"`
	Quantity      int          `json:"quantity"`
	SelectedColor string       `json:"selected_color,omitempty"`
}

// Subtotal returns the line's price contribution.
func (l Line) Subtotal() int {
	return l.Item.Price * l.Quantity
}

// Cart holds the ordered line collection for one shopping session. It is not
// safe for concurrent use; each session owns exactly one cart.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges the quantity into an existing line with the same (item id,
// color) identity, or appends a new line. Custom bouquet lines never merge;
// their synthesized ids are unique per session. Non-positive quantities are
// ignored.
func (c *Cart) Add(item ItemSnapshot, quantity int, color string) {
	if quantity < 1 {
		return
	}
	if item.Kind != LineKindCustom {
		for i := range c.lines {
			if c.lines[i].Item.Kind != LineKindCustom &&
				c.lines[i].Item.ID == item.ID &&
				c.lines[i].SelectedColor == color {
				c.lines[i].Quantity += quantity
				return
			}
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: quantity, SelectedColor: color})
}

// UpdateQuantity replaces the matching line's quantity. A quantity of zero or
// less removes the line. Missing lines are a no-op.
func (c *Cart) UpdateQuantity(itemID string, quantity int, color string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID && c.lines[i].SelectedColor == color {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return
			}
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the matching line if present.
func (c *Cart) Remove(itemID string, color string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID && c.lines[i].SelectedColor == color {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal recomputes the sum of line subtotals from scratch.
func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Count returns the total unit count across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Empty reports whether the cart holds no units.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the line collection in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Restore replaces the cart contents with a previously serialized snapshot.
func (c *Cart) Restore(lines []Line) {
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
}
