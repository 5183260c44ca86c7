package entities

import (
	"github.com/emberhollow/realmd/internal/errors"
)

// Inventory size and stacking constants.
const (
	// InventorySize is the fixed slot count, set at character-creation time.
	InventorySize = 40
	// MaxStackSize bounds the quantity a single slot can hold.
	MaxStackSize = 64
)

// ItemType identifies a kind of stackable item.
type ItemType string

// Slot holds a typed stack. A nil *Slot in an Inventory is an empty slot.
type Slot struct {
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
}

// Inventory is a fixed-length ordered sequence of slots. The slot count
// never changes; total item count is conserved across any single operation.
// The session orchestrator is the sole mutator.
type Inventory []*Slot

// NewInventory returns an empty inventory of the standard size.
func NewInventory() Inventory {
	return make(Inventory, InventorySize)
}

// AddOne adds a single unit of itemType, stacking onto the leftmost
// non-full slot of the same type first, then falling back to the first
// empty slot. Returns the slot index written, or ResourceExhausted when
// no slot can take the item.
func (inv Inventory) AddOne(itemType ItemType) (int, error) {
	for i, slot := range inv {
		if slot != nil && slot.Type == itemType && slot.Quantity < MaxStackSize {
			slot.Quantity++
			return i, nil
		}
	}
	for i, slot := range inv {
		if slot == nil {
			inv[i] = &Slot{Type: itemType, Quantity: 1}
			return i, nil
		}
	}
	return 0, errors.ResourceExhausted("inventory is full")
}

// RemoveOne removes a single unit from the slot at index, clearing the
// slot when it reaches zero. Returns the removed item's type.
func (inv Inventory) RemoveOne(index int) (ItemType, error) {
	if index < 0 || index >= len(inv) {
		return "", errors.OutOfRangef("slot index %d out of range", index)
	}
	slot := inv[index]
	if slot == nil {
		return "", errors.InvalidArgumentf("slot %d is empty", index)
	}
	itemType := slot.Type
	slot.Quantity--
	if slot.Quantity <= 0 {
		inv[index] = nil
	}
	return itemType, nil
}

// MoveOrStack moves the stack at from onto to. Three cases, in order:
// an empty destination takes the whole stack; a same-type destination
// with spare capacity absorbs min(srcQty, MaxStackSize-dstQty) units;
// otherwise the two slots swap. An empty source is a no-op.
func (inv Inventory) MoveOrStack(from, to int) error {
	if from < 0 || from >= len(inv) {
		return errors.OutOfRangef("slot index %d out of range", from)
	}
	if to < 0 || to >= len(inv) {
		return errors.OutOfRangef("slot index %d out of range", to)
	}
	if from == to {
		return errors.InvalidArgument("source and destination slots are the same")
	}

	src := inv[from]
	if src == nil {
		return nil
	}
	dst := inv[to]

	switch {
	case dst == nil:
		inv[to] = src
		inv[from] = nil
	case dst.Type == src.Type && dst.Quantity < MaxStackSize:
		transfer := MaxStackSize - dst.Quantity
		if src.Quantity < transfer {
			transfer = src.Quantity
		}
		dst.Quantity += transfer
		src.Quantity -= transfer
		if src.Quantity <= 0 {
			inv[from] = nil
		}
	default:
		inv[from], inv[to] = dst, src
	}
	return nil
}

// Total returns the summed quantity across all slots.
func (inv Inventory) Total() int {
	total := 0
	for _, slot := range inv {
		if slot != nil {
			total += slot.Quantity
		}
	}
	return total
}

// Clone returns a deep copy, used to snapshot state for persistence.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for i, slot := range inv {
		if slot != nil {
			s := *slot
			out[i] = &s
		}
	}
	return out
}
