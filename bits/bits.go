// Package bits provides a per-bit ternary register for accumulating bit
// constraints and materializing them into a concrete integer.
package bits

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/xorgo/bitops"
)

// State is the assignment of a single slot in the register.
type State uint8

const (
	// Unset marks a slot that has not been decided yet.
	Unset State = iota
	// Zero marks a slot decided to be 0.
	Zero
	// One marks a slot decided to be 1.
	One
)

// String returns a string representation of the State.
func (s State) String() string {
	switch s {
	case Unset:
		return "Unset"
	case Zero:
		return "Zero"
	case One:
		return "One"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// ErrContradiction indicates an attempt to constrain an already decided
// slot to the opposite value. The register is left unmodified.
type ErrContradiction struct {
	Index     int
	Existing  bool
	Requested bool
}

func (e *ErrContradiction) Error() string {
	return fmt.Sprintf("bits: slot %d already decided to %t, cannot be constrained to %t", e.Index, e.Existing, e.Requested)
}

// ErrWidthTooSmall indicates a materialization target type too narrow to
// hold every slot of the register.
type ErrWidthTooSmall struct {
	Width int
	Size  int
}

func (e *ErrWidthTooSmall) Error() string {
	return fmt.Sprintf("bits: target width %d cannot hold a %d-bit register", e.Width, e.Size)
}

// Bits is a mutable register of ternary slots, one per bit of the integer
// type it was created for. Slot index i corresponds to the bit with
// positional weight 2^i, so index 0 is the least significant bit.
//
// A Bits must not be shared between goroutines without external
// synchronization.
type Bits struct {
	slots []State
}

// New creates a register sized to the bit width of T, with every slot
// unset.
func New[T constraints.Integer]() *Bits {
	return &Bits{
		slots: make([]State, bitops.Size[T]()),
	}
}

// Len returns the number of slots in the register.
func (b *Bits) Len() int {
	return len(b.slots)
}

// Get returns the current assignment of the slot at index.
//
// Panics if index is out of range.
func (b *Bits) Get(index int) State {
	b.checkIndex(index)
	return b.slots[index]
}

// Set unconditionally overwrites the slot at index. It is intended for
// direct construction and tests; the constraint-solving path uses
// SetConstrained exclusively.
//
// Panics if index is out of range.
func (b *Bits) Set(index int, val bool) {
	b.checkIndex(index)
	b.slots[index] = stateOf(val)
}

// SetConstrained assigns the slot at index without ever flipping a
// decided slot. An unset slot is assigned val; a slot already decided to
// val is left alone; a slot decided to the opposite value yields an
// *ErrContradiction and the register is unmodified.
//
// Panics if index is out of range.
func (b *Bits) SetConstrained(index int, val bool) error {
	b.checkIndex(index)

	switch b.slots[index] {
	case Unset:
		b.slots[index] = stateOf(val)
	case stateOf(val):
		// Already decided to the requested value.
	default:
		return &ErrContradiction{Index: index, Existing: !val, Requested: val}
	}

	return nil
}

// IsDecided reports whether the slot at index is decided to Zero or One.
//
// Panics if index is out of range.
func (b *Bits) IsDecided(index int) bool {
	b.checkIndex(index)
	return b.slots[index] != Unset
}

func (b *Bits) checkIndex(index int) {
	if index < 0 || index >= len(b.slots) {
		panic(fmt.Sprintf("bits: slot index %d out of range for %d-slot register", index, len(b.slots)))
	}
}

func stateOf(val bool) State {
	if val {
		return One
	}
	return Zero
}

// Number materializes the register into a concrete value of type T,
// treating every unset slot as zero. Slot index i maps to the bit with
// weight 2^i.
//
// It returns an *ErrWidthTooSmall if T is narrower than the register.
// A wider T succeeds, with the upper bits implicitly zero.
func Number[T constraints.Unsigned](b *Bits) (T, error) {
	if bitops.Size[T]() < b.Len() {
		return 0, &ErrWidthTooSmall{Width: bitops.Size[T](), Size: b.Len()}
	}

	// Only One slots contribute; Zero and Unset bits are zero already.
	var number T
	for index, slot := range b.slots {
		if slot == One {
			number = bitops.SetBit(number, index)
		}
	}

	return number, nil
}
