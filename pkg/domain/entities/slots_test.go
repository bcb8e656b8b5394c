package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotVector_Total(t *testing.T) {
	v := SlotVector{10, 0, 5, 0, 5, 0, 5}
	assert.Equal(t, Quantity(25), v.Total())
	assert.Equal(t, Quantity(0), SlotVector{}.Total())
	assert.Equal(t, Quantity(0), SlotVector(nil).Total())
}

func TestZeroSlots_SizedByCycle(t *testing.T) {
	assert.Len(t, ZeroSlots(Weekly), 7)
	assert.Len(t, ZeroSlots(Monthly), 5)
	// Daily cycles plan on weekly periods.
	assert.Len(t, ZeroSlots(Daily), 7)
}

func TestAddSlots(t *testing.T) {
	a := SlotVector{1, 2, 3}
	b := SlotVector{10, 20, 30}
	assert.Equal(t, SlotVector{11, 22, 33}, AddSlots(a, b))

	// Adding into a nil accumulator sizes the result from the operand.
	assert.Equal(t, SlotVector{1, 2, 3}, AddSlots(nil, a))

	// Mixed lengths pad the shorter side with zeros so totals stay additive.
	sum := AddSlots(SlotVector{1, 1, 1, 1, 1, 1, 1}, SlotVector{2, 2, 2, 2, 2})
	assert.Equal(t, SlotVector{3, 3, 3, 3, 3, 1, 1}, sum)
	assert.Equal(t, Quantity(17), sum.Total())
}

func TestSubSlots_CanGoNegative(t *testing.T) {
	diff := SubSlots(SlotVector{5, 5, 5}, SlotVector{10, 2, 5})
	assert.Equal(t, SlotVector{-5, 3, 0}, diff)
}

func TestSlotVector_Clone(t *testing.T) {
	a := SlotVector{1, 2, 3}
	b := a.Clone()
	b[0] = 99
	assert.Equal(t, Quantity(1), a[0])
}
