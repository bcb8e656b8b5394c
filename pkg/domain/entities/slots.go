package entities

// Quantity represents an integer load count. Stored quantities are
// non-negative; gap arithmetic may produce negative values.
type Quantity int64

// SlotVector is an ordered tuple of per-slot quantities: seven per-day
// values for weekly periods or five per-week-of-month values for monthly
// periods. The total is always recomputed from the slots via Total, never
// read from a stored column.
type SlotVector []Quantity

// ZeroSlots returns an all-zero vector sized for the given cycle kind
func ZeroSlots(cycle CycleKind) SlotVector {
	return make(SlotVector, cycle.SlotCount())
}

// Total returns the sum of all slots
func (v SlotVector) Total() Quantity {
	var total Quantity
	for _, q := range v {
		total += q
	}
	return total
}

// Clone returns an independent copy of the vector
func (v SlotVector) Clone() SlotVector {
	out := make(SlotVector, len(v))
	copy(out, v)
	return out
}

// AddSlots returns the element-wise sum of a and b. The result is sized to
// the longer operand; missing slots on the shorter side count as zero, so
// totals stay additive even if callers mix slot conventions.
func AddSlots(a, b SlotVector) SlotVector {
	out := make(SlotVector, maxLen(a, b))
	for i := range out {
		out[i] = at(a, i) + at(b, i)
	}
	return out
}

// SubSlots returns the element-wise difference a - b, sized like AddSlots
func SubSlots(a, b SlotVector) SlotVector {
	out := make(SlotVector, maxLen(a, b))
	for i := range out {
		out[i] = at(a, i) - at(b, i)
	}
	return out
}

func maxLen(a, b SlotVector) int {
	if len(a) >= len(b) {
		return len(a)
	}
	return len(b)
}

func at(v SlotVector, i int) Quantity {
	if i < len(v) {
		return v[i]
	}
	return 0
}
