package intbitset

import (
	"iter"
	"math/bits"
)

// Next returns the smallest member greater than after, and false when
// there is none. Use Next(-1) to start from the beginning.
//
// On a co-finite set every integer past storage is a member, so a loop
// over Next only ends at MaxElement; callers should bound their range.
func (b *BitSet) Next(after int) (int, bool) {
	if after >= MaxElement {
		return 0, false
	}
	start := max(after+1, 0)

	i := wordIndex(start)
	if i >= len(b.words) {
		if b.fill {
			return start, true
		}
		return 0, false
	}

	// Mask out bits before start within the first word
	if w := b.words[i] >> (uint(start) & (WordBits - 1)); w != 0 {
		return start + bits.TrailingZeros64(w), true
	}
	for i++; i < len(b.words); i++ {
		if w := b.words[i]; w != 0 {
			return i*WordBits + bits.TrailingZeros64(w), true
		}
	}

	if b.fill {
		if e := len(b.words) * WordBits; e <= MaxElement {
			return e, true
		}
	}
	return 0, false
}

// Last returns the largest member. It returns ErrInfinite for a co-finite
// set and ErrEmpty when there are no members.
func (b *BitSet) Last() (int, error) {
	if b.fill {
		return 0, ErrInfinite
	}
	e := lastInWords(b.words)
	if e < 0 {
		return 0, ErrEmpty
	}
	return e, nil
}

// All returns an iterator over the members in ascending order.
// On a co-finite set the sequence runs up to MaxElement.
func (b *BitSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for e, ok := b.Next(-1); ok; e, ok = b.Next(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// ForEach calls fn for each member in ascending order.
// Returns early if fn returns false.
func (b *BitSet) ForEach(fn func(int) bool) {
	for i, w := range b.words {
		for w != 0 {
			e := i*WordBits + bits.TrailingZeros64(w)
			if !fn(e) {
				return
			}
			w &= w - 1 // Clear lowest bit
		}
	}
	if !b.fill {
		return
	}
	for e := len(b.words) * WordBits; e <= MaxElement; e++ {
		if !fn(e) {
			return
		}
	}
}

// ToSlice returns all members as a sorted slice, or ErrInfinite for a
// co-finite set.
func (b *BitSet) ToSlice() ([]int, error) {
	n, err := b.Len()
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, n)
	b.ForEach(func(e int) bool {
		out = append(out, e)
		return true
	})
	return out, nil
}

// ExtractFinite returns the members less than or equal to upTo in
// ascending order. Unlike ToSlice it accepts co-finite sets.
func (b *BitSet) ExtractFinite(upTo int) []int {
	upTo = min(upTo, MaxElement)
	var out []int
	for e, ok := b.Next(-1); ok && e <= upTo; e, ok = b.Next(e) {
		out = append(out, e)
	}
	return out
}
