package intbitset

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring converts a finite set into a roaring bitmap of record IDs.
// It returns ErrInfinite for a co-finite set.
func (b *BitSet) ToRoaring() (*roaring.Bitmap, error) {
	if b.fill {
		return nil, ErrInfinite
	}

	rb := roaring.New()
	var batch []uint32
	for i, w := range b.words {
		for w != 0 {
			batch = append(batch, uint32(i*WordBits+bits.TrailingZeros64(w)))
			w &= w - 1
		}
		if len(batch) >= 4096 {
			rb.AddMany(batch)
			batch = batch[:0]
		}
	}
	rb.AddMany(batch)
	return rb, nil
}

// FromRoaring creates a finite set from a roaring bitmap.
// Values above MaxElement are rejected.
func FromRoaring(rb *roaring.Bitmap, opts ...Option) (*BitSet, error) {
	if rb.IsEmpty() {
		return New(append(opts, WithTrailingFill(false))...), nil
	}
	hi := rb.Maximum()
	if uint64(hi) > MaxElement {
		return nil, &IndexOutOfRangeError{Index: int(hi)}
	}

	b := New(append(opts, WithCapacity(int(hi)+1), WithTrailingFill(false))...)
	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		b.words[v>>6] |= uint64(1) << (v & (WordBits - 1))
	}
	b.invalidate()
	b.count = knownCount(int(rb.GetCardinality()))
	return b, nil
}
