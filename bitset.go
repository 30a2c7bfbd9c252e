package intbitset

import (
	"math"
	"math/bits"
	"slices"

	"github.com/hupe1980/intbitset/internal/words"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64

	// WordBytes is the serialized size of one storage word.
	WordBytes = WordBits / 8

	// MaxElement is the largest element a set can hold.
	MaxElement = math.MaxInt32

	// maxWords is the number of words needed to hold MaxElement.
	maxWords = MaxElement/WordBits + 1
)

func wordIndex(e int) int {
	return e >> 6
}

func bitMask(e int) uint64 {
	return uint64(1) << (uint(e) & (WordBits - 1))
}

// wordsFor returns the number of words covering bits elements.
func wordsFor(bits int) int {
	if bits <= 0 {
		return 1
	}
	if bits > MaxElement {
		return maxWords
	}
	return (bits-1)/WordBits + 1
}

type lifecycle uint8

const (
	uninitialized lifecycle = iota
	allocated
)

// CountKind tells whether a Count holds a usable value.
type CountKind uint8

const (
	// CountUnknown means the population count has not been computed.
	CountUnknown CountKind = iota
	// CountKnown means Value holds the exact population count.
	CountKnown
	// CountInfinite means the set is co-finite.
	CountInfinite
)

// Count is a memoized population count.
type Count struct {
	kind CountKind
	n    int
}

func knownCount(n int) Count {
	return Count{kind: CountKnown, n: n}
}

// Kind returns the kind of the count.
func (c Count) Kind() CountKind { return c.kind }

// Value returns the count and whether it is known.
func (c Count) Value() (int, bool) {
	return c.n, c.kind == CountKnown
}

type sizeCache struct {
	valid bool
	n     int
}

// BitSet is a growable set of integers in [0, MaxElement].
//
// Elements are packed into 64-bit words; every bit beyond the stored words
// takes the value of the trailing fill bit, so a set with fill true is
// co-finite (all integers except a finite set).
//
// The zero value is an empty set that allocates on its first write.
// A BitSet is not safe for concurrent use.
type BitSet struct {
	words []uint64
	fill  bool
	state lifecycle
	size  sizeCache
	count Count
	opts  *options
}

// New creates a set. By default the set is empty with one word of storage.
func New(opts ...Option) *BitSet {
	o := buildOptions(opts)
	b := &BitSet{opts: o.shared()}
	b.init(wordsFor(o.capacity), o.fill)
	return b
}

// Full creates a co-finite set containing every element.
func Full(opts ...Option) *BitSet {
	return New(append(opts, WithTrailingFill(true))...)
}

// NewUnallocated creates an empty set without allocating storage.
// It is equivalent to the zero value with options attached.
func NewUnallocated(opts ...Option) *BitSet {
	o := buildOptions(opts)
	return &BitSet{fill: o.fill, opts: o.shared()}
}

// FromSlice creates a finite set holding elems. WithTrailingFill is
// ignored.
func FromSlice(elems []int, opts ...Option) (*BitSet, error) {
	hi := 0
	for _, e := range elems {
		if err := checkIndex(e); err != nil {
			return nil, err
		}
		hi = max(hi, e)
	}

	b := New(append(opts, WithCapacity(hi+1), WithTrailingFill(false))...)
	for _, e := range elems {
		b.words[wordIndex(e)] |= bitMask(e)
	}
	b.invalidate()
	return b, nil
}

func (b *BitSet) init(n int, fill bool) {
	b.words = make([]uint64, n)
	words.Fill(b.words, words.FillWord(fill))
	b.fill = fill
	b.state = allocated
	b.size = sizeCache{valid: true, n: 1}
	if fill {
		b.count = Count{kind: CountInfinite}
	} else {
		b.count = knownCount(0)
	}
}

func (b *BitSet) options() *options {
	if b.opts == nil {
		return &defaultOptions
	}
	return b.opts
}

// ensure moves an uninitialized set to the allocated state.
func (b *BitSet) ensure() {
	if b.state == uninitialized {
		b.init(1, b.fill)
	}
}

// invalidate drops the derived caches after a change of bits or fill.
func (b *BitSet) invalidate() {
	b.size.valid = false
	if b.fill {
		b.count = Count{kind: CountInfinite}
	} else {
		b.count = Count{kind: CountUnknown}
	}
}

func (b *BitSet) fillWord() uint64 {
	return words.FillWord(b.fill)
}

// word returns word i, reading the fill pattern beyond storage.
func (b *BitSet) word(i int) uint64 {
	if i < len(b.words) {
		return b.words[i]
	}
	return b.fillWord()
}

// Reset releases storage and returns the set to the empty, unallocated state.
func (b *BitSet) Reset() {
	b.words = nil
	b.fill = false
	b.state = uninitialized
	b.size = sizeCache{}
	b.count = knownCount(0)
}

// Release drops the storage owned by the set. Calling Release on a nil
// set is a no-op.
func (b *BitSet) Release() {
	if b == nil {
		return
	}
	b.Reset()
}

// Clone returns a deep copy of the set.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{
		words: slices.Clone(b.words),
		fill:  b.fill,
		state: b.state,
		size:  b.size,
		count: b.count,
		opts:  b.opts,
	}
}

// Resize grows storage to at least minWords words. It never shrinks.
// New words take the fill pattern, so the set's content is unchanged.
func (b *BitSet) Resize(minWords int) {
	b.ensure()
	minWords = min(minWords, maxWords)
	if minWords <= len(b.words) {
		return
	}
	b.grow(minWords)
}

func (b *BitSet) grow(n int) {
	old := len(b.words)
	grown := make([]uint64, n)
	copy(grown, b.words)
	words.Fill(grown[old:], b.fillWord())
	b.words = grown

	o := b.options()
	o.logger.LogResize(old, n)
	o.metricsCollector.RecordResize(old, n)
}

// growFor makes room for need words using the configured growth policy.
func (b *BitSet) growFor(need int) {
	b.ensure()
	if need <= len(b.words) {
		return
	}
	n := b.options().growth(len(b.words), need)
	n = min(max(n, need), maxWords)
	b.grow(n)
}

// Allocated returns the number of words backing the set.
func (b *BitSet) Allocated() int {
	return len(b.words)
}

// Size returns the number of leading words needed to represent the set:
// trailing words equal to the fill pattern are not counted, but the
// result is at least one.
func (b *BitSet) Size() int {
	if !b.size.valid {
		b.size = sizeCache{valid: true, n: max(words.TrimLen(b.words, b.fillWord()), 1)}
	}
	return b.size.n
}

// IsInfinite reports whether the set is co-finite.
func (b *BitSet) IsInfinite() bool {
	return b.fill
}

// Contains reports whether e is a member. Indices outside
// [0, MaxElement] are never members.
func (b *BitSet) Contains(e int) bool {
	if e < 0 || e > MaxElement {
		return false
	}
	i := wordIndex(e)
	if i < len(b.words) {
		return b.words[i]&bitMask(e) != 0
	}
	return b.fill
}

// Add inserts e.
func (b *BitSet) Add(e int) error {
	if err := checkIndex(e); err != nil {
		return err
	}
	i := wordIndex(e)
	if i >= len(b.words) {
		if b.fill {
			return nil
		}
		b.growFor(i + 1)
	}

	m := bitMask(e)
	if b.words[i]&m != 0 {
		return nil
	}
	b.words[i] |= m
	b.size.valid = false
	if b.count.kind == CountKnown {
		b.count.n++
	}
	return nil
}

// AddMany inserts every element of elems. Nothing is inserted if any
// element is out of range.
func (b *BitSet) AddMany(elems ...int) error {
	hi := -1
	for _, e := range elems {
		if err := checkIndex(e); err != nil {
			return err
		}
		hi = max(hi, e)
	}
	if hi < 0 {
		return nil
	}
	if !b.fill {
		b.growFor(wordIndex(hi) + 1)
	}

	for _, e := range elems {
		if i := wordIndex(e); i < len(b.words) {
			b.words[i] |= bitMask(e)
		}
	}
	b.invalidate()
	return nil
}

// Delete removes e. Removing a non-member is a no-op.
func (b *BitSet) Delete(e int) error {
	if err := checkIndex(e); err != nil {
		return err
	}
	i := wordIndex(e)
	if i >= len(b.words) {
		if !b.fill {
			return nil
		}
		b.growFor(i + 1)
	}

	m := bitMask(e)
	if b.words[i]&m == 0 {
		return nil
	}
	b.words[i] &^= m
	b.size.valid = false
	if b.count.kind == CountKnown {
		b.count.n--
	}
	return nil
}

// UpdateWithSigns applies a batch of edits: elements with a positive
// sign are added, elements with a negative sign are deleted and zero
// signs are ignored. Nothing is applied if any element is out of range.
func (b *BitSet) UpdateWithSigns(signs map[int]int) error {
	for e := range signs {
		if err := checkIndex(e); err != nil {
			return err
		}
	}
	for e, sign := range signs {
		switch {
		case sign > 0:
			_ = b.Add(e)
		case sign < 0:
			_ = b.Delete(e)
		}
	}
	return nil
}

// IsEmpty reports whether the set has no members.
func (b *BitSet) IsEmpty() bool {
	if b.fill {
		return false
	}
	if n, ok := b.count.Value(); ok {
		return n == 0
	}
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	b.count = knownCount(0)
	return true
}

// Count returns the memoized population count, computing it if needed.
// Co-finite sets report CountInfinite.
func (b *BitSet) Count() Count {
	if b.count.kind == CountUnknown {
		if b.fill {
			b.count = Count{kind: CountInfinite}
		} else {
			b.count = knownCount(words.PopcountWords(b.words))
		}
	}
	return b.count
}

// Len returns the number of members, or ErrInfinite for a co-finite set.
func (b *BitSet) Len() (int, error) {
	c := b.Count()
	if c.kind == CountInfinite {
		return 0, ErrInfinite
	}
	return c.n, nil
}

// Pop removes and returns the largest member.
func (b *BitSet) Pop() (int, error) {
	e, err := b.Last()
	if err != nil {
		return 0, err
	}
	b.words[wordIndex(e)] &^= bitMask(e)
	b.size.valid = false
	if b.count.kind == CountKnown {
		b.count.n--
	}
	return e, nil
}

// lastInWords returns the highest set bit of ws, or -1.
func lastInWords(ws []uint64) int {
	for i := len(ws) - 1; i >= 0; i-- {
		if w := ws[i]; w != 0 {
			return i*WordBits + WordBits - 1 - bits.LeadingZeros64(w)
		}
	}
	return -1
}
