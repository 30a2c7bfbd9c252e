package intbitset

import "github.com/hupe1980/intbitset/internal/words"

// Operand storage is never grown by the pure operations; in-place
// operations grow only their receiver. Words past an operand's storage are
// read as its fill word, so alignment is a matter of choosing how many
// words to combine:
//
//   - adaptMax covers every significant word of either operand
//     (union, xor, and any combination involving a co-finite operand).
//   - adaptMin stops at the shorter significant prefix when neither
//     operand is co-finite (intersection).

func adaptMax(x, y *BitSet) int {
	return max(x.Size(), y.Size())
}

func adaptMin(x, y *BitSet) int {
	if x.fill || y.fill {
		return adaptMax(x, y)
	}
	return min(x.Size(), y.Size())
}

// adaptSub sizes x minus y: past the significant words of a finite x the
// result is empty whatever y holds.
func adaptSub(x, y *BitSet) int {
	if !x.fill {
		return x.Size()
	}
	return adaptMax(x, y)
}

func adaptFor(op Op, x, y *BitSet) int {
	switch op {
	case OpIntersection:
		return adaptMin(x, y)
	case OpSubtract:
		return adaptSub(x, y)
	default:
		return adaptMax(x, y)
	}
}

func combineFill(op Op, x, y bool) bool {
	switch op {
	case OpUnion:
		return x || y
	case OpXor:
		return x != y
	case OpIntersection:
		return x && y
	default:
		return x && !y
	}
}

// apply combines dst with src word by word. Words of dst past src's
// storage are combined with src's fill word.
func apply(op Op, dst []uint64, src *BitSet) {
	k := min(len(dst), len(src.words))
	head, tail := dst[:k], dst[k:]
	fw := src.fillWord()

	switch op {
	case OpUnion:
		words.OrWords(head, src.words)
		words.OrFill(tail, fw)
	case OpXor:
		words.XorWords(head, src.words)
		words.XorFill(tail, fw)
	case OpIntersection:
		words.AndWords(head, src.words)
		words.AndFill(tail, fw)
	case OpSubtract:
		words.AndNotWords(head, src.words)
		words.AndNotFill(tail, fw)
	}
}

// combine is the pure form: x and y are left untouched.
func combine(op Op, x, y *BitSet) *BitSet {
	n := adaptFor(op, x, y)

	res := &BitSet{opts: x.options().shared()}
	res.words = make([]uint64, n)
	k := copy(res.words, x.words)
	words.Fill(res.words[k:], x.fillWord())
	apply(op, res.words, y)

	res.fill = combineFill(op, x.fill, y.fill)
	res.state = allocated
	res.invalidate()

	res.options().metricsCollector.RecordOp(op, false, n)
	return res
}

// combineInto is the in-place form: only b is mutated.
func (b *BitSet) combineInto(op Op, src *BitSet) {
	n := adaptFor(op, b, src)
	b.Resize(n)
	apply(op, b.words, src)

	b.fill = combineFill(op, b.fill, src.fill)
	b.invalidate()

	b.options().metricsCollector.RecordOp(op, true, len(b.words))
}

// Union returns a new set holding the members of x or y.
func Union(x, y *BitSet) *BitSet {
	return combine(OpUnion, x, y)
}

// Xor returns a new set holding the members of exactly one of x and y.
func Xor(x, y *BitSet) *BitSet {
	return combine(OpXor, x, y)
}

// Intersection returns a new set holding the members of both x and y.
func Intersection(x, y *BitSet) *BitSet {
	return combine(OpIntersection, x, y)
}

// Subtract returns a new set holding the members of x that are not in y.
func Subtract(x, y *BitSet) *BitSet {
	return combine(OpSubtract, x, y)
}

// UnionAll returns the union of sets. The union of no sets is empty.
func UnionAll(sets ...*BitSet) *BitSet {
	if len(sets) == 0 {
		return New()
	}
	res := sets[0].Clone()
	for _, s := range sets[1:] {
		res.UnionWith(s)
	}
	return res
}

// IntersectionAll returns the intersection of sets. The intersection of
// no sets is the full set.
func IntersectionAll(sets ...*BitSet) *BitSet {
	if len(sets) == 0 {
		return Full()
	}
	res := sets[0].Clone()
	for _, s := range sets[1:] {
		res.IntersectWith(s)
	}
	return res
}

// UnionWith adds every member of other to b.
func (b *BitSet) UnionWith(other *BitSet) {
	b.combineInto(OpUnion, other)
}

// XorWith replaces b with the symmetric difference of b and other.
func (b *BitSet) XorWith(other *BitSet) {
	b.combineInto(OpXor, other)
}

// IntersectWith removes from b every element not in other.
func (b *BitSet) IntersectWith(other *BitSet) {
	b.combineInto(OpIntersection, other)
}

// SubtractWith removes from b every member of other.
func (b *BitSet) SubtractWith(other *BitSet) {
	b.combineInto(OpSubtract, other)
}
