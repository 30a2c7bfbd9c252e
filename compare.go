package intbitset

// Relation is the result of comparing two sets under inclusion.
// Inclusion is a partial order: two sets may be Incomparable.
type Relation int

const (
	Equal Relation = iota
	ProperSubset
	ProperSuperset
	Incomparable
)

func (r Relation) String() string {
	switch r {
	case Equal:
		return "equal"
	case ProperSubset:
		return "proper subset"
	case ProperSuperset:
		return "proper superset"
	default:
		return "incomparable"
	}
}

// Compare reports how x relates to y under inclusion.
func Compare(x, y *BitSet) Relation {
	// The fill words stand for every word past the compared prefix.
	fx, fy := x.fillWord(), y.fillWord()
	sub := fx|fy == fy
	super := fx|fy == fx

	n := adaptMax(x, y)
	for i := 0; i < n && (sub || super); i++ {
		a, b := x.word(i), y.word(i)
		u := a | b
		if u != b {
			sub = false
		}
		if u != a {
			super = false
		}
	}

	switch {
	case sub && super:
		return Equal
	case sub:
		return ProperSubset
	case super:
		return ProperSuperset
	default:
		return Incomparable
	}
}

// Equal reports whether b and other have the same members.
func (b *BitSet) Equal(other *BitSet) bool {
	return Compare(b, other) == Equal
}

// IsSubset reports whether every member of b is in other.
func (b *BitSet) IsSubset(other *BitSet) bool {
	r := Compare(b, other)
	return r == Equal || r == ProperSubset
}

// IsSuperset reports whether every member of other is in b.
func (b *BitSet) IsSuperset(other *BitSet) bool {
	r := Compare(b, other)
	return r == Equal || r == ProperSuperset
}

// IsDisjoint reports whether b and other have no member in common.
func (b *BitSet) IsDisjoint(other *BitSet) bool {
	if b.fill && other.fill {
		return false
	}
	n := adaptMin(b, other)
	for i := 0; i < n; i++ {
		if b.word(i)&other.word(i) != 0 {
			return false
		}
	}
	return true
}
