package intbitset

import (
	"strconv"
	"strings"

	"github.com/hupe1980/intbitset/internal/words"
)

// String renders the members, e.g. "{1, 3, 5}". A co-finite set lists
// the members within its significant words followed by "...", so the
// full set renders as "{...}".
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')

	limit := words.TrimLen(b.words, b.fillWord()) * WordBits
	first := true
	sep := func() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
	}

	var buf [20]byte
	b.ForEach(func(e int) bool {
		if e >= limit {
			return false
		}
		sep()
		sb.Write(strconv.AppendInt(buf[:0], int64(e), 10))
		return true
	})
	if b.fill {
		sep()
		sb.WriteString("...")
	}

	sb.WriteByte('}')
	return sb.String()
}

// Strbits renders the bits as '0' and '1' characters, lowest element
// first, up to the last bit that differs from the fill.
func (b *BitSet) Strbits() string {
	n := b.Size() * WordBits
	fw := b.fillWord()
	for n > 0 {
		e := n - 1
		if (b.word(wordIndex(e))&bitMask(e) != 0) != (fw != 0) {
			break
		}
		n--
	}

	out := make([]byte, n)
	for e := 0; e < n; e++ {
		if b.word(wordIndex(e))&bitMask(e) != 0 {
			out[e] = '1'
		} else {
			out[e] = '0'
		}
	}
	return string(out)
}
