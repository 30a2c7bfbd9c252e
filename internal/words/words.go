package words

import "math/bits"

// Full is the word with every bit set.
const Full = ^uint64(0)

// FillWord returns the word pattern for a trailing fill bit.
func FillWord(fill bool) uint64 {
	if fill {
		return Full
	}
	return 0
}

// Fill sets every word of dst to w.
func Fill(dst []uint64, w uint64) {
	for i := range dst {
		dst[i] = w
	}
}

// AndWords performs dst[i] &= src[i] for the common prefix.
func AndWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &= src[i]
	}
}

// AndNotWords performs dst[i] &^= src[i] for the common prefix.
func AndNotWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &^= src[i]
	}
}

// OrWords performs dst[i] |= src[i] for the common prefix.
func OrWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] for the common prefix.
func XorWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// AndFill performs dst[i] &= w for every word.
func AndFill(dst []uint64, w uint64) {
	if w == Full {
		return
	}
	for i := range dst {
		dst[i] &= w
	}
}

// AndNotFill performs dst[i] &^= w for every word.
func AndNotFill(dst []uint64, w uint64) {
	if w == 0 {
		return
	}
	for i := range dst {
		dst[i] &^= w
	}
}

// OrFill performs dst[i] |= w for every word.
func OrFill(dst []uint64, w uint64) {
	if w == 0 {
		return
	}
	for i := range dst {
		dst[i] |= w
	}
}

// XorFill performs dst[i] ^= w for every word.
func XorFill(dst []uint64, w uint64) {
	if w == 0 {
		return
	}
	for i := range dst {
		dst[i] ^= w
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

// TrimLen returns the length of the shortest prefix of words after which
// every remaining word equals w.
func TrimLen(words []uint64, w uint64) int {
	n := len(words)
	for n > 0 && words[n-1] == w {
		n--
	}
	return n
}
