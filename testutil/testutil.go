package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Elements returns n pseudo-random elements in [0, limit), possibly with
// duplicates, in generation order.
func (r *RNG) Elements(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// RunElements returns sorted, distinct elements forming runs dense runs
// of up to runLen consecutive values in [0, limit).
// Dense runs exercise whole-word paths that uniform elements rarely hit.
func (r *RNG) RunElements(runs, runLen, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[int]struct{})
	for i := 0; i < runs; i++ {
		start := r.rand.Intn(limit)
		n := 1 + r.rand.Intn(runLen)
		for e := start; e < start+n && e < limit; e++ {
			seen[e] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ZipfElements returns n elements in [0, limit) skewed towards small
// values, the way record IDs of recent, popular records cluster.
func (r *RNG) ZipfElements(n, limit int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.zipfLocked(limit, s)
	}
	return out
}

// zipfLocked is the internal implementation (caller must hold lock).
// P(k) ∝ 1/k^s, sampled by inverse transform.
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Model is a slow reference set: explicit membership for small elements
// plus a fill value for every element past them.
type Model struct {
	bits []bool
	Fill bool
}

// NewModel creates an empty (fill false) or full (fill true) model.
func NewModel(fill bool) *Model {
	return &Model{Fill: fill}
}

// ModelOf creates a finite model holding elems.
func ModelOf(elems ...int) *Model {
	m := NewModel(false)
	for _, e := range elems {
		m.Add(e)
	}
	return m
}

func (m *Model) extend(n int) {
	for len(m.bits) < n {
		m.bits = append(m.bits, m.Fill)
	}
}

// Contains reports whether e is a member.
func (m *Model) Contains(e int) bool {
	if e < len(m.bits) {
		return m.bits[e]
	}
	return m.Fill
}

// Add inserts e.
func (m *Model) Add(e int) {
	m.extend(e + 1)
	m.bits[e] = true
}

// Delete removes e.
func (m *Model) Delete(e int) {
	m.extend(e + 1)
	m.bits[e] = false
}

// Bound returns the first element past the explicit membership.
func (m *Model) Bound() int {
	return len(m.bits)
}

// Elements returns the members below upTo in ascending order.
func (m *Model) Elements(upTo int) []int {
	var out []int
	for e := 0; e < upTo; e++ {
		if m.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of members of a finite model.
func (m *Model) Len() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

func combineModels(x, y *Model, op func(a, b bool) bool) *Model {
	n := max(len(x.bits), len(y.bits))
	res := &Model{bits: make([]bool, n), Fill: op(x.Fill, y.Fill)}
	for e := 0; e < n; e++ {
		res.bits[e] = op(x.Contains(e), y.Contains(e))
	}
	return res
}

// UnionModel returns x ∪ y.
func UnionModel(x, y *Model) *Model {
	return combineModels(x, y, func(a, b bool) bool { return a || b })
}

// IntersectionModel returns x ∩ y.
func IntersectionModel(x, y *Model) *Model {
	return combineModels(x, y, func(a, b bool) bool { return a && b })
}

// XorModel returns the symmetric difference of x and y.
func XorModel(x, y *Model) *Model {
	return combineModels(x, y, func(a, b bool) bool { return a != b })
}

// SubtractModel returns x \ y.
func SubtractModel(x, y *Model) *Model {
	return combineModels(x, y, func(a, b bool) bool { return a && !b })
}
