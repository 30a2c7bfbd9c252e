// Package words provides word-at-a-time kernels over []uint64 bit arrays.
//
// Binary kernels combine dst with the overlapping prefix of src; callers
// handle any tail beyond len(src) themselves (typically with the *Fill
// variants and the other operand's fill word).
package words
