// Package intbitset provides a growable bit-set of non-negative integers.
//
// A BitSet packs members into 64-bit words and carries a trailing fill bit
// that gives the value of every bit past its storage. With the fill bit
// clear the set is finite; with it set the set is co-finite (all integers
// except a finite set), which makes "everything except these records"
// as cheap to hold as "these records".
//
// # Quick Start
//
//	s := intbitset.New()
//	_ = s.AddMany(1, 3, 5)
//	s.Contains(3) // true
//
//	all := intbitset.Full()
//	_ = all.Delete(3)
//	intbitset.Intersection(s, all).String() // "{1, 5}"
//
// # Set Algebra
//
// Union, Xor, Intersection and Subtract return new sets and never modify
// their operands. UnionWith, XorWith, IntersectWith and SubtractWith mutate
// the receiver only; they may grow its storage but never the argument's.
//
// # Counting and Iteration
//
// Len returns ErrInfinite for co-finite sets instead of a number; Last does
// the same since there is no largest member. Next and All walk members in
// ascending order; on a co-finite set they continue up to MaxElement, so
// callers iterating such a set should bound their range.
//
// # Serialization
//
// Bytes / FromBuffer exchange a flat buffer of native-endian words whose
// last word is the fill pattern. Dump / Load and FastDump / FastLoad add
// zlib, zstd or lz4 compression on top. ToRoaring / FromRoaring convert
// finite sets to and from roaring bitmaps.
//
// # Concurrency
//
// A BitSet is not safe for concurrent use; callers must serialize access
// to a set that is shared between goroutines.
package intbitset
