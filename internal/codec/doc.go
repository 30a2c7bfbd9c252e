// Package codec compresses and decompresses serialized bit-set buffers.
//
// Supported algorithms:
//   - Zlib: klauspost/compress/zlib, stream format (compatible with any zlib reader)
//   - Zstd: klauspost/compress/zstd, pooled encoders/decoders
//   - LZ4:  pierrec/lz4 block format behind an 8-byte size header
package codec
