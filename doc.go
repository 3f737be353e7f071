/*
Package lz77 implements a byte-oriented LZ77-style dictionary compressor
and its exact inverse decompressor.

The wire format is a concatenation of two block kinds. A header octet with
its high bit clear is a literal block: the low 7 bits are a run length
L ∈ [0,127], followed by L raw octets. A header octet with its high bit set
is a match block: the low 7 bits are a length L ∈ [3,127], followed by a
big-endian uint16 offset D ∈ [1,65534] naming how far back in the output to
copy from. There is no magic number, length prefix, or checksum; the
decoder stops once it has consumed the entire compressed buffer.

# Compress

	out := lz77.Encode(data)

Or, to reuse a caller-provided buffer:

	n, err := lz77.EncodeInto(data, dst)

# Decompress

	out, err := lz77.Decode(compressed, nil)

Pass a DecodeOptions with MaxOutputSize set to bound the reconstructed size
when the stream's origin isn't trusted.
*/
package lz77
