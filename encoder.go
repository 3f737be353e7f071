package lz77

// EncodedSize returns the exact length Encode(src) would produce, without
// materializing the compressed bytes. It runs the identical match-finding
// and block-accounting loop as EncodeInto, just without writing.
func EncodedSize(src []byte) int {
	n, _ := runEncode(src, nil)
	return n
}

// Encode compresses src and returns a newly allocated buffer holding the
// exact compressed form.
func Encode(src []byte) []byte {
	dst := make([]byte, EncodedSize(src))
	n, err := EncodeInto(src, dst)
	if err != nil {
		// dst was sized by EncodedSize for this exact src; EncodeInto can
		// only fail on undersized output.
		panic("lz77: EncodeInto failed against an exactly-sized buffer: " + err.Error())
	}
	return dst[:n]
}

// EncodeInto compresses src into dst and returns the number of bytes
// written. It returns ErrOutputTooSmall without partially writing past
// dst's capacity if dst cannot hold the compressed form.
func EncodeInto(src, dst []byte) (int, error) {
	return runEncode(src, dst)
}

// runEncode is the single-pass greedy encoder shared by EncodedSize (dst
// == nil, "measure" mode) and EncodeInto (dst != nil, "materialize" mode).
//
// The loop, flush condition, and the literalCount == 0 emission guard are
// the algorithm's core contract and must not be restructured: changing any
// of them changes the compressed bytes produced for the same input.
func runEncode(src, dst []byte) (int, error) {
	n := len(src)
	idx := acquireHashIndex()
	defer releaseHashIndex(idx)

	cursor := 0
	literalCount := 0

	for i := 0; i <= n; {
		length := 1
		offset := 0
		if i+2 < n {
			length, offset = findMatch(idx, src, i)
		}

		// Flush pending literals before a long-enough match, or at the
		// terminal iteration (i == n) so nothing is left unwritten.
		if length > 3 || i == n {
			for literalCount > 0 {
				max := literalCount
				if max > maxLiteralLen {
					max = maxLiteralLen
				}
				literalCount -= max
				start := i - literalCount - max

				var err error
				cursor, err = emitLiteral(dst, cursor, src[start:start+max])
				if err != nil {
					return 0, err
				}
			}
		}

		// A match is only emitted once any preceding literal run has been
		// flushed; a match exactly at the length==3 threshold with
		// literals still pending is folded into the literal run instead
		// of splitting that run around a borderline match, so this guard
		// reads literalCount == 0, not length > 3 alone.
		if length > 2 && literalCount == 0 {
			var err error
			cursor, err = emitMatch(dst, cursor, length, offset)
			if err != nil {
				return 0, err
			}
		} else {
			literalCount += length
		}

		for k := 0; k < length; k++ {
			idx.update(src, i)
			i++
		}
	}

	return cursor, nil
}

// emitLiteral writes one literal block (header + raw octets) at dst[cursor:]
// when dst is non-nil, or just advances the accounting when dst is nil
// (measure mode). lit must have length <= maxLiteralLen.
func emitLiteral(dst []byte, cursor int, lit []byte) (int, error) {
	need := cursor + 1 + len(lit)
	if dst == nil {
		return need, nil
	}
	if need > len(dst) {
		return 0, ErrOutputTooSmall
	}

	dst[cursor] = byte(len(lit))
	copy(dst[cursor+1:need], lit)
	return need, nil
}

// emitMatch writes one match block (header + big-endian offset) at
// dst[cursor:] when dst is non-nil, or just advances the accounting when
// dst is nil (measure mode).
func emitMatch(dst []byte, cursor, length, offset int) (int, error) {
	need := cursor + 3
	if dst == nil {
		return need, nil
	}
	if need > len(dst) {
		return 0, ErrOutputTooSmall
	}

	dst[cursor] = matchFlag | byte(length&lenMask)
	dst[cursor+1] = byte(offset >> 8)
	dst[cursor+2] = byte(offset)
	return need, nil
}
