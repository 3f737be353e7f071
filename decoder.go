package lz77

// Decode reconstructs the original octets from a compressed stream
// produced by Encode/EncodeInto. opts may be nil, equivalent to
// &DecodeOptions{} (no output bound).
//
// Decode returns ErrMalformedStream if a block header promises more
// octets than remain in compressed, the stream ends mid-block, or a match
// offset would reach before the start of the output produced so far. It
// returns ErrBoundsOverflow if reconstructing the stream would exceed
// opts.MaxOutputSize.
func Decode(compressed []byte, opts *DecodeOptions) ([]byte, error) {
	if opts == nil {
		opts = &DecodeOptions{}
	}
	maxSize := opts.MaxOutputSize

	n := len(compressed)
	initCap := n * 2
	if initCap == 0 {
		initCap = 16
	}
	if maxSize > 0 && initCap > maxSize {
		initCap = maxSize
	}
	buf := make([]byte, 0, initCap)

	inPos, outPos := 0, 0
	for inPos < n {
		header := compressed[inPos]
		inPos++
		length := int(header & lenMask)

		if header&matchFlag != 0 {
			if inPos+2 > n {
				return nil, ErrMalformedStream
			}
			offset := int(compressed[inPos])<<8 | int(compressed[inPos+1])
			inPos += 2

			grown, err := growOutput(buf, outPos+length, maxSize)
			if err != nil {
				return nil, err
			}
			buf = grown

			if err := copyBackRef(buf, outPos, offset, length); err != nil {
				return nil, err
			}
			outPos += length
			continue
		}

		if inPos+length > n {
			return nil, ErrMalformedStream
		}

		grown, err := growOutput(buf, outPos+length, maxSize)
		if err != nil {
			return nil, err
		}
		buf = grown

		copy(buf[outPos:outPos+length], compressed[inPos:inPos+length])
		inPos += length
		outPos += length
	}

	return buf[:outPos], nil
}

// growOutput returns a slice with length at least need, reusing buf's
// backing array when its capacity already covers need and doubling
// capacity otherwise. Existing contents are preserved. If maxSize is
// positive and need exceeds it, returns ErrBoundsOverflow instead of
// growing.
func growOutput(buf []byte, need, maxSize int) ([]byte, error) {
	if maxSize > 0 && need > maxSize {
		return nil, ErrBoundsOverflow
	}
	if need <= len(buf) {
		return buf, nil
	}
	if need <= cap(buf) {
		return buf[:need], nil
	}

	newCap := cap(buf) * 2
	if newCap < need {
		newCap = need
	}
	if maxSize > 0 && newCap > maxSize {
		newCap = maxSize
	}

	grown := make([]byte, need, newCap)
	copy(grown, buf)
	return grown, nil
}
