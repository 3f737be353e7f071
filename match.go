package lz77

// findMatch reports the length and offset of a back-reference candidate at
// input position i, consulting the most recent prior position recorded for
// fp(i) in idx. Length 1 means "no usable match", not an error; callers
// decide profitability from the length.
//
// Because fingerprints collide (3 octets of context hashed into a 16-bit
// table), the head-octet equality check below is mandatory: idx never
// searches a secondary chain, so whatever the table's single bucket holds
// is accepted or rejected outright.
func findMatch(idx *hashIndex, input []byte, i int) (length, offset int) {
	p := int(idx.table[fingerprint(input, i)])
	d := i - p

	if p == 0 || d <= 0 || d >= hashSize-1 || input[i-d] != input[i] {
		return 1, d
	}

	n := len(input)
	length = 1
	for i+length < n && input[i-d+length] == input[i+length] && length < maxMatchLen {
		length++
	}

	return length, d
}
