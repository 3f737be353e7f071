package lz77

// Frame format constants: block header bit layout and length/offset bounds.
//
// A literal block header has its high bit clear and its low 7 bits carry
// the run length. A match block header has its high bit set; its low 7
// bits carry the match length and it is followed by a big-endian uint16
// offset.
const (
	matchFlag = 0x80 // high bit of a header octet marks a match block
	lenMask   = 0x7f // low 7 bits of a header octet carry the length

	maxLiteralLen = 127 // literal blocks are capped so headers stay < matchFlag

	minMatchLen = 3     // matches shorter than this are not profitable
	maxMatchLen = 127   // bounded by the 7-bit length field
	maxOffset   = 65534 // 1..maxOffset fits in 16 bits with D==65535 excluded
)

// hashSize is the fixed capacity of the hash index: one entry per possible
// 16-bit fingerprint, direct-addressed, no chaining. Collision behavior is
// part of the algorithm's byte-exact output and must not be changed for a
// general-purpose map.
const hashSize = 1 << 16
