package lz77

// DecodeOptions configures decompression.
type DecodeOptions struct {
	// MaxOutputSize bounds the reconstructed size. The compressed stream
	// carries no length prefix, so without a bound a malformed or
	// adversarial stream could grow the output buffer without limit.
	// Zero means no bound: the output buffer grows on demand to whatever
	// size the stream requires.
	MaxOutputSize int
}
