package lz77

import "errors"

// Sentinel errors for the codec. Driver-level I/O errors are wrapped
// around these (or around os/io errors) with github.com/pkg/errors in
// cmd/lz77; the codec itself never touches the filesystem.
var (
	// ErrOutputTooSmall is returned by EncodeInto when dst cannot hold the
	// compressed form of src.
	ErrOutputTooSmall = errors.New("lz77: output buffer too small")

	// ErrMalformedStream is returned by Decode when a block header promises
	// more octets than remain in the compressed input, the stream ends
	// mid-block, or a match offset would reach before the start of the
	// output produced so far.
	ErrMalformedStream = errors.New("lz77: malformed compressed stream")

	// ErrBoundsOverflow is returned by Decode when reconstructing the
	// stream would exceed a caller-supplied MaxOutputSize.
	ErrBoundsOverflow = errors.New("lz77: decoded size exceeds bound")
)
