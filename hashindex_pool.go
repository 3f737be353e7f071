package lz77

import "sync"

// hashIndexPool reuses hashIndex backing arrays across Encode calls so a
// long-lived process doesn't allocate a fresh 256KiB table on every
// invocation. Each acquire resets the table to all-absent before handing it
// out, so callers never observe another call's state.
var hashIndexPool = sync.Pool{
	New: func() any {
		return newHashIndex()
	},
}

func acquireHashIndex() *hashIndex {
	idx := hashIndexPool.Get().(*hashIndex)
	idx.reset()
	return idx
}

func releaseHashIndex(idx *hashIndex) {
	if idx == nil {
		return
	}
	hashIndexPool.Put(idx)
}
