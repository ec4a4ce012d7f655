package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds buffers used to encode event payloads.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
