package pool

import (
	"io"
	"sync"
)

const (
	TableBufferDefaultSize    = 1024 * 16       // 16KiB, one string table flush
	TableBufferMaxThreshold   = 1024 * 128      // 128KiB
	BundleBufferDefaultSize   = 1024 * 256      // 256KiB
	BundleBufferMaxThreshold  = 1024 * 1024 * 8 // 8MiB
	smallBufferGrowThreshold  = 4 * TableBufferDefaultSize
	largeBufferGrowPercentage = 4 // grow large buffers by 1/4 of their capacity
)

// ByteBuffer is an append-only byte buffer that can be recycled through a
// ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice. Encoders append to it directly.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffered bytes. The slice is only valid until the next
// write or until the buffer is returned to its pool.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, keeping its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int { return len(bb.B) }
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// MustWrite appends data.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Write implements io.Writer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffered bytes to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// Grow ensures room for requiredBytes more bytes without reallocating.
//
// Small buffers grow by TableBufferDefaultSize; larger ones by a quarter of
// their capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := TableBufferDefaultSize
	if cap(bb.B) > smallBufferGrowThreshold {
		growBy = cap(bb.B) / largeBufferGrowPercentage
	}
	growBy = max(growBy, requiredBytes)

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool recycles ByteBuffers. Buffers that grew beyond
// maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial capacity.
// A maxThreshold of zero retains buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool. nil is ignored.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	tablePool  = NewByteBufferPool(TableBufferDefaultSize, TableBufferMaxThreshold)
	bundlePool = NewByteBufferPool(BundleBufferDefaultSize, BundleBufferMaxThreshold)
)

// GetTableBuffer returns a buffer sized for string table encoding.
func GetTableBuffer() *ByteBuffer {
	return tablePool.Get()
}

// PutTableBuffer returns a buffer obtained from GetTableBuffer.
func PutTableBuffer(bb *ByteBuffer) {
	tablePool.Put(bb)
}

// GetBundleBuffer returns a buffer sized for bundle assembly.
func GetBundleBuffer() *ByteBuffer {
	return bundlePool.Get()
}

// PutBundleBuffer returns a buffer obtained from GetBundleBuffer.
func PutBundleBuffer(bb *ByteBuffer) {
	bundlePool.Put(bb)
}
