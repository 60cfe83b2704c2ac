package markup

import "bufio"

// PutFunc receives rendered output one byte at a time.
type PutFunc func(c byte)

// FlushFunc is called once at the end of each top-level emission.
type FlushFunc func()

func discardPut(byte) {}

func discardFlush() {}

// WriterOutput adapts a buffered writer into a sink. bufio.Writer keeps
// the first write error and reports it from Flush; callers that care
// should check it after rendering.
func WriterOutput(w *bufio.Writer) (PutFunc, FlushFunc) {
	put := func(c byte) { _ = w.WriteByte(c) }
	flush := func() { _ = w.Flush() }
	return put, flush
}

// BufferOutput collects output in memory, mostly for tests and for
// rendering markup into a string.
type BufferOutput struct {
	bytes   []byte
	flushes int
}

// Put appends one byte.
func (b *BufferOutput) Put(c byte) { b.bytes = append(b.bytes, c) }

// Flush counts flushes.
func (b *BufferOutput) Flush() { b.flushes++ }

// Bytes returns everything written so far.
func (b *BufferOutput) Bytes() []byte { return b.bytes }

// String returns everything written so far.
func (b *BufferOutput) String() string { return string(b.bytes) }

// Flushes is how many times Flush ran.
func (b *BufferOutput) Flushes() int { return b.flushes }

// Reset drops collected output.
func (b *BufferOutput) Reset() {
	b.bytes = b.bytes[:0]
	b.flushes = 0
}
