// Copyright (c) 2015 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package binary

import "fmt"

// EndOfInput is returned whenever a read requests more bytes than a
// ReadBuffer has available.
type EndOfInput struct {
	Requested int
	Available int
}

func (e EndOfInput) Error() string {
	return fmt.Sprintf("unexpected end of input: requested %d bytes, %d available", e.Requested, e.Available)
}

// ReadBuffer is a cursor over an immutable byte slice. It never allocates
// or copies on Skip or Read; only Take hands back an owned copy.
type ReadBuffer struct {
	buf    []byte
	offset int
}

// NewReadBuffer wraps buf for sequential reading starting at offset 0.
func NewReadBuffer(buf []byte) *ReadBuffer {
	return &ReadBuffer{buf: buf}
}

// Available reports how many unread bytes remain.
func (r *ReadBuffer) Available() int {
	return len(r.buf) - r.offset
}

// Take returns the next n bytes as a fresh copy, advancing the cursor by n.
func (r *ReadBuffer) Take(n int) ([]byte, error) {
	view, err := r.view(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, view)
	return out, nil
}

// Read returns the next n bytes as a view into the underlying slice,
// advancing the cursor by n. The caller must not retain the view past the
// next mutation of the buffer backing this ReadBuffer.
func (r *ReadBuffer) Read(n int) ([]byte, error) {
	return r.view(n)
}

func (r *ReadBuffer) view(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("binary: negative length %d", n)
	}
	if n > r.Available() {
		return nil, EndOfInput{Requested: n, Available: r.Available()}
	}
	out := r.buf[r.offset : r.offset+n]
	r.offset += n
	return out, nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *ReadBuffer) Skip(n int) error {
	_, err := r.view(n)
	return err
}

// WriteBuffer is a growable byte container. Its zero value is not usable;
// construct one with NewWriteBuffer.
type WriteBuffer struct {
	buf []byte
}

const defaultWriteBufferCapacity = 4096

// NewWriteBuffer allocates a WriteBuffer with the given initial capacity.
// A capacity of 0 uses the default of 4096 bytes.
func NewWriteBuffer(capacity int) *WriteBuffer {
	if capacity <= 0 {
		capacity = defaultWriteBufferCapacity
	}
	return &WriteBuffer{buf: make([]byte, 0, capacity)}
}

// Length returns the number of bytes written so far.
func (w *WriteBuffer) Length() int {
	return len(w.buf)
}

// Value returns the bytes written so far. The returned slice aliases the
// WriteBuffer's internal storage and must be copied before the WriteBuffer
// is reused.
func (w *WriteBuffer) Value() []byte {
	return w.buf
}

// Clear resets the WriteBuffer to empty without releasing its capacity.
func (w *WriteBuffer) Clear() {
	w.buf = w.buf[:0]
}

// Write appends bytes to the buffer, growing it if necessary. Growth
// doubles the current capacity; if doubling still isn't enough to hold the
// new bytes, it grows by exactly the shortfall instead.
func (w *WriteBuffer) Write(p []byte) {
	need := len(w.buf) + len(p)
	if need > cap(w.buf) {
		newCap := cap(w.buf) * 2
		if newCap < need {
			newCap = cap(w.buf) + (need - cap(w.buf))
		}
		grown := make([]byte, len(w.buf), newCap)
		copy(grown, w.buf)
		w.buf = grown
	}
	w.buf = append(w.buf, p...)
}
