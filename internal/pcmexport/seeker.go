// SPDX-License-Identifier: EPL-2.0

package pcmexport

import (
	"fmt"
	"io"
)

// WithSeeker calls fn with w when it can seek. Otherwise fn gets an
// in-memory buffer whose contents are copied to w once fn succeeds. Both
// encoders patch their headers with Seek when they close.
func WithSeeker(w io.Writer, fn func(io.WriteSeeker) error) error {
	if ws, ok := w.(io.WriteSeeker); ok {
		if _, err := ws.Seek(0, io.SeekCurrent); err == nil {
			return fn(ws)
		}
	}

	buf := &seekBuffer{}
	if err := fn(buf); err != nil {
		return err
	}

	if _, err := w.Write(buf.data); err != nil {
		return fmt.Errorf("copying buffered output: %w", err)
	}

	return nil
}

// seekBuffer implements io.WriteSeeker for in-memory data
type seekBuffer struct {
	data   []byte
	offset int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	copy(b.data[b.offset:], p)
	b.offset = end

	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = b.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	b.offset = newOffset
	return newOffset, nil
}
