// SPDX-License-Identifier: EPL-2.0

package dda

import (
	"errors"
	"fmt"
	"io"
)

// cursor reads fixed-size blocks from the log.
type cursor struct {
	r   io.Reader
	buf []byte
	pos int64 // absolute offset of the next unread byte

	// trailing is the length of the short read that ended the stream
	trailing int
}

func newCursor(r io.Reader) *cursor {
	return &cursor{
		r:   r,
		buf: make([]byte, ExtendedSize),
	}
}

// seek positions the cursor at the absolute offset. Seekable readers are
// bounds checked against their size; other readers have offset bytes
// discarded.
func (c *cursor) seek(offset int64) error {
	if offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrSeekOutOfRange, offset)
	}

	if s, ok := c.r.(io.Seeker); ok {
		size, err := s.Seek(0, io.SeekEnd)
		if err == nil {
			if offset > size {
				return fmt.Errorf("%w: offset %d, size %d", ErrSeekOutOfRange, offset, size)
			}
			if _, err := s.Seek(offset, io.SeekStart); err != nil {
				return fmt.Errorf("%w: %w", ErrIO, err)
			}
			c.pos = offset
			return nil
		}
		// not actually seekable (pipe, terminal): fall through to discard
	}

	n, err := io.CopyN(io.Discard, c.r, offset)
	c.pos = n
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: offset %d, size %d", ErrSeekOutOfRange, offset, n)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

// readExact returns the next n bytes. The slice is only valid until the next
// call. Fewer than n remaining bytes, including none, is reported as io.EOF.
func (c *cursor) readExact(n int) ([]byte, error) {
	if cap(c.buf) < n {
		c.buf = make([]byte, n)
	}
	b := c.buf[:n]

	got, err := io.ReadFull(c.r, b)
	c.pos += int64(got)

	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		c.trailing = got
		return nil, io.EOF
	default:
		return nil, fmt.Errorf("%w at offset %d: %w", ErrIO, c.pos, err)
	}
}
