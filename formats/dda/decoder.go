// SPDX-License-Identifier: EPL-2.0

package dda

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ik5/ddalog/telemetry"
)

// DefaultOffset is where the record area begins in a standard log.
const DefaultOffset = 1494

// Option configures a Decoder.
type Option func(*Decoder)

// WithOffset overrides the start of the record area.
func WithOffset(offset int64) Option {
	return func(d *Decoder) {
		d.offset = offset
		d.hasOffset = true
	}
}

// WithLogger sets the logger that receives decode progress. The default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// Decoder opens data logger dumps. The zero value uses DefaultOffset.
type Decoder struct {
	offset    int64
	hasOffset bool
	logger    *slog.Logger
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode implements telemetry.Decoder.
func (d Decoder) Decode(r io.Reader) (telemetry.Source, error) {
	src, err := d.Open(r)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Open positions r at the record area and returns a Source over it. Samples
// are decoded lazily as they are read.
func (d Decoder) Open(r io.Reader) (*Source, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	offset := int64(DefaultOffset)
	if d.hasOffset {
		offset = d.offset
	}

	logger := d.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cur := newCursor(r)
	if err := cur.seek(offset); err != nil {
		return nil, err
	}

	logger.Debug("record area located", slog.Int64("offset", offset))

	return &Source{
		cur:    cur,
		logger: logger,
		next:   SubSamples,
	}, nil
}

// Source is the lazy sample stream of one log. It is single pass and not
// safe for concurrent use.
type Source struct {
	cur    *cursor
	exp    Expander
	logger *slog.Logger

	pending [SubSamples]telemetry.Sample
	next    int // index of the next unread pending sample

	err error // sticky; io.EOF once the log is exhausted
}

func (s *Source) SampleRate() int { return SampleRate }

// Records is the number of records decoded so far.
func (s *Source) Records() int { return s.exp.Index() }

// TrailingBytes is the size of the incomplete record that ended the log.
func (s *Source) TrailingBytes() int { return s.cur.trailing }

// Close stops the stream. It does not close the underlying reader.
func (s *Source) Close() error {
	if s.err == nil {
		s.err = io.EOF
	}
	s.next = SubSamples
	return nil
}

func (s *Source) ReadSamples(dst []telemetry.Sample) (int, error) {
	n := 0

	for n < len(dst) {
		if s.next == SubSamples {
			if s.err != nil {
				break
			}
			if err := s.fill(); err != nil {
				s.err = err
				break
			}
		}

		c := copy(dst[n:], s.pending[s.next:])
		n += c
		s.next += c
	}

	if n > 0 || len(dst) == 0 {
		return n, nil
	}
	return 0, s.err
}

// fill decodes the next record into pending.
func (s *Source) fill() error {
	kind, size := Frame(s.exp.Index())

	block, err := s.cur.readExact(size)
	if errors.Is(err, io.EOF) {
		s.logEnd(kind, size)
		return io.EOF
	}
	if err != nil {
		return err
	}

	rec, err := DecodeRecord(block, kind)
	if err != nil {
		return err
	}

	if kind == Extended {
		s.logger.Debug("extended record",
			slog.Int("record", s.exp.Index()),
			slog.Int("engine_temperature", int(rec.Temp)-tempOffset),
			slog.Int("distance", int(rec.Distance)),
			slog.Int("lap", int(rec.Lap)))
	}

	s.pending = s.exp.Expand(rec)
	s.next = 0

	return nil
}

func (s *Source) logEnd(kind Kind, size int) {
	if s.cur.trailing > 0 {
		s.logger.Warn("dropping incomplete trailing record",
			slog.Int("record", s.exp.Index()),
			slog.String("kind", kind.String()),
			slog.Int("want_bytes", size),
			slog.Int("got_bytes", s.cur.trailing))
	}

	s.logger.Debug("end of log",
		slog.Int("records", s.exp.Index()),
		slog.Int("samples", s.exp.Index()*SubSamples),
		slog.Int64("offset", s.cur.pos))
}
