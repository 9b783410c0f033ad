// Copyright 2025 Scott Friedman
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fastq provides a streaming FASTQ parser, the record value it
// emits, the inverse serializer, and the helpers used to align paired-end
// streams.
//
// # FASTQ Format
//
// Each entry in a FASTQ file consists of exactly four lines:
//  1. Read name, prefixed with '@'
//  2. Sequence bases
//  3. Separator, '+' optionally followed by a repeat of the name
//  4. ASCII-encoded per-base quality scores
//
// Lines may end with '\n' or '\r\n'; a missing final newline is tolerated.
// The quality line must be exactly as long as the sequence line, and a
// non-empty repeat after '+' must equal the name byte for byte.
//
// # Parsing Model
//
// The parser owns a single growable byte buffer. It reads from the
// underlying stream into the buffer's free tail, scans the buffered region
// for four newlines, validates the framing, and copies each field exactly
// once into the emitted record. When a record does not fit in the buffer
// the buffer doubles; it never shrinks. Records own their bytes outright,
// so they remain valid after the parser moves on or is dropped.
//
// A parser instance must be driven from one goroutine at a time. Emitted
// records are immutable and freely shareable.
package fastq

import (
	"bytes"
	"fmt"
	"io"
)

// DefaultBufferSize is the initial parser buffer capacity when
// WithBufferSize is not given.
const DefaultBufferSize = 64 * 1024

// maxEmptyReads bounds consecutive zero-byte, nil-error reads before the
// underlying reader is declared broken.
const maxEmptyReads = 100

// BuildFunc constructs a caller-defined record from the three fields of a
// FASTQ entry. The parser hands it freshly copied slices which the built
// value may keep. Fields have already passed framing and, for textual
// parsers, ASCII validation.
type BuildFunc[R any] func(name, sequence, qualities []byte) (R, error)

// Option configures a parser at construction time.
type Option func(*parserConfig)

type parserConfig struct {
	bufferSize int
}

// WithBufferSize sets the initial buffer capacity in bytes. Values below 1
// are raised to 1. The buffer doubles whenever a single record outgrows it.
func WithBufferSize(n int) Option {
	return func(c *parserConfig) { c.bufferSize = n }
}

// Parser is a streaming FASTQ parser emitting records of type R. Use New,
// NewRaw, or NewWith to construct one.
type Parser[R any] struct {
	r       io.Reader
	build   BuildFunc[R]
	textual bool

	buf   []byte
	start int // start of the region not yet emitted as records
	end   int // end of readable bytes; buf[end:] is free

	count     uint64 // records emitted so far
	eof       bool
	synthetic bool // a final newline was synthesized at EOF
	err       error

	firstSeen   bool
	firstHasHdr bool
	pending     *R // first record, when parsed ahead by FirstRecordHasSecondHeader
}

// New creates a textual parser reading from r. Every emitted record is
// verified to be 7-bit ASCII in a single sweep before its fields are copied
// out of the buffer.
func New(r io.Reader, opts ...Option) *Parser[Record] {
	p := newParser[Record](r, opts)
	p.textual = true
	p.build = buildRecord
	return p
}

// NewRaw creates a parser reading from r that emits records of opaque
// bytes, skipping the ASCII sweep.
func NewRaw(r io.Reader, opts ...Option) *Parser[Record] {
	p := newParser[Record](r, opts)
	p.build = buildRecord
	return p
}

// NewWith creates a textual parser that emits values built by the given
// function instead of Records.
func NewWith[R any](r io.Reader, build BuildFunc[R], opts ...Option) *Parser[R] {
	p := newParser[R](r, opts)
	p.textual = true
	p.build = build
	return p
}

// buildRecord wraps pre-validated fields without re-scanning them.
func buildRecord(name, sequence, qualities []byte) (Record, error) {
	return Record{name: name, sequence: sequence, qualities: qualities}, nil
}

func newParser[R any](r io.Reader, opts []Option) *Parser[R] {
	cfg := parserConfig{bufferSize: DefaultBufferSize}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.bufferSize < 1 {
		cfg.bufferSize = 1
	}
	return &Parser[R]{
		r:   r,
		buf: make([]byte, cfg.bufferSize),
	}
}

// Next returns the next record in the stream, or io.EOF when the stream is
// exhausted. Any other error is fatal: the parser is poisoned and every
// subsequent call returns the same error. Format problems are reported as
// *FormatError; errors from the underlying reader pass through unchanged.
func (p *Parser[R]) Next() (R, error) {
	if p.pending != nil {
		rec := *p.pending
		p.pending = nil
		return rec, nil
	}
	if p.err != nil {
		var zero R
		return zero, p.err
	}
	return p.next()
}

// FirstRecordHasSecondHeader reports whether the first record of the stream
// repeats its name after the '+' separator. Writers use this to preserve
// the input's header convention when rewriting. The first record is parsed
// if it has not been yet; it is still returned by the following Next call.
// On an empty stream the error is io.EOF.
func (p *Parser[R]) FirstRecordHasSecondHeader() (bool, error) {
	if p.firstSeen {
		return p.firstHasHdr, nil
	}
	if p.err != nil {
		return false, p.err
	}
	rec, err := p.next()
	if err != nil {
		return false, err
	}
	p.pending = &rec
	return p.firstHasHdr, nil
}

func (p *Parser[R]) next() (R, error) {
	var zero R
	for {
		rec, ok, err := p.scan()
		if err != nil {
			p.err = err
			return zero, err
		}
		if ok {
			return rec, nil
		}
		if p.eof {
			return zero, io.EOF
		}
		if err := p.fill(); err != nil {
			p.err = err
			return zero, err
		}
	}
}

// scan attempts to extract one complete record from buf[start:end]. It
// reports ok=false when fewer than four newlines are buffered.
func (p *Parser[R]) scan() (R, bool, error) {
	var zero R
	b := p.buf[:p.end]

	nameEnd := nextNewline(b, p.start)
	if nameEnd < 0 {
		return zero, false, nil
	}
	seqEnd := nextNewline(b, nameEnd+1)
	if seqEnd < 0 {
		return zero, false, nil
	}
	hdrEnd := nextNewline(b, seqEnd+1)
	if hdrEnd < 0 {
		return zero, false, nil
	}
	qualEnd := nextNewline(b, hdrEnd+1)
	if qualEnd < 0 {
		return zero, false, nil
	}

	if b[p.start] != '@' {
		return zero, false, &FormatError{
			Line:    p.line(0),
			Message: fmt.Sprintf("line is expected to start with '@', but found %q", shorten(b[p.start:nameEnd], snippetLimit)),
		}
	}
	if b[seqEnd+1] != '+' {
		return zero, false, &FormatError{
			Line:    p.line(2),
			Message: fmt.Sprintf("line is expected to start with '+', but found %q", shorten(b[seqEnd+1:hdrEnd], snippetLimit)),
		}
	}

	name := trimCR(b[p.start+1 : nameEnd])
	sequence := trimCR(b[nameEnd+1 : seqEnd])
	header := trimCR(b[seqEnd+2 : hdrEnd])
	qualities := trimCR(b[hdrEnd+1 : qualEnd])

	// A bare '+' is always accepted; a non-empty repeat must match the name.
	if len(header) > 0 && !bytes.Equal(header, name) {
		return zero, false, &FormatError{
			Line: p.line(2),
			Message: fmt.Sprintf("sequence descriptions don't match (%q != %q)",
				shorten(name, snippetLimit), shorten(header, snippetLimit)),
		}
	}
	if len(qualities) != len(sequence) {
		return zero, false, &FormatError{
			Line: p.line(3),
			Message: fmt.Sprintf("in read named %q: length of qualities (%d) and length of sequence (%d) differ",
				shorten(name, snippetLimit), len(qualities), len(sequence)),
		}
	}
	if p.textual && !IsASCII(b[p.start:qualEnd]) {
		return zero, false, &FormatError{
			Line:    p.line(0),
			Message: fmt.Sprintf("record is not ASCII: %q", shorten(b[p.start:qualEnd], snippetLimit)),
		}
	}

	rec, err := p.build(copyField(name), copyField(sequence), copyField(qualities))
	if err != nil {
		return zero, false, err
	}

	if !p.firstSeen {
		p.firstSeen = true
		p.firstHasHdr = len(header) > 0
	}
	p.start = qualEnd + 1
	p.count++
	return rec, true, nil
}

// fill makes progress on the underlying stream: it compacts or grows the
// buffer, reads into the free tail, and handles end of stream. At EOF a
// missing final newline is synthesized once; leftover bytes that still do
// not form a whole record are a premature end of file.
func (p *Parser[R]) fill() error {
	if p.start == 0 && p.end == len(p.buf) {
		// The in-progress record occupies the whole buffer.
		grown := make([]byte, 2*len(p.buf))
		copy(grown, p.buf)
		p.buf = grown
	} else {
		copy(p.buf, p.buf[p.start:p.end])
		p.end -= p.start
		p.start = 0
	}

	var n int
	var err error
	for retries := 0; ; retries++ {
		n, err = p.r.Read(p.buf[p.end:])
		if n > 0 || err != nil {
			break
		}
		if retries >= maxEmptyReads {
			return io.ErrNoProgress
		}
	}
	p.end += n
	if err != nil && err != io.EOF {
		return err
	}
	if n > 0 {
		return nil
	}

	// End of stream.
	if p.end > p.start && p.buf[p.end-1] != '\n' {
		if p.end == len(p.buf) {
			grown := make([]byte, 2*len(p.buf))
			copy(grown, p.buf)
			p.buf = grown
		}
		p.buf[p.end] = '\n'
		p.end++
		p.synthetic = true
		return nil
	}
	if p.end > p.start {
		line := p.count*4 + uint64(bytes.Count(p.buf[p.start:p.end], []byte{'\n'}))
		if p.synthetic {
			line--
		}
		return &FormatError{
			Line:    int64(line),
			Message: "premature end of stream (the last record is incomplete)",
		}
	}
	p.eof = true
	return nil
}

// line converts an offset within the current record to a stream line number.
func (p *Parser[R]) line(offset uint64) int64 {
	return int64(p.count*4 + offset)
}

func nextNewline(b []byte, from int) int {
	i := bytes.IndexByte(b[from:], '\n')
	if i < 0 {
		return -1
	}
	return from + i
}

// trimCR drops a carriage return immediately preceding the line's newline.
func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}

// copyField copies b into a fresh, never-nil slice.
func copyField(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
