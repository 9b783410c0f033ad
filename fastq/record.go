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

package fastq

import (
	"bytes"
	"fmt"
)

// Record is one FASTQ entry: a read name, a sequence, and usually a string
// of per-base quality scores. A record owns its fields outright; nothing
// aliases the parser buffer it was extracted from. Records are immutable
// except through the validating setters, so they are safe to share between
// goroutines once constructed.
//
// Qualities may be absent (for example on a record assembled by hand from a
// FASTA source); records produced by the parser always carry them, possibly
// empty.
type Record struct {
	name      []byte
	sequence  []byte
	qualities []byte // nil when absent
}

// NewRecord builds a textual record. All fields must be 7-bit ASCII, the
// name must not contain a line terminator, and qualities, when non-nil,
// must be exactly as long as the sequence. The record takes ownership of
// the given slices.
func NewRecord(name, sequence, qualities []byte) (Record, error) {
	r, err := NewRawRecord(name, sequence, qualities)
	if err != nil {
		return Record{}, err
	}
	switch {
	case !IsASCII(name):
		return Record{}, &NonASCIIError{Field: "name", Value: name}
	case !IsASCII(sequence):
		return Record{}, &NonASCIIError{Field: "sequence", Value: sequence}
	case qualities != nil && !IsASCII(qualities):
		return Record{}, &NonASCIIError{Field: "qualities", Value: qualities}
	}
	return r, nil
}

// NewRawRecord builds a record of opaque bytes. The name must not contain a
// line terminator and qualities, when non-nil, must be exactly as long as
// the sequence. The record takes ownership of the given slices.
func NewRawRecord(name, sequence, qualities []byte) (Record, error) {
	if err := checkName(name); err != nil {
		return Record{}, err
	}
	if qualities != nil && len(qualities) != len(sequence) {
		return Record{}, &LengthMismatchError{
			Name:            string(name),
			SequenceLength:  len(sequence),
			QualitiesLength: len(qualities),
		}
	}
	return Record{name: name, sequence: sequence, qualities: qualities}, nil
}

// checkName rejects names that could not survive a serialization round trip.
func checkName(name []byte) error {
	if bytes.IndexAny(name, "\n\r") >= 0 {
		return &FormatError{
			Line:    -1,
			Message: fmt.Sprintf("name %q contains a line terminator", shorten(name, snippetLimit)),
		}
	}
	return nil
}

// Name returns the read name. The caller must not modify the returned slice.
func (r Record) Name() []byte { return r.name }

// Sequence returns the read sequence. The caller must not modify the
// returned slice.
func (r Record) Sequence() []byte { return r.sequence }

// Len returns the length of the sequence.
func (r Record) Len() int { return len(r.sequence) }

// HasQualities reports whether the record carries quality values.
func (r Record) HasQualities() bool { return r.qualities != nil }

// QualitiesBytes returns the quality values, or ErrMissingQualities when the
// record carries none. The caller must not modify the returned slice.
func (r Record) QualitiesBytes() ([]byte, error) {
	if r.qualities == nil {
		return nil, ErrMissingQualities
	}
	return r.qualities, nil
}

// ID returns the prefix of the name up to the first space or tab. This is
// the portion of the name that identifies the fragment a read came from.
func (r Record) ID() []byte { return r.name[:idLen(r.name)] }

// Comment returns the portion of the name following the first space or tab,
// or nil when the name has no comment.
func (r Record) Comment() []byte {
	n := idLen(r.name)
	if n == len(r.name) {
		return nil
	}
	return r.name[n+1:]
}

// Slice returns a new record holding sequence[start:end] and, when present,
// qualities[start:end]. The name is carried unchanged. The usual half-open
// slice rules apply, including panics on out-of-range indices.
func (r Record) Slice(start, end int) Record {
	s := Record{name: r.name, sequence: r.sequence[start:end]}
	if r.qualities != nil {
		s.qualities = r.qualities[start:end]
	}
	return s
}

// Equal reports structural equality over name, sequence, and qualities.
// A record with qualities never equals one without.
func (r Record) Equal(other Record) bool {
	if (r.qualities == nil) != (other.qualities == nil) {
		return false
	}
	return bytes.Equal(r.name, other.name) &&
		bytes.Equal(r.sequence, other.sequence) &&
		bytes.Equal(r.qualities, other.qualities)
}

// IsMate reports whether r and other are the two reads of one pair,
// judged by their names via IDsMatch.
func (r Record) IsMate(other Record) bool {
	return IDsMatch(r.name, other.name)
}

// SetName replaces the name, re-validating that it contains no line
// terminator. The record takes ownership of the slice.
func (r *Record) SetName(name []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	r.name = name
	return nil
}

// SetSequence replaces the sequence. When the record carries qualities the
// new sequence must have the same length.
func (r *Record) SetSequence(sequence []byte) error {
	if r.qualities != nil && len(sequence) != len(r.qualities) {
		return &LengthMismatchError{
			Name:            string(r.name),
			SequenceLength:  len(sequence),
			QualitiesLength: len(r.qualities),
		}
	}
	r.sequence = sequence
	return nil
}

// SetQualities replaces the qualities. A non-nil value must be exactly as
// long as the sequence; nil removes the qualities.
func (r *Record) SetQualities(qualities []byte) error {
	if qualities != nil && len(qualities) != len(r.sequence) {
		return &LengthMismatchError{
			Name:            string(r.name),
			SequenceLength:  len(r.sequence),
			QualitiesLength: len(qualities),
		}
	}
	r.qualities = qualities
	return nil
}

// String returns a human-readable dump of the record. Fields longer than
// about a hundred bytes are elided in the middle.
func (r Record) String() string {
	if r.qualities == nil {
		return fmt.Sprintf("Record(name=%q, sequence=%q)",
			shorten(r.name, reprLimit), shorten(r.sequence, reprLimit))
	}
	return fmt.Sprintf("Record(name=%q, sequence=%q, qualities=%q)",
		shorten(r.name, reprLimit), shorten(r.sequence, reprLimit), shorten(r.qualities, reprLimit))
}
