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
	"errors"
	"fmt"
)

const (
	// reprLimit bounds field lengths in String output.
	reprLimit = 100
	// snippetLimit bounds offending input quoted in error messages.
	snippetLimit = 500
)

// ErrMissingQualities is returned when qualities are requested from a record
// that does not carry any.
var ErrMissingQualities = errors.New("fastq: record has no qualities")

// FormatError reports malformed FASTQ input. Line is the zero-based line
// number within the stream at which the problem was detected; it renders
// one-based. A negative Line means the error is not tied to a stream position.
type FormatError struct {
	Line    int64
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("fastq: error at line %d: %s", e.Line+1, e.Message)
	}
	return "fastq: " + e.Message
}

// LengthMismatchError reports a record whose qualities length differs from
// its sequence length.
type LengthMismatchError struct {
	Name            string
	SequenceLength  int
	QualitiesLength int
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("fastq: in read named %q: length of qualities (%d) and length of sequence (%d) differ",
		shorten([]byte(e.Name), snippetLimit), e.QualitiesLength, e.SequenceLength)
}

// NonASCIIError reports a non-ASCII byte in a field of a textual record.
type NonASCIIError struct {
	Field string
	Value []byte
}

// Error implements the error interface.
func (e *NonASCIIError) Error() string {
	return fmt.Sprintf("fastq: %s is not ASCII: %q", e.Field, shorten(e.Value, snippetLimit))
}

// shorten elides the middle of b when it exceeds limit bytes.
func shorten(b []byte, limit int) string {
	if len(b) <= limit {
		return string(b)
	}
	head := limit / 2
	tail := limit - head - 1
	return string(b[:head]) + "…" + string(b[len(b)-tail:])
}
