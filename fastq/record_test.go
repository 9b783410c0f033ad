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
	"errors"
	"strings"
	"testing"
)

func mustRecord(t *testing.T, name, sequence, qualities string) Record {
	t.Helper()
	rec, err := NewRecord([]byte(name), []byte(sequence), []byte(qualities))
	if err != nil {
		t.Fatalf("NewRecord(%q, %q, %q) error = %v", name, sequence, qualities, err)
	}
	return rec
}

func TestNewRecord(t *testing.T) {
	rec := mustRecord(t, "read1 some comment", "ACGT", "IIII")

	if got := string(rec.Name()); got != "read1 some comment" {
		t.Errorf("Name() = %q, want %q", got, "read1 some comment")
	}
	if got := string(rec.Sequence()); got != "ACGT" {
		t.Errorf("Sequence() = %q, want %q", got, "ACGT")
	}
	if rec.Len() != 4 {
		t.Errorf("Len() = %d, want 4", rec.Len())
	}
	if !rec.HasQualities() {
		t.Error("HasQualities() = false, want true")
	}
	qual, err := rec.QualitiesBytes()
	if err != nil {
		t.Fatalf("QualitiesBytes() error = %v", err)
	}
	if string(qual) != "IIII" {
		t.Errorf("QualitiesBytes() = %q, want %q", qual, "IIII")
	}
	if got := string(rec.ID()); got != "read1" {
		t.Errorf("ID() = %q, want %q", got, "read1")
	}
	if got := string(rec.Comment()); got != "some comment" {
		t.Errorf("Comment() = %q, want %q", got, "some comment")
	}
}

func TestNewRecordErrors(t *testing.T) {
	tests := []struct {
		name      string
		readName  string
		sequence  string
		qualities []byte
		check     func(error) bool
	}{
		{
			name:      "length mismatch",
			readName:  "r",
			sequence:  "ACGT",
			qualities: []byte("II"),
			check: func(err error) bool {
				var e *LengthMismatchError
				return errors.As(err, &e) && e.SequenceLength == 4 && e.QualitiesLength == 2
			},
		},
		{
			name:      "newline in name",
			readName:  "bad\nname",
			sequence:  "A",
			qualities: []byte("I"),
			check: func(err error) bool {
				var e *FormatError
				return errors.As(err, &e) && e.Line < 0
			},
		},
		{
			name:      "carriage return in name",
			readName:  "bad\rname",
			sequence:  "A",
			qualities: []byte("I"),
			check: func(err error) bool {
				var e *FormatError
				return errors.As(err, &e)
			},
		},
		{
			name:      "non-ascii sequence",
			readName:  "r",
			sequence:  "AC\xc3\xa9T",
			qualities: []byte("IIIII"),
			check: func(err error) bool {
				var e *NonASCIIError
				return errors.As(err, &e) && e.Field == "sequence"
			},
		},
		{
			name:      "non-ascii name",
			readName:  "r\xff",
			sequence:  "A",
			qualities: []byte("I"),
			check: func(err error) bool {
				var e *NonASCIIError
				return errors.As(err, &e) && e.Field == "name"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord([]byte(tt.readName), []byte(tt.sequence), tt.qualities)
			if err == nil {
				t.Fatal("NewRecord() error = nil, want error")
			}
			if !tt.check(err) {
				t.Errorf("NewRecord() error = %v, wrong kind or fields", err)
			}
		})
	}
}

func TestNewRawRecordAcceptsNonASCII(t *testing.T) {
	rec, err := NewRawRecord([]byte("r\xff"), []byte("\x80\x81"), []byte{0, 1})
	if err != nil {
		t.Fatalf("NewRawRecord() error = %v", err)
	}
	if rec.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rec.Len())
	}
}

func TestRecordWithoutQualities(t *testing.T) {
	rec, err := NewRecord([]byte("r"), []byte("ACGT"), nil)
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	if rec.HasQualities() {
		t.Error("HasQualities() = true, want false")
	}
	if _, err := rec.QualitiesBytes(); err != ErrMissingQualities {
		t.Errorf("QualitiesBytes() error = %v, want ErrMissingQualities", err)
	}
	if _, err := rec.FastqBytes(false); err != ErrMissingQualities {
		t.Errorf("FastqBytes() error = %v, want ErrMissingQualities", err)
	}
}

func TestRecordSlice(t *testing.T) {
	rec := mustRecord(t, "r comment", "ACGTACGT", "IJKLMNOP")

	s := rec.Slice(2, 5)
	if got := string(s.Sequence()); got != "GTA" {
		t.Errorf("Slice(2, 5).Sequence() = %q, want %q", got, "GTA")
	}
	qual, err := s.QualitiesBytes()
	if err != nil {
		t.Fatalf("QualitiesBytes() error = %v", err)
	}
	if string(qual) != "KLM" {
		t.Errorf("Slice(2, 5) qualities = %q, want %q", qual, "KLM")
	}
	if got := string(s.Name()); got != "r comment" {
		t.Errorf("Slice(2, 5).Name() = %q, want unchanged %q", got, "r comment")
	}

	// Slicing a record without qualities slices the sequence only.
	noQual, err := NewRecord([]byte("r"), []byte("ACGT"), nil)
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	if s := noQual.Slice(0, 2); s.HasQualities() {
		t.Error("Slice() of record without qualities has qualities")
	}
}

func TestRecordEqual(t *testing.T) {
	a := mustRecord(t, "r", "ACGT", "IIII")
	b := mustRecord(t, "r", "ACGT", "IIII")
	c := mustRecord(t, "r", "ACGT", "JJJJ")
	noQual, err := NewRecord([]byte("r"), []byte("ACGT"), nil)
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}

	if !a.Equal(b) {
		t.Error("identical records are not Equal")
	}
	if a.Equal(c) {
		t.Error("records with differing qualities are Equal")
	}
	if a.Equal(noQual) {
		t.Error("record with qualities equals record without")
	}
}

func TestRecordIsMate(t *testing.T) {
	r1 := mustRecord(t, "read/1 len=4", "ACGT", "IIII")
	r2 := mustRecord(t, "read/2", "TGCA", "IIII")
	other := mustRecord(t, "other/2", "TGCA", "IIII")

	if !r1.IsMate(r2) {
		t.Error("IsMate() = false for mated reads")
	}
	if r1.IsMate(other) {
		t.Error("IsMate() = true for unrelated reads")
	}
}

func TestRecordSetters(t *testing.T) {
	rec := mustRecord(t, "r", "ACGT", "IIII")

	if err := rec.SetName([]byte("renamed")); err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	if got := string(rec.Name()); got != "renamed" {
		t.Errorf("Name() = %q after SetName, want %q", got, "renamed")
	}
	if err := rec.SetName([]byte("bad\nname")); err == nil {
		t.Error("SetName() with newline: error = nil, want error")
	}
	if err := rec.SetSequence([]byte("AC")); err == nil {
		t.Error("SetSequence() shorter than qualities: error = nil, want error")
	}
	if err := rec.SetQualities([]byte("JJJJ")); err != nil {
		t.Fatalf("SetQualities() error = %v", err)
	}
	if err := rec.SetQualities([]byte("J")); err == nil {
		t.Error("SetQualities() with wrong length: error = nil, want error")
	}
	if err := rec.SetQualities(nil); err != nil {
		t.Fatalf("SetQualities(nil) error = %v", err)
	}
	if rec.HasQualities() {
		t.Error("HasQualities() = true after SetQualities(nil)")
	}
	if err := rec.SetSequence([]byte("AC")); err != nil {
		t.Fatalf("SetSequence() without qualities: error = %v", err)
	}
}

func TestRecordString(t *testing.T) {
	rec := mustRecord(t, "r", "ACGT", "IIII")
	s := rec.String()
	for _, want := range []string{"r", "ACGT", "IIII"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}

	long := mustRecord(t, "r", strings.Repeat("A", 300), strings.Repeat("I", 300))
	s = long.String()
	if strings.Contains(s, strings.Repeat("A", 150)) {
		t.Errorf("String() does not elide a 300-byte field: %q", s)
	}
	if !strings.Contains(s, "…") {
		t.Errorf("String() = %q, missing elision marker", s)
	}
}

func TestFastqBytes(t *testing.T) {
	rec := mustRecord(t, "read1 comment", "ACGT", "IHGF")

	tests := []struct {
		name       string
		twoHeaders bool
		want       string
	}{
		{"single header", false, "@read1 comment\nACGT\n+\nIHGF\n"},
		{"two headers", true, "@read1 comment\nACGT\n+read1 comment\nIHGF\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rec.FastqBytes(tt.twoHeaders)
			if err != nil {
				t.Fatalf("FastqBytes(%v) error = %v", tt.twoHeaders, err)
			}
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("FastqBytes(%v) = %q, want %q", tt.twoHeaders, got, tt.want)
			}
			if len(got) != cap(got) {
				t.Errorf("FastqBytes(%v) buffer len %d != cap %d, want exact-size allocation", tt.twoHeaders, len(got), cap(got))
			}
		})
	}
}

func TestFastqBytesEmptySequence(t *testing.T) {
	rec := mustRecord(t, "r", "", "")
	got, err := rec.FastqBytes(false)
	if err != nil {
		t.Fatalf("FastqBytes() error = %v", err)
	}
	if string(got) != "@r\n\n+\n\n" {
		t.Errorf("FastqBytes() = %q, want %q", got, "@r\n\n+\n\n")
	}
}
