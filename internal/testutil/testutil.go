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

// Package testutil provides testing utilities for Katydid.
package testutil

import (
	"strings"
	"testing"

	"github.com/scttfrdmn/katydid/fastq"
)

// MustRecord builds a textual record and fails the test on error.
func MustRecord(t *testing.T, name, sequence, qualities string) fastq.Record {
	t.Helper()

	rec, err := fastq.NewRecord([]byte(name), []byte(sequence), []byte(qualities))
	if err != nil {
		t.Fatalf("failed to build record: %v", err)
	}
	return rec
}

// Stream serializes records into one FASTQ stream.
func Stream(t *testing.T, twoHeaders bool, records ...fastq.Record) string {
	t.Helper()

	var sb strings.Builder
	for _, rec := range records {
		b, err := rec.FastqBytes(twoHeaders)
		if err != nil {
			t.Fatalf("failed to serialize record %v: %v", rec, err)
		}
		sb.Write(b)
	}
	return sb.String()
}
