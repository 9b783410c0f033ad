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
	"strings"
	"testing"
)

func TestIsASCII(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{"empty", []byte{}, true},
		{"nil", nil, true},
		{"plain", []byte("ACGT"), true},
		{"boundary 127", []byte{127}, true},
		{"boundary 128", []byte{128}, false},
		{"long ascii", []byte(strings.Repeat("GATTACA!", 100)), true},
		{"high bit in word chunk", append(bytes.Repeat([]byte{'A'}, 16), 0xc3), false},
		{"high bit mid chunk", append(append(bytes.Repeat([]byte{'A'}, 3), 0xff), bytes.Repeat([]byte{'A'}, 12)...), false},
		{"seven bytes", []byte("ACGTACG"), true},
		{"seven bytes high", []byte{'A', 'C', 'G', 0x80, 'A', 'C', 'G'}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCII(tt.input); got != tt.want {
				t.Errorf("IsASCII(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
