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

import "bytes"

// idLen returns the length of the ID portion of a read name: the prefix up
// to the first space or tab. The search is bounded by len(name); no
// terminator byte is assumed.
func idLen(name []byte) int {
	for i, c := range name {
		if c == ' ' || c == '\t' {
			return i
		}
	}
	return len(name)
}

// isMateNumber reports whether c is a trailing mate-number digit. Common
// tooling appends /1, /2, .1, .2 and so on to the two reads of a pair.
func isMateNumber(c byte) bool {
	return c == '1' || c == '2' || c == '3'
}

// IDsMatch reports whether two read names refer to the same fragment. The
// IDs (name prefixes up to the first whitespace) must be byte-identical,
// except that a single trailing mate-number digit is ignored when both
// names end their ID with one. Empty IDs match. The comparison operates on
// raw bytes; non-ASCII names are permitted.
func IDsMatch(name1, name2 []byte) bool {
	n2 := idLen(name2)
	if len(name1) < n2 {
		return false
	}
	if n2 < len(name1) {
		// name1's ID must not extend beyond name2's.
		if c := name1[n2]; c != ' ' && c != '\t' {
			return false
		}
	}
	k := n2
	if k > 0 && isMateNumber(name1[k-1]) && isMateNumber(name2[k-1]) {
		k--
	}
	return bytes.Equal(name1[:k], name2[:k])
}
