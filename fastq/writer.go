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

// FastqBytes serializes the record in FASTQ wire format:
//
//	@name\n
//	sequence\n
//	+[name]\n
//	qualities\n
//
// The name is repeated after the '+' when twoHeaders is true. The result is
// written into a single exactly-sized buffer. Records without qualities
// return ErrMissingQualities.
func (r Record) FastqBytes(twoHeaders bool) ([]byte, error) {
	if r.qualities == nil {
		return nil, ErrMissingQualities
	}
	n := 1 + len(r.name) + 1 + len(r.sequence) + 1 + 1 + 1 + len(r.qualities) + 1
	if twoHeaders {
		n += len(r.name)
	}
	buf := make([]byte, n)
	i := 0
	buf[i] = '@'
	i++
	i += copy(buf[i:], r.name)
	buf[i] = '\n'
	i++
	i += copy(buf[i:], r.sequence)
	buf[i] = '\n'
	i++
	buf[i] = '+'
	i++
	if twoHeaders {
		i += copy(buf[i:], r.name)
	}
	buf[i] = '\n'
	i++
	i += copy(buf[i:], r.qualities)
	buf[i] = '\n'
	return buf, nil
}
