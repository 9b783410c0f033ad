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

// Package stats accumulates summary statistics over a FASTQ stream:
// read and base counts, read-length extremes, GC content, and Phred+33
// quality score statistics.
package stats

import (
	"fmt"
	"io"

	"github.com/scttfrdmn/katydid/fastq"
)

// Stats summarizes a stream of FASTQ reads. Quality scores are interpreted
// as Phred+33 (the standard for modern sequencing platforms).
type Stats struct {
	Reads          int     `json:"reads" yaml:"reads"`
	Bases          int64   `json:"bases" yaml:"bases"`
	MinReadLength  int     `json:"min_read_length" yaml:"min_read_length"`
	MaxReadLength  int     `json:"max_read_length" yaml:"max_read_length"`
	MeanReadLength float64 `json:"mean_read_length" yaml:"mean_read_length"`
	GCPercent      float64 `json:"gc_content_percent" yaml:"gc_content_percent"`
	MinQuality     int     `json:"min_quality_score" yaml:"min_quality_score"`
	MaxQuality     int     `json:"max_quality_score" yaml:"max_quality_score"`
	MeanQuality    float64 `json:"mean_quality_score" yaml:"mean_quality_score"`
}

// Collect drives p to exhaustion and returns the accumulated statistics.
// A stream without a single read is an error.
func Collect(p *fastq.Parser[fastq.Record]) (*Stats, error) {
	s := &Stats{
		MinReadLength: int(^uint(0) >> 1), // max int
		MinQuality:    int(^uint(0) >> 1),
	}
	var gcCount, qualitySum, qualityCount int64

	for {
		rec, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse FASTQ stream: %w", err)
		}

		s.Reads++
		readLen := rec.Len()
		s.Bases += int64(readLen)
		if readLen < s.MinReadLength {
			s.MinReadLength = readLen
		}
		if readLen > s.MaxReadLength {
			s.MaxReadLength = readLen
		}

		for _, base := range rec.Sequence() {
			if base == 'G' || base == 'C' || base == 'g' || base == 'c' {
				gcCount++
			}
		}

		qualities, err := rec.QualitiesBytes()
		if err != nil {
			return nil, err
		}
		for _, qual := range qualities {
			phred := int(qual) - 33
			if phred < 0 {
				phred = 0
			}
			qualitySum += int64(phred)
			qualityCount++
			if phred < s.MinQuality {
				s.MinQuality = phred
			}
			if phred > s.MaxQuality {
				s.MaxQuality = phred
			}
		}
	}

	if s.Reads == 0 {
		return nil, fmt.Errorf("no reads found in FASTQ stream")
	}

	s.MeanReadLength = float64(s.Bases) / float64(s.Reads)
	if s.Bases > 0 {
		s.GCPercent = float64(gcCount) / float64(s.Bases) * 100
	}
	if qualityCount > 0 {
		s.MeanQuality = float64(qualitySum) / float64(qualityCount)
	} else {
		s.MinQuality = 0
	}

	return s, nil
}
