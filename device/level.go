// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"
	"strconv"
	"strings"
)

// FeatureLevel is an ordered capability tier. Values follow
// D3D_FEATURE_LEVEL, so a higher value is a superset of a lower one.
// The zero value means unset.
type FeatureLevel uint32

// Known feature levels.
const (
	FeatureLevel9_1  FeatureLevel = 0x9100
	FeatureLevel9_2  FeatureLevel = 0x9200
	FeatureLevel9_3  FeatureLevel = 0x9300
	FeatureLevel10_0 FeatureLevel = 0xa000
	FeatureLevel10_1 FeatureLevel = 0xa100
	FeatureLevel11_0 FeatureLevel = 0xb000
	FeatureLevel11_1 FeatureLevel = 0xb100
	FeatureLevel12_0 FeatureLevel = 0xc000
	FeatureLevel12_1 FeatureLevel = 0xc100
)

// Highest and lowest feature levels this package negotiates.
const (
	MaxFeatureLevel = FeatureLevel12_1
	MinFeatureLevel = FeatureLevel9_1
)

// featureLevels lists every known level, highest first.
var featureLevels = []FeatureLevel{
	FeatureLevel12_1,
	FeatureLevel12_0,
	FeatureLevel11_1,
	FeatureLevel11_0,
	FeatureLevel10_1,
	FeatureLevel10_0,
	FeatureLevel9_3,
	FeatureLevel9_2,
	FeatureLevel9_1,
}

// String formats the level as "major_minor", e.g. "11_1".
func (l FeatureLevel) String() string {
	if l == 0 {
		return "unset"
	}
	return fmt.Sprintf("%d_%d", uint32(l)>>12, (uint32(l)>>8)&0xf)
}

// ParseFeatureLevel parses "11_1", "11.1" or "11" into a known level.
// An empty string parses to the zero (unset) level.
func ParseFeatureLevel(s string) (FeatureLevel, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	major, minor, _ := strings.Cut(strings.ReplaceAll(s, ".", "_"), "_")
	if minor == "" {
		minor = "0"
	}
	ma, err1 := strconv.ParseUint(major, 10, 8)
	mi, err2 := strconv.ParseUint(minor, 10, 8)
	if err1 != nil || err2 != nil || mi > 0xf {
		return 0, fmt.Errorf("device: invalid feature level %q", s)
	}
	l := FeatureLevel(ma<<12 | mi<<8)
	for _, known := range featureLevels {
		if known == l {
			return l, nil
		}
	}
	return 0, fmt.Errorf("device: unknown feature level %q", s)
}

// Levels returns the known feature levels from hi down to lo, inclusive.
func Levels(hi, lo FeatureLevel) []FeatureLevel {
	start := 0
	for start < len(featureLevels) && featureLevels[start] > hi {
		start++
	}
	n := 0
	for start+n < len(featureLevels) && featureLevels[start+n] >= lo {
		n++
	}
	out := make([]FeatureLevel, n)
	copy(out, featureLevels[start:start+n])
	return out
}
