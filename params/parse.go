// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"strconv"
	"strings"
)

// ParseInteger returns the integer at the start of s, ignoring leading
// space and any trailing text, so "12.7mm" is 12. Input without a
// leading integer yields 0.
func ParseInteger(s string) float64 {
	s = strings.TrimSpace(s)
	n := signLen(s)
	end := n + digitsLen(s[n:])
	if end == n {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseNumber returns the decimal number at the start of s, ignoring
// leading space and any trailing text, so "2.5e1x" is 25. Input without
// a leading number yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	n := signLen(s)
	ip := digitsLen(s[n:])
	end := n + ip
	fp := 0
	if end < len(s) && s[end] == '.' {
		fp = digitsLen(s[end+1:])
		if ip > 0 || fp > 0 {
			end += 1 + fp
		}
	}
	if ip == 0 && fp == 0 {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		en := end + 1
		en += signLen(s[en:])
		if ed := digitsLen(s[en:]); ed > 0 {
			end = en + ed
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseDiameter parses a diameter chooser value. Zero or unparseable
// input yields [DefaultDiameter]; a number outside of [Diameters]
// returns [ErrBadDiameter].
func ParseDiameter(s string) (Diameter, error) {
	v := ParseNumber(s)
	if v == 0 {
		return DefaultDiameter, nil
	}
	d := Diameter(v)
	if err := d.Validate(); err != nil {
		return DefaultDiameter, err
	}
	return d, nil
}

func signLen(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func digitsLen(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
