// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elog

import (
	"regexp"
	"strings"
)

// ScopeKey identifies the log of one curve within one subplot.
type ScopeKey string

// Like "Loss&train"
var ScopeKeyBetweenSubplotAndCurve = "&"

// ScopeKeyEscape escapes a separator or itself inside a subplot title
var ScopeKeyEscape = `\`

// FromScope sets the key for the given subplot and curve. Separators in
// the subplot title are escaped; the curve label is kept as is.
// If you modify this, also modify SubplotAndCurve, below.
func (sk *ScopeKey) FromScope(subplot, curve string) {
	esc := strings.ReplaceAll(subplot, ScopeKeyEscape, ScopeKeyEscape+ScopeKeyEscape)
	esc = strings.ReplaceAll(esc, ScopeKeyBetweenSubplotAndCurve, ScopeKeyEscape+ScopeKeyBetweenSubplotAndCurve)
	*sk = ScopeKey(esc + ScopeKeyBetweenSubplotAndCurve + curve)
}

// SubplotAndCurve needs to be the inverse mirror of FromScope.
// The first unescaped separator splits, so curve labels may contain it.
func (sk ScopeKey) SubplotAndCurve() (subplot, curve string) {
	s := string(sk)
	var sb strings.Builder
	for len(s) > 0 {
		switch {
		case strings.HasPrefix(s, ScopeKeyEscape+ScopeKeyEscape):
			sb.WriteString(ScopeKeyEscape)
			s = s[2*len(ScopeKeyEscape):]
		case strings.HasPrefix(s, ScopeKeyEscape+ScopeKeyBetweenSubplotAndCurve):
			sb.WriteString(ScopeKeyBetweenSubplotAndCurve)
			s = s[len(ScopeKeyEscape)+len(ScopeKeyBetweenSubplotAndCurve):]
		case strings.HasPrefix(s, ScopeKeyBetweenSubplotAndCurve):
			return sb.String(), s[len(ScopeKeyBetweenSubplotAndCurve):]
		default:
			sb.WriteByte(s[0])
			s = s[1:]
		}
	}
	return sb.String(), ""
}

func GenScopeKey(subplot, curve string) ScopeKey {
	ss := ScopeKey("")
	ss.FromScope(subplot, curve)
	return ss
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName returns a name for the key that is safe to use as a file name
func (sk ScopeKey) FileName() string {
	subplot, curve := sk.SubplotAndCurve()
	return unsafeFileChars.ReplaceAllString(subplot, "_") + "_" + unsafeFileChars.ReplaceAllString(curve, "_")
}
