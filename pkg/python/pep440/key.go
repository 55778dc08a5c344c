// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// Bound says whether an optional key field holds an actual value, or is a sentinel that sorts
// below or above every actual value.
type Bound int8

const (
	BelowAll Bound = -1
	Present  Bound = 0
	AboveAll Bound = 1
)

func (b Bound) String() string {
	switch b {
	case BelowAll:
		return "-inf"
	case Present:
		return "present"
	case AboveAll:
		return "+inf"
	default:
		return fmt.Sprintf("Bound(%d)", int8(b))
	}
}

// IntKey is the key for an optional numeric segment (post and dev).  N is only meaningful if
// Bound is Present.
type IntKey struct {
	Bound Bound
	N     int
}

// PreKey is the key for the pre-release segment.  Rank and N are only meaningful if Bound is
// Present.
type PreKey struct {
	Bound Bound
	Rank  int
	N     int
}

// LocalKey is the key for the local version label.  Segments is only meaningful if Bound is
// Present.
type LocalKey struct {
	Bound    Bound
	Segments []intstr.IntOrString
}

// Key is the comparison key of a version.  Two versions are equal if and only if their keys
// are equal, and they sort in the order of their keys.  Fields are compared in declaration
// order; the first difference decides.
type Key struct {
	Epoch int
	// Release has any trailing zeros removed, so "1", "1.0", and "1.0.0" all have the
	// release key [1].
	Release []int
	// Pre is AboveAll when there is no pre-release; so a final release outranks any
	// pre-release of it, and so does a development release of a final release.
	Pre PreKey
	// Post is BelowAll when there is no post-release.
	Post IntKey
	// Dev is AboveAll when there is no development release.
	Dev IntKey
	// Local is BelowAll when there is no local version label.
	Local LocalKey
}

var preReleaseRank = map[Phase]int{
	PhaseAlpha: 0,
	PhaseBeta:  1,
	PhaseRC:    2,
}

// Key returns the comparison key of the public version; it is the same as the key of a
// LocalVersion with no local version label.
func (ver PublicVersion) Key() Key {
	if len(ver.Release) == 0 {
		panic("invalid version: no release segments")
	}
	key := Key{
		Epoch:   ver.Epoch,
		Release: trimTrailingZeros(ver.Release),
		Pre:     PreKey{Bound: AboveAll},
		Post:    IntKey{Bound: BelowAll},
		Dev:     IntKey{Bound: AboveAll},
		Local:   LocalKey{Bound: BelowAll},
	}
	if ver.Pre != nil {
		key.Pre = PreKey{
			Bound: Present,
			Rank:  preReleaseRank[mustCanonicalPhase(ver.Pre.L)],
			N:     ver.Pre.N,
		}
	}
	if ver.Post != nil {
		key.Post = IntKey{Bound: Present, N: *ver.Post}
	}
	if ver.Dev != nil {
		key.Dev = IntKey{Bound: Present, N: *ver.Dev}
	}
	return key
}

// Key returns the comparison key of the version.
func (ver LocalVersion) Key() Key {
	key := ver.PublicVersion.Key()
	if len(ver.Local) > 0 {
		key.Local.Bound = Present
		key.Local.Segments = make([]intstr.IntOrString, 0, len(ver.Local))
		for _, seg := range ver.Local {
			key.Local.Segments = append(key.Local.Segments, normalizeLocalSegment(seg))
		}
	}
	return key
}

func trimTrailingZeros(release []int) []int {
	end := len(release)
	for end > 0 && release[end-1] == 0 {
		end--
	}
	return append([]int(nil), release[:end]...)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBound(a, b Bound) int {
	return cmpInt(int(a), int(b))
}

func cmpRelease(a, b []int) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var aSeg, bSeg int
		if i < len(a) {
			aSeg = a[i]
		}
		if i < len(b) {
			bSeg = b[i]
		}
		if d := cmpInt(aSeg, bSeg); d != 0 {
			return d
		}
	}
	return 0
}

// Cmp returns -1, 0, or 1.
func (a PreKey) Cmp(b PreKey) int {
	if d := cmpBound(a.Bound, b.Bound); d != 0 || a.Bound != Present {
		return d
	}
	if d := cmpInt(a.Rank, b.Rank); d != 0 {
		return d
	}
	return cmpInt(a.N, b.N)
}

// Cmp returns -1, 0, or 1.
func (a IntKey) Cmp(b IntKey) int {
	if d := cmpBound(a.Bound, b.Bound); d != 0 || a.Bound != Present {
		return d
	}
	return cmpInt(a.N, b.N)
}

// localNumber returns the decimal digits of a numeric local segment, without leading zeros.
// Numbers that don't fit in an int32 are stored as strings of digits.
func localNumber(seg intstr.IntOrString) (string, bool) {
	switch seg.Type {
	case intstr.Int:
		return strconv.Itoa(int(seg.IntVal)), true
	case intstr.String:
		if !isDigits(seg.StrVal) {
			return "", false
		}
		if digits := strings.TrimLeft(seg.StrVal, "0"); digits != "" {
			return digits, true
		}
		return "0", true
	default:
		panic("should not happen: invalid intstr.IntOrString")
	}
}

// cmpLocalSegment orders numbers after strings, numbers numerically, and strings
// case-insensitively.
func cmpLocalSegment(a, b intstr.IntOrString) int {
	aNum, aIsNum := localNumber(a)
	bNum, bIsNum := localNumber(b)
	switch {
	case aIsNum && bIsNum:
		if d := cmpInt(len(aNum), len(bNum)); d != 0 {
			return d
		}
		return strings.Compare(aNum, bNum)
	case !aIsNum && !bIsNum:
		return strings.Compare(strings.ToLower(a.StrVal), strings.ToLower(b.StrVal))
	case aIsNum:
		return 1
	default:
		return -1
	}
}

// Cmp returns -1, 0, or 1.  A label that is a prefix of another sorts first.
func (a LocalKey) Cmp(b LocalKey) int {
	if d := cmpBound(a.Bound, b.Bound); d != 0 || a.Bound != Present {
		return d
	}
	for i := 0; i < len(a.Segments) && i < len(b.Segments); i++ {
		if d := cmpLocalSegment(a.Segments[i], b.Segments[i]); d != 0 {
			return d
		}
	}
	return cmpInt(len(a.Segments), len(b.Segments))
}

// Cmp returns -1, 0, or 1.
func (a Key) Cmp(b Key) int {
	if d := cmpInt(a.Epoch, b.Epoch); d != 0 {
		return d
	}
	if d := cmpRelease(a.Release, b.Release); d != 0 {
		return d
	}
	if d := a.Pre.Cmp(b.Pre); d != 0 {
		return d
	}
	if d := a.Post.Cmp(b.Post); d != 0 {
		return d
	}
	if d := a.Dev.Cmp(b.Dev); d != 0 {
		return d
	}
	return a.Local.Cmp(b.Local)
}

func writeBound(ret *strings.Builder, b Bound) bool {
	switch b {
	case BelowAll:
		ret.WriteString("-")
		return false
	case AboveAll:
		ret.WriteString("+")
		return false
	default:
		return true
	}
}

// String returns an encoding of the key that is equal for two keys exactly when the keys are
// equal; it is suitable for use as a map key.  It does not sort in key order.
func (k Key) String() string {
	var ret strings.Builder

	ret.WriteString(strconv.Itoa(k.Epoch))
	ret.WriteString("!")
	for i, seg := range k.Release {
		if i > 0 {
			ret.WriteString(".")
		}
		ret.WriteString(strconv.Itoa(seg))
	}

	ret.WriteString("|pre:")
	if writeBound(&ret, k.Pre.Bound) {
		fmt.Fprintf(&ret, "%d.%d", k.Pre.Rank, k.Pre.N)
	}

	ret.WriteString("|post:")
	if writeBound(&ret, k.Post.Bound) {
		ret.WriteString(strconv.Itoa(k.Post.N))
	}

	ret.WriteString("|dev:")
	if writeBound(&ret, k.Dev.Bound) {
		ret.WriteString(strconv.Itoa(k.Dev.N))
	}

	ret.WriteString("|local:")
	if writeBound(&ret, k.Local.Bound) {
		for i, seg := range k.Local.Segments {
			if i > 0 {
				ret.WriteString(".")
			}
			if digits, ok := localNumber(seg); ok {
				ret.WriteString("#")
				ret.WriteString(digits)
			} else {
				ret.WriteString(strings.ToLower(seg.StrVal))
			}
		}
	}

	return ret.String()
}

// Hash returns a hash of the key; equal keys have equal hashes.
func (k Key) Hash() uint64 {
	return xxhash.Sum64String(k.String())
}
