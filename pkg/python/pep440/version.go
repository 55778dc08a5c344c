// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// Version is a full version identifier, including any local version label.
type Version = LocalVersion

// ParseVersion parses a version identifier.  On failure it returns a nil *Version and an error
// that matches ErrMalformed and wraps a *ParseError.
func ParseVersion(str string) (*Version, error) {
	ver, err := parseVersion(str)
	if err != nil {
		return nil, fmt.Errorf("pep440.ParseVersion: %w", err)
	}
	return ver, nil
}

// TryParse is like ParseVersion, but for callers that only care whether the string is a
// version, not why it isn't.
func TryParse(str string) (Version, bool) {
	ver, err := parseVersion(str)
	if err != nil {
		return Version{}, false
	}
	return *ver, true
}

// MustParseVersion is like ParseVersion, but panics on error.  It is meant for literals.
func MustParseVersion(str string) Version {
	ver, err := ParseVersion(str)
	if err != nil {
		panic(err)
	}
	return *ver
}

// Phase is the label of a pre-release.  Parsed versions only ever contain the canonical
// phases PhaseAlpha, PhaseBeta, and PhaseRC.
type Phase string

const (
	PhaseAlpha Phase = "a"
	PhaseBeta  Phase = "b"
	PhaseRC    Phase = "rc"
)

// PublicVersion is the part of a version identifier that may be published to a package index:
//
//     [N!]N(.N)*[{a|b|rc}N][.postN][.devN]
//
// Optional segments are pointers; nil means that the segment is absent, which is distinct from
// it being present with the value zero.
type PublicVersion struct {
	// Epoch segment: ``N!``
	Epoch int
	// Release segment: ``N(.N)*``
	Release []int
	// Pre-release segment: ``{a|b|rc}N``
	Pre *PreRelease
	// Post-release segment: ``.postN``
	Post *int
	// Development release segment: ``.devN``
	Dev *int
}

type PreRelease struct {
	L Phase
	N int
}

// LocalVersion is a public version identifier, plus an optional local version label, plus the
// text that it was parsed from.
type LocalVersion struct {
	PublicVersion

	// Local is the local version label, split on separators; each segment is either an
	// integer or a lower-case alphanumeric string.  nil means no label.
	Local []intstr.IntOrString

	// Original is the text that the version was parsed from, verbatim.  It is empty for
	// values constructed in code, and is ignored by all comparisons.
	Original string
}

func (ver PublicVersion) releaseSegment(n int) int {
	if n < len(ver.Release) {
		return ver.Release[n]
	}
	return 0
}

// Major returns the first release number, or 0 if there isn't one.
func (ver PublicVersion) Major() int { return ver.releaseSegment(0) }

// Minor returns the second release number, or 0 if there isn't one.
func (ver PublicVersion) Minor() int { return ver.releaseSegment(1) }

// Micro returns the third release number, or 0 if there isn't one.
func (ver PublicVersion) Micro() int { return ver.releaseSegment(2) }

// IsPreRelease returns whether the version is a pre-release or a development release; which
// is to say whether an installer should skip it unless asked not to.
func (ver PublicVersion) IsPreRelease() bool {
	return ver.Pre != nil || ver.Dev != nil
}

func (ver PublicVersion) IsPostRelease() bool {
	return ver.Post != nil
}

func (ver PublicVersion) IsDevRelease() bool {
	return ver.Dev != nil
}

// IsFinal returns whether the version has no pre-, post-, or development segment.
func (ver PublicVersion) IsFinal() bool {
	return ver.Pre == nil && ver.Post == nil && ver.Dev == nil
}

// IsFinal returns whether the version has no pre-, post-, or development segment, and no local
// version label.
func (ver LocalVersion) IsFinal() bool {
	return ver.PublicVersion.IsFinal() && len(ver.Local) == 0
}

// Public returns the public part of the version, discarding any local version label.
func (ver LocalVersion) Public() PublicVersion {
	return ver.PublicVersion.clone()
}

func (ver PublicVersion) clone() PublicVersion {
	ret := PublicVersion{
		Epoch:   ver.Epoch,
		Release: append([]int(nil), ver.Release...),
	}
	if ver.Pre != nil {
		pre := *ver.Pre
		ret.Pre = &pre
	}
	if ver.Post != nil {
		post := *ver.Post
		ret.Post = &post
	}
	if ver.Dev != nil {
		dev := *ver.Dev
		ret.Dev = &dev
	}
	return ret
}
