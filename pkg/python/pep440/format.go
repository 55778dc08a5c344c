// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// Format returns the normalized textual form of the version; it is the same as ver.String().
func Format(ver Version) string {
	return ver.String()
}

func (ver PublicVersion) GoString() string {
	pre := "nil"
	if ver.Pre != nil {
		pre = fmt.Sprintf("&%#v", *ver.Pre)
	}
	post := "nil"
	if ver.Post != nil {
		post = fmt.Sprintf("intPtr(%#v)", *ver.Post)
	}
	dev := "nil"
	if ver.Dev != nil {
		dev = fmt.Sprintf("intPtr(%#v)", *ver.Dev)
	}
	return fmt.Sprintf("pep440.PublicVersion{Epoch:%d, Release:%#v, Pre:%s, Post:%s, Dev:%s}",
		ver.Epoch, ver.Release, pre, post, dev)
}

func (ver PublicVersion) writeTo(ret *strings.Builder) {
	if ver.Epoch != 0 {
		fmt.Fprintf(ret, "%d!", ver.Epoch)
	}
	if len(ver.Release) == 0 {
		panic("invalid version: no release segments")
	}
	fmt.Fprintf(ret, "%d", ver.Release[0])
	for _, segment := range ver.Release[1:] {
		fmt.Fprintf(ret, ".%d", segment)
	}
	if ver.Pre != nil {
		fmt.Fprintf(ret, "%s%d", mustCanonicalPhase(ver.Pre.L), ver.Pre.N)
	}
	// Present-but-zero post and dev segments are printed; "1.0.dev0" is not "1.0".
	if ver.Post != nil {
		fmt.Fprintf(ret, ".post%d", *ver.Post)
	}
	if ver.Dev != nil {
		fmt.Fprintf(ret, ".dev%d", *ver.Dev)
	}
}

// String returns the normalized form of the public version.
func (ver PublicVersion) String() string {
	var ret strings.Builder
	ver.writeTo(&ret)
	return ret.String()
}

func (ver LocalVersion) GoString() string {
	return fmt.Sprintf("pep440.LocalVersion{PublicVersion:%#v, Local:%#v, Original:%q}",
		ver.PublicVersion, ver.Local, ver.Original)
}

// String returns the normalized form of the version.
func (ver LocalVersion) String() string {
	var ret strings.Builder
	ver.PublicVersion.writeTo(&ret)
	sep := "+"
	for _, local := range ver.Local {
		ret.WriteString(sep)
		seg := normalizeLocalSegment(local)
		ret.WriteString(seg.String())
		sep = "."
	}
	return ret.String()
}

// OriginalText returns the text that the version was parsed from.  For a version that was
// constructed in code rather than parsed, it returns the normalized form.
func (ver LocalVersion) OriginalText() string {
	if ver.Original != "" {
		return ver.Original
	}
	return ver.String()
}

// Normalize returns a copy of the version with every field in canonical form: pre-release
// phases spelled "a", "b", or "rc"; local segments lower-cased, and purely-numeric local
// segments turned in to integers.  Original is set to the normalized text.
//
// Parsed versions are already canonical (except for Original); this is mostly useful for
// versions that were constructed in code.
func (ver PublicVersion) Normalize() (*PublicVersion, error) {
	n, err := ParseVersion(ver.String())
	if err != nil {
		return nil, err
	}
	return &n.PublicVersion, nil
}

// Normalize returns a copy of the version with every field in canonical form; see
// PublicVersion.Normalize.
func (ver LocalVersion) Normalize() (*LocalVersion, error) {
	n, err := ParseVersion(ver.String())
	if err != nil {
		return nil, err
	}
	return n, nil
}

// MarshalText implements encoding.TextMarshaler, encoding the version in normalized form.
func (ver LocalVersion) MarshalText() ([]byte, error) {
	if len(ver.Release) == 0 {
		return nil, fmt.Errorf("pep440.Version.MarshalText: invalid version: no release segments")
	}
	return []byte(ver.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ver *LocalVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*ver = *parsed
	return nil
}

// canonicalPhase resolves the alternate spellings of a pre-release phase.
func canonicalPhase(phase Phase) (Phase, bool) {
	str, ok := canonicalSpelling(string(phase), preReleaseSpellings)
	return Phase(str), ok
}

func mustCanonicalPhase(phase Phase) Phase {
	ret, ok := canonicalPhase(phase)
	if !ok {
		panic(fmt.Errorf("invalid pre-release string: %q", phase))
	}
	return ret
}

func normalizeLocalSegment(seg intstr.IntOrString) intstr.IntOrString {
	if seg.Type != intstr.String {
		return seg
	}
	return parseLocalSegment(seg.StrVal)
}
