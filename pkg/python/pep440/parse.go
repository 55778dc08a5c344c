// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"regexp"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// reVersion is the regular expression from PEP 440 Appendix B, with the pre-release keywords
// reordered so that the longer spellings are preferred.
var reVersion = regexp.MustCompile(`(?i)^\s*` + regexp.MustCompile(`(?:\s+|#.*)`).ReplaceAllString(`
	v?
	(?:
	    (?:(?P<epoch>[0-9]+)!)?                           # epoch
	    (?P<release>[0-9]+(?:\.[0-9]+)*)                  # release segment
	    (?P<pre>                                          # pre-release
	        [-_\.]?
	        (?P<pre_l>alpha|a|beta|b|preview|pre|rc|c)
	        [-_\.]?
	        (?P<pre_n>[0-9]+)?
	    )?
	    (?P<post>                                         # post release
	        (?:-(?P<post_n1>[0-9]+))
	        |
	        (?:
	            [-_\.]?
	            (?P<post_l>post|rev|r)
	            [-_\.]?
	            (?P<post_n2>[0-9]+)?
	        )
	    )?
	    (?P<dev>                                          # dev release
	        [-_\.]?
	        (?P<dev_l>dev)
	        [-_\.]?
	        (?P<dev_n>[0-9]+)?
	    )?
	)
	(?:\+(?P<local>(?-i:[a-zA-Z0-9]+(?:[-_\.][a-zA-Z0-9]+)*)))?  # local version, ASCII only
`, ``) + `\s*$`)

// Keyword spellings, keyed by the canonical spelling.
var (
	preReleaseSpellings = map[string][]string{
		string(PhaseAlpha): {"alpha"},
		string(PhaseBeta):  {"beta"},
		string(PhaseRC):    {"c", "pre", "preview"},
	}
	postReleaseSpellings = map[string][]string{
		"post": {"", "rev", "r"},
	}
	devReleaseSpellings = map[string][]string{
		"dev": nil,
	}
)

func canonicalSpelling(letter string, spellings map[string][]string) (string, bool) {
	letter = strings.ToLower(letter)
	if _, ok := spellings[letter]; ok {
		return letter, true
	}
	for canonical, others := range spellings {
		for _, other := range others {
			if letter == other {
				return canonical, true
			}
		}
	}
	return "", false
}

func parseVersion(str string) (*Version, error) {
	if strings.TrimSpace(str) == "" {
		return nil, &ParseError{Input: str, Reason: "empty version string"}
	}
	match := reVersion.FindStringSubmatch(str)
	if match == nil {
		return nil, &ParseError{Input: str, Reason: "does not match the version syntax"}
	}
	group := func(name string) string {
		return match[reVersion.SubexpIndex(name)]
	}
	number := func(segment, digits string) (int, error) {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 0, &ParseError{Input: str, Reason: segment + " segment", Err: err}
		}
		return n, nil
	}

	ver := Version{Original: str}
	var err error

	if epoch := group("epoch"); epoch != "" {
		if ver.Epoch, err = number("epoch", epoch); err != nil {
			return nil, err
		}
	}

	for _, segStr := range strings.Split(group("release"), ".") {
		segInt, err := number("release", segStr)
		if err != nil {
			return nil, err
		}
		ver.Release = append(ver.Release, segInt)
	}

	// A keyword with no number means that the number is 0; the segment is still present.
	parseLetterNumber := func(segment, letter, number string, spellings map[string][]string) (string, *int, error) {
		if letter == "" && number == "" {
			return "", nil, nil
		}
		canonical, ok := canonicalSpelling(letter, spellings)
		if !ok {
			return "", nil, &ParseError{Input: str, Reason: segment + " segment: invalid string-part " + strconv.Quote(letter)}
		}
		var n int
		if number != "" {
			var err error
			n, err = strconv.Atoi(number)
			if err != nil {
				return "", nil, &ParseError{Input: str, Reason: segment + " segment", Err: err}
			}
		}
		return canonical, &n, nil
	}

	preL, preN, err := parseLetterNumber("pre-release",
		group("pre_l"), group("pre_n"),
		preReleaseSpellings)
	if err != nil {
		return nil, err
	}
	if preN != nil {
		ver.Pre = &PreRelease{
			L: Phase(preL),
			N: *preN,
		}
	}

	// The implicit form ("1.0-5") has no letter; the alternation in reVersion means that at
	// most one of post_n1 and post_n2 is set.
	_, ver.Post, err = parseLetterNumber("post-release",
		group("post_l"), group("post_n1")+group("post_n2"),
		postReleaseSpellings)
	if err != nil {
		return nil, err
	}

	_, ver.Dev, err = parseLetterNumber("dev-release",
		group("dev_l"), group("dev_n"),
		devReleaseSpellings)
	if err != nil {
		return nil, err
	}

	if local := group("local"); local != "" {
		for _, part := range splitLocal(local) {
			ver.Local = append(ver.Local, parseLocalSegment(part))
		}
	}

	return &ver, nil
}

func splitLocal(local string) []string {
	return strings.FieldsFunc(local, func(r rune) bool {
		return strings.ContainsRune("-_.", r)
	})
}

func isDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseLocalSegment turns one piece of a local version label in to either an integer (if it is
// entirely digits) or a lower-cased string.  A number too big for an int32 is kept as a string
// of digits without leading zeros; it still compares as a number.
func parseLocalSegment(part string) intstr.IntOrString {
	if !isDigits(part) {
		return intstr.FromString(strings.ToLower(part))
	}
	if n, err := strconv.ParseInt(part, 10, 32); err == nil {
		return intstr.FromInt(int(n))
	}
	return intstr.FromString(strings.TrimLeft(part, "0"))
}
