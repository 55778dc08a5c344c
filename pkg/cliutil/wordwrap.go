// Copyright (C) 2021-2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0
//
// The wrapping algorithm is the same one that github.com/spf13/pflag uses for
// FlagUsagesWrapped, so that the help text and the flag table wrap alike.

package cliutil

import (
	"strings"
)

const (
	// wrapSlop is how far past the wrap point a line may run, to avoid orphaning a short final
	// word.
	wrapSlop = 5
	// wrapMin is the narrowest column that we will attempt to wrap text in to.
	wrapMin = 24
	// wrapFallbackIndent is the indent used when the requested indent leaves less than
	// wrapMin columns.
	wrapFallbackIndent = 16
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// Wrap the string `s` to a maximum width `w` with leading indent `i`.  The first line is not
// indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

// splitLine splits off the first line of `s`, breaking at the last whitespace before column
// `w`, unless the whole string fits in `w + slop`.
func splitLine(w, slop int, s string) (line, rest string) {
	if w+slop > len(s) {
		return s, ""
	}
	brk := strings.LastIndexAny(s[:w], " \t\n")
	if brk <= 0 {
		return s, ""
	}
	if nl := strings.LastIndex(s[:w], "\n"); nl > 0 && nl < brk {
		return s[:nl], s[nl+1:]
	}
	return s[:brk], s[brk+1:]
}

func wrap(i, w int, s string) string {
	if w == 0 {
		return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", i))
	}

	var ret strings.Builder

	width := w - i
	if width < wrapMin {
		// Not enough room; start the text on its own line instead.
		i = wrapFallbackIndent
		width = w - i
		ret.WriteString("\n" + strings.Repeat(" ", i))
	}
	if width < wrapMin {
		return strings.ReplaceAll(s, "\n", ret.String())
	}
	width -= wrapSlop

	indent := "\n" + strings.Repeat(" ", i)
	line, s := splitLine(width, wrapSlop, s)
	ret.WriteString(strings.ReplaceAll(line, "\n", indent))
	for s != "" {
		line, s = splitLine(width, wrapSlop, s)
		ret.WriteString(indent)
		ret.WriteString(strings.ReplaceAll(line, "\n", indent))
	}
	return ret.String()
}
