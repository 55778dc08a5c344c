// Package pep440 parses, normalizes, and orders Python package version identifiers.
//
// The accepted syntax is that of PEP 440 (https://www.python.org/dev/peps/pep-0440/):
//
//     [v][N!]N(.N)*[{a|b|rc}N][.postN][.devN][+local]
//
// including all of the alternate spellings that PEP 440 asks tools to normalize (case,
// separators, `alpha`/`beta`/`c`/`pre`/`preview`, `rev`/`r`, implicit `-N` post-releases,
// implicit zero numbers, and a leading "v").
//
// Every value is immutable once parsed, and every function in this package is pure; it is safe
// to use them from as many goroutines as you like.
//
// Ordering
//
// Versions are ordered by their comparison Key, which compares, in order: the epoch; the
// release segment (trailing zeros ignored); the pre-release; the post-release; the
// development release; and the local version label.  An absent field is never the same as a
// zero-valued one:
//
//   - no pre-release sorts after every pre-release (so "1.0.dev1" sorts after "1.0rc1");
//   - no post-release sorts before every post-release;
//   - no dev-release sorts after every dev-release;
//   - no local label sorts before every local label.
//
// For a single release that gives:
//
//     1.0a1 < 1.0a2.dev456 < 1.0a12.dev456 < 1.0a12 < 1.0b1.dev456 < 1.0b2
//         < 1.0rc1.dev456 < 1.0rc1 < 1.0.dev1 < 1.0 < 1.0+abc.5 < 1.0.post1
//         < 1.0.post456.dev34 < 1.0.post456
//
// Note that this differs from PEP 440 itself, which puts "1.0.dev1" before "1.0a1".
//
// Two versions are equal exactly when their keys are equal; "1.0", "v1.0.0", "0!01.00" and
// "1.0.0.0" are all equal to each other even though they print differently.
package pep440
