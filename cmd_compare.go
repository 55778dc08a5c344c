// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/datawire/pyver/pkg/cliutil"
	"github.com/datawire/pyver/pkg/python/pep440"
)

// compareOperators maps each operator that `pyver compare` accepts to a test of the result of
// Cmp.
var compareOperators = map[string]func(int) bool{
	"<":  func(c int) bool { return c < 0 },
	"<=": func(c int) bool { return c <= 0 },
	"==": func(c int) bool { return c == 0 },
	"!=": func(c int) bool { return c != 0 },
	">=": func(c int) bool { return c >= 0 },
	">":  func(c int) bool { return c > 0 },

	"lt": func(c int) bool { return c < 0 },
	"le": func(c int) bool { return c <= 0 },
	"eq": func(c int) bool { return c == 0 },
	"ne": func(c int) bool { return c != 0 },
	"ge": func(c int) bool { return c >= 0 },
	"gt": func(c int) bool { return c > 0 },
}

func relation(cmp int) string {
	switch {
	case cmp < 0:
		return "<"
	case cmp > 0:
		return ">"
	default:
		return "=="
	}
}

func init() {
	cmd := &cobra.Command{
		Use:   "compare [flags] VERSION_A [OPERATOR] VERSION_B",
		Short: "Compare two versions",
		Long: "With two arguments, print how VERSION_A relates to VERSION_B: \"<\", \"==\", " +
			"or \">\".  Versions that differ only in spelling (\"1.0\" and \"v1.0.0\") are equal." +
			"\n\n" +
			"With an OPERATOR, print nothing, and instead report whether the relation holds " +
			"through the exit status, like test(1).  OPERATOR is one of \"<\", \"<=\", \"==\", " +
			"\"!=\", \">=\", \">\", or their spelled-out forms \"lt\", \"le\", \"eq\", \"ne\", " +
			"\"ge\", \"gt\".",
		Example: "" +
			"  $ pyver compare 1.0rc1 1.0.dev1\n" +
			"  1.0rc1 < 1.0.dev1\n" +
			"  $ pyver compare 1.0 == v1.0.0 && echo same\n" +
			"  same",
		Annotations: map[string]string{
			cliutil.AnnotationExitStatus: "Exits with status 0 if the versions could be " +
				"compared (and, given an OPERATOR, the relation holds), 1 if the relation " +
				"does not hold or a version is malformed, or 2 if the command line is invalid.",
		},
		Args: cliutil.WrapPositionalArgs(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			strA, strB := args[0], args[len(args)-1]
			var test func(int) bool
			if len(args) == 3 {
				var ok bool
				test, ok = compareOperators[args[1]]
				if !ok {
					return cliutil.FlagErrorFunc(cmd, fmt.Errorf("invalid operator %q", args[1]))
				}
			}

			verA, err := pep440.ParseVersion(strA)
			if err != nil {
				return err
			}
			verB, err := pep440.ParseVersion(strB)
			if err != nil {
				return err
			}
			dlog.Debugf(cmd.Context(), "key(%q) = %s", strA, verA.Key())
			dlog.Debugf(cmd.Context(), "key(%q) = %s", strB, verB.Key())

			cmp := verA.Cmp(*verB)
			if test == nil {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", strA, relation(cmp), strB)
				return err
			}
			if !test(cmp) {
				return &cliutil.ExitCodeError{Code: 1}
			}
			return nil
		},
	}

	argparser.AddCommand(cmd)
}
