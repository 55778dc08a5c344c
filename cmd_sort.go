// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/datawire/pyver/pkg/cliutil"
	"github.com/datawire/pyver/pkg/python/pep440"
)

func init() {
	var flags struct {
		inputFlags
		outputFlags
		Reverse bool
		Unique  bool
	}
	cmd := &cobra.Command{
		Use:   "sort [flags] [VERSION...]",
		Short: "Sort versions",
		Long: "Print the versions in ascending order, one per line.  The sort is stable: " +
			"versions that are equal but spelled differently (\"1.0\" and \"1.0.0\") keep " +
			"their relative order." +
			"\n\n" +
			"If no VERSION or --file is given, versions are read from stdin, one per line.",
		Example: "" +
			"  $ pyver sort 1.0 1.0.post1 1.0rc1 1.0.dev1 1.0a1 1.0+local\n" +
			"  1.0a1\n" +
			"  1.0rc1\n" +
			"  1.0.dev1\n" +
			"  1.0\n" +
			"  1.0+local\n" +
			"  1.0.post1",
		Args: cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			vers, err := flags.readVersions(cmd, args)
			if err != nil {
				return err
			}
			if flags.Unique {
				vers = pep440.Unique(vers)
			}
			if flags.Reverse {
				sort.Stable(sort.Reverse(pep440.Versions(vers)))
			} else {
				pep440.Sort(vers)
			}
			lines := make([]string, 0, len(vers))
			for _, ver := range vers {
				lines = append(lines, display(ver, flags.Normalize))
			}
			return writeLines(cmd.OutOrStdout(), lines)
		},
	}
	flags.inputFlags.addFlags(cmd.Flags(), true)
	flags.outputFlags.addFlags(cmd)
	cmd.Flags().BoolVarP(&flags.Reverse, "reverse", "r", false, "Sort in descending order")
	cmd.Flags().BoolVarP(&flags.Unique, "unique", "u", false,
		"Print only the first of each set of equal versions")

	argparser.AddCommand(cmd)
}
