// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/datawire/pyver/pkg/cliutil"
)

func init() {
	var flags struct {
		inputFlags
		Public bool
	}
	cmd := &cobra.Command{
		Use:   "normalize [flags] [VERSION...]",
		Short: "Print versions in canonical form",
		Long: "Print the canonical spelling of each VERSION, one per line: the epoch is " +
			"omitted when it is 0, pre-release phases are spelled \"a\", \"b\", or \"rc\", " +
			"post- and development releases are spelled \".postN\" and \".devN\", integers " +
			"lose their leading zeros, and the local label is lower-cased and joined with " +
			"\".\"." +
			"\n\n" +
			"If no VERSION or --file is given, versions are read from stdin, one per line.  " +
			"Any malformed version is an error.",
		Example: "" +
			"  $ pyver normalize v1.0-ALPHA_1 1.0.post 1!02.0+Ubuntu-1\n" +
			"  1.0a1\n" +
			"  1.0.post0\n" +
			"  1!2.0+ubuntu.1",
		Args: cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			vers, err := flags.readVersions(cmd, args)
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(vers))
			for _, ver := range vers {
				if flags.Public {
					lines = append(lines, ver.PublicVersion.String())
				} else {
					lines = append(lines, ver.String())
				}
			}
			return writeLines(cmd.OutOrStdout(), lines)
		},
	}
	flags.Strict = true
	flags.addFlags(cmd.Flags(), false)
	cmd.Flags().BoolVar(&flags.Public, "public", false, "Drop the local version label")

	argparser.AddCommand(cmd)
}
