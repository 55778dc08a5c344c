// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datawire/pyver/pkg/cliutil"
	"github.com/datawire/pyver/pkg/python/pep440"
)

func init() {
	var flags struct {
		inputFlags
		outputFlags
		Final bool
	}
	cmd := &cobra.Command{
		Use:   "max [flags] [VERSION...]",
		Short: "Print the greatest version",
		Long: "Print the greatest of the versions.  If several versions are equal to the " +
			"greatest, the first of them is printed." +
			"\n\n" +
			"If no VERSION or --file is given, versions are read from stdin, one per line.",
		Args: cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			vers, err := flags.readVersions(cmd, args)
			if err != nil {
				return err
			}
			if flags.Final {
				finals := vers[:0]
				for _, ver := range vers {
					if ver.PublicVersion.IsFinal() {
						finals = append(finals, ver)
					}
				}
				vers = finals
			}
			max, ok := pep440.Max(vers)
			if !ok {
				return errors.New("no versions to choose from")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), display(max, flags.Normalize))
			return err
		},
	}
	flags.inputFlags.addFlags(cmd.Flags(), true)
	flags.outputFlags.addFlags(cmd)
	cmd.Flags().BoolVar(&flags.Final, "final", false,
		"Only consider final releases (local labels are allowed)")

	argparser.AddCommand(cmd)
}
