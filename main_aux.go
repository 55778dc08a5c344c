// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

//go:build aux
// +build aux

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/datawire/pyver/pkg/cliutil"
)

// genDocsCommand returns a hidden command that regenerates a directory of documentation.
func genDocsCommand(use, short string, gen func(root *cobra.Command, dir string) error) *cobra.Command {
	return &cobra.Command{
		Hidden: true,
		Use:    use,
		Short:  short,
		Args:   cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.RemoveAll(dir); err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0777); err != nil {
				return err
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			return gen(root, dir)
		},
	}
}

func init() {
	// completion
	argparser.CompletionOptions.DisableDefaultCmd = false
	setupLogging := argparser.PersistentPreRunE
	argparser.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if completionCmd, _, err := cmd.Root().Find([]string{"completion"}); err == nil {
			completionCmd.Hidden = true
		}
		return setupLogging(cmd, args)
	}

	argparser.AddCommand(genDocsCommand("man OUT_DIRECTORY", "Generate man pages",
		func(root *cobra.Command, dir string) error {
			header := &doc.GenManHeader{
				Source: "Ambassador Labs",
				Manual: root.Name(),
			}
			return doc.GenManTree(root, header, dir)
		}))

	argparser.AddCommand(genDocsCommand("mddoc OUT_DIRECTORY", "Generate markdown documentation",
		doc.GenMarkdownTree))
}
