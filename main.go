// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Command pyver parses, normalizes, compares, and sorts Python package version identifiers.
package main

import (
	"context"
	"io"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/datawire/pyver/pkg/cliutil"
)

// logger is shared by every context that the command tree sees; runMain points it at the
// invocation's stderr.
var logger = logrus.New()

var globalFlags struct {
	Verbose bool
}

var argparser = &cobra.Command{
	Use:   "pyver {[flags]|SUBCOMMAND...}",
	Short: "Parse and compare Python package versions",
	Long: "Parse, normalize, compare, and sort Python package version identifiers such as " +
		"\"1!2.0rc1.post3.dev4+ubuntu.1\".  Spellings that differ only in case, separators, " +
		"or keyword aliases (\"1.0-ALPHA_1\", \"v1.0a1\") are treated as the same version." +
		"\n\n" +
		"Pre-releases sort before the final release, and a development release of a final " +
		"release sorts after all of its pre-releases: 1.0a1 < 1.0rc1 < 1.0.dev1 < 1.0 < " +
		"1.0+local < 1.0.post1.",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,

	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if globalFlags.Verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		return nil
	},

	SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
	SilenceUsage:  true, // our FlagErrorFunc will handle it
}

func init() {
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.CompletionOptions.DisableDefaultCmd = true // main_aux.go turns it back on
	argparser.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false,
		"Log debugging information to stderr")
}

// runMain runs the command tree with the given arguments and stdio, and returns the status that
// the program should exit with.
func runMain(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	ctx = dlog.WithLogger(ctx, dlog.WrapLogrus(logger))

	argparser.SetArgs(args)
	argparser.SetIn(stdin)
	argparser.SetOut(stdout)
	argparser.SetErr(stderr)

	return cliutil.ExitCode(argparser, argparser.ExecuteContext(ctx))
}

func main() {
	os.Exit(runMain(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
