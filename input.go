// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/datawire/pyver/pkg/python/pep440"
)

// input is a single candidate version string, along with where it came from.
type input struct {
	Text   string
	Source string
}

// inputFlags are the flags shared by every subcommand that reads a list of versions.
type inputFlags struct {
	Files  []string
	Strict bool
}

// addFlags registers --file, and, if withStrict, --strict.  Subcommands without --strict decide
// .Strict themselves.
func (f *inputFlags) addFlags(flags *pflag.FlagSet, withStrict bool) {
	flags.StringArrayVarP(&f.Files, "file", "f", nil,
		"Also read versions from `FILENAME`, one per line (\"-\" for stdin)")
	if withStrict {
		flags.BoolVar(&f.Strict, "strict", false,
			"Fail on a malformed version, rather than warning and skipping it")
	}
}

// readInputs gathers the candidate version strings from the positional arguments and from any
// --file flags.  If neither supplies anything, versions are read from stdin.
func (f *inputFlags) readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	inputs := make([]input, 0, len(args))
	for i, arg := range args {
		inputs = append(inputs, input{
			Text:   arg,
			Source: fmt.Sprintf("argument %d", i+1),
		})
	}

	files := f.Files
	if len(args) == 0 && len(files) == 0 {
		files = []string{"-"}
	}
	for _, filename := range files {
		var more []input
		var err error
		if filename == "-" {
			more, err = readLines(cmd.InOrStdin(), "<stdin>")
		} else {
			more, err = readFile(filename)
		}
		if err != nil {
			return nil, err
		}
		dlog.Debugf(cmd.Context(), "read %d versions from %q", len(more), filename)
		inputs = append(inputs, more...)
	}
	return inputs, nil
}

// readVersions is readInputs followed by parsing each input.  Malformed versions are an error
// if .Strict is set; otherwise they are logged and skipped.
func (f *inputFlags) readVersions(cmd *cobra.Command, args []string) ([]pep440.Version, error) {
	inputs, err := f.readInputs(cmd, args)
	if err != nil {
		return nil, err
	}
	vers := make([]pep440.Version, 0, len(inputs))
	for _, in := range inputs {
		ver, err := pep440.ParseVersion(in.Text)
		if err != nil {
			if f.Strict {
				return nil, fmt.Errorf("%s: %w", in.Source, err)
			}
			dlog.Warnf(cmd.Context(), "%s: skipping: %v", in.Source, err)
			continue
		}
		vers = append(vers, *ver)
	}
	return vers, nil
}

func readFile(filename string) ([]input, error) {
	fh, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return readLines(fh, filename)
}

// readLines reads one version per line.  Surrounding whitespace is trimmed, and blank lines and
// lines starting with "#" are ignored.
func readLines(r io.Reader, name string) ([]input, error) {
	var ret []input
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret = append(ret, input{
			Text:   line,
			Source: fmt.Sprintf("%s:%d", name, lineno),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ret, nil
}

// display returns how a version should be printed: as it was written, or in canonical form.
func display(ver pep440.Version, normalize bool) string {
	if normalize {
		return ver.String()
	}
	return ver.OriginalText()
}

// writeLines writes each string on its own line.
func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
