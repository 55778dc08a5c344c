// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// outputFormat is a pflag.Value selecting how structured output is encoded.
type outputFormat string

const (
	outputYAML outputFormat = "yaml"
	outputJSON outputFormat = "json"
)

func (f *outputFormat) String() string {
	if *f == "" {
		return string(outputYAML)
	}
	return string(*f)
}

func (f *outputFormat) Set(str string) error {
	switch format := outputFormat(strings.ToLower(str)); format {
	case outputYAML, outputJSON:
		*f = format
		return nil
	default:
		return fmt.Errorf("must be %q or %q", outputYAML, outputJSON)
	}
}

func (f *outputFormat) Type() string {
	return "format"
}

// write encodes v to w.  Both encodings go through v's JSON struct tags.
func (f outputFormat) write(w io.Writer, v interface{}) error {
	var bs []byte
	var err error
	switch f {
	case outputJSON:
		if bs, err = json.MarshalIndent(v, "", "  "); err == nil {
			bs = append(bs, '\n')
		}
	default:
		bs, err = yaml.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// outputFlags are the flags shared by subcommands that print a list of versions.
type outputFlags struct {
	Normalize bool
}

func (f *outputFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Normalize, "normalize", "n", false,
		"Print versions in canonical form, rather than as they were written")
}
