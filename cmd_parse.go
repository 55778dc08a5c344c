// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/datawire/pyver/pkg/cliutil"
	"github.com/datawire/pyver/pkg/python/pep440"
)

type preReleaseInfo struct {
	Phase  pep440.Phase `json:"phase"`
	Number int          `json:"number"`
}

// versionInfo is the structured description of a version that `pyver parse` emits.
type versionInfo struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	Public     string `json:"public"`

	Epoch   int                  `json:"epoch"`
	Release []int                `json:"release"`
	Pre     *preReleaseInfo      `json:"pre,omitempty"`
	Post    *int                 `json:"post,omitempty"`
	Dev     *int                 `json:"dev,omitempty"`
	Local   []intstr.IntOrString `json:"local,omitempty"`

	IsFinal       bool `json:"isFinal"`
	IsPreRelease  bool `json:"isPreRelease"`
	IsPostRelease bool `json:"isPostRelease"`
	IsDevRelease  bool `json:"isDevRelease"`

	Key string `json:"key"`
}

func newVersionInfo(ver pep440.Version) versionInfo {
	info := versionInfo{
		Original:   ver.OriginalText(),
		Normalized: ver.String(),
		Public:     ver.PublicVersion.String(),

		Epoch:   ver.Epoch,
		Release: ver.Release,
		Post:    ver.Post,
		Dev:     ver.Dev,
		Local:   ver.Local,

		IsFinal:       ver.IsFinal(),
		IsPreRelease:  ver.IsPreRelease(),
		IsPostRelease: ver.IsPostRelease(),
		IsDevRelease:  ver.IsDevRelease(),

		Key: ver.Key().String(),
	}
	if ver.Pre != nil {
		info.Pre = &preReleaseInfo{
			Phase:  ver.Pre.L,
			Number: ver.Pre.N,
		}
	}
	return info
}

func init() {
	var flags struct {
		inputFlags
		Output outputFormat
	}
	cmd := &cobra.Command{
		Use:   "parse [flags] [VERSION...]",
		Short: "Describe the structure of versions",
		Long: "Parse each VERSION and print its segments, its normalized form, and its sort " +
			"key.  The sort key is a string that is equal for two versions exactly when the " +
			"versions compare as equal." +
			"\n\n" +
			"If no VERSION or --file is given, versions are read from stdin, one per line.  " +
			"Any malformed version is an error.",
		Args: cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			vers, err := flags.readVersions(cmd, args)
			if err != nil {
				return err
			}
			infos := make([]versionInfo, 0, len(vers))
			for _, ver := range vers {
				infos = append(infos, newVersionInfo(ver))
			}
			return flags.Output.write(cmd.OutOrStdout(), infos)
		},
	}
	flags.Strict = true
	flags.addFlags(cmd.Flags(), false)
	cmd.Flags().VarP(&flags.Output, "output", "o", "Encode the output as `FORMAT` (\"yaml\" or \"json\")")

	argparser.AddCommand(cmd)
}
