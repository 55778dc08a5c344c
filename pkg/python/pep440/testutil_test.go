// Copyright (C) 2021-2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/datawire/pyver/pkg/python/pep440"
)

func intPtr(x int) *int {
	return &x
}

func mustParseVersion(t *testing.T, str string) pep440.Version {
	t.Helper()
	ver, err := pep440.ParseVersion(str)
	require.NoError(t, err)
	require.NotNil(t, ver)
	return *ver
}

// loadOrdering reads testdata/ordering.yml; each entry is a list of version strings in
// ascending order.
func loadOrdering(t *testing.T) map[string][]string {
	t.Helper()
	bs, err := os.ReadFile("testdata/ordering.yml")
	require.NoError(t, err)
	var ret map[string][]string
	require.NoError(t, yaml.UnmarshalStrict(bs, &ret))
	require.NotEmpty(t, ret)
	return ret
}
