// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datawire/pyver/pkg/python/pep440"
	"github.com/datawire/pyver/pkg/testutil"
)

func originals(vers []pep440.Version) []string {
	ret := make([]string, 0, len(vers))
	for _, ver := range vers {
		ret = append(ret, ver.OriginalText())
	}
	return ret
}

func TestTryParseAll(t *testing.T) {
	t.Parallel()
	vers := pep440.TryParseAll([]string{
		"1.0",
		"",
		"2.0b1",
		"not-a-version",
		"1.0gamma1",
		"v3",
	})
	testutil.AssertEqualLines(t, []string{"1.0", "2.0b1", "v3"}, originals(vers))

	assert.Empty(t, pep440.TryParseAll(nil))
}

func TestUnique(t *testing.T) {
	t.Parallel()
	vers := pep440.TryParseAll([]string{
		"1.0",
		"1.0a1",
		"v1.0.0",
		"1.0-a1",
		"1.0+a.1",
		"1.0+A.01",
		"1.0+a1",
		"1.0.dev0",
		"1.0dev",
		"0!1",
	})
	testutil.AssertEqualLines(t,
		[]string{"1.0", "1.0a1", "1.0+a.1", "1.0+a1", "1.0.dev0"},
		originals(pep440.Unique(vers)))

	assert.Empty(t, pep440.Unique(nil))
}

func TestMax(t *testing.T) {
	t.Parallel()
	_, ok := pep440.Max(nil)
	assert.False(t, ok)

	max, ok := pep440.Max(pep440.TryParseAll([]string{"1.0rc1", "1.0.dev1", "1.0", "1.0.0", "0.9"}))
	assert.True(t, ok)
	assert.Equal(t, "1.0", max.OriginalText())
}
