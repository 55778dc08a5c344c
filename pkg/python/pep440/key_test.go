// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/datawire/pyver/pkg/python/pep440"
	"github.com/datawire/pyver/pkg/testutil"
)

func TestKey(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Key    pep440.Key
		String string
	}
	testcases := map[string]TestCase{
		"1.0": {
			Key: pep440.Key{
				Release: []int{1},
				Pre:     pep440.PreKey{Bound: pep440.AboveAll},
				Post:    pep440.IntKey{Bound: pep440.BelowAll},
				Dev:     pep440.IntKey{Bound: pep440.AboveAll},
				Local:   pep440.LocalKey{Bound: pep440.BelowAll},
			},
			String: "0!1|pre:+|post:-|dev:+|local:-",
		},
		"0.0.0": {
			Key: pep440.Key{
				Pre:   pep440.PreKey{Bound: pep440.AboveAll},
				Post:  pep440.IntKey{Bound: pep440.BelowAll},
				Dev:   pep440.IntKey{Bound: pep440.AboveAll},
				Local: pep440.LocalKey{Bound: pep440.BelowAll},
			},
			String: "0!|pre:+|post:-|dev:+|local:-",
		},
		"1!2.0.0rc3.post4.dev5+ABC.07": {
			Key: pep440.Key{
				Epoch:   1,
				Release: []int{2},
				Pre:     pep440.PreKey{Bound: pep440.Present, Rank: 2, N: 3},
				Post:    pep440.IntKey{Bound: pep440.Present, N: 4},
				Dev:     pep440.IntKey{Bound: pep440.Present, N: 5},
				Local: pep440.LocalKey{
					Bound:    pep440.Present,
					Segments: []intstr.IntOrString{intstr.FromString("abc"), intstr.FromInt(7)},
				},
			},
			String: "1!2|pre:2.3|post:4|dev:5|local:abc.#7",
		},
		"1.0+020230101123456": {
			Key: pep440.Key{
				Release: []int{1},
				Pre:     pep440.PreKey{Bound: pep440.AboveAll},
				Post:    pep440.IntKey{Bound: pep440.BelowAll},
				Dev:     pep440.IntKey{Bound: pep440.AboveAll},
				Local: pep440.LocalKey{
					Bound:    pep440.Present,
					Segments: []intstr.IntOrString{intstr.FromString("20230101123456")},
				},
			},
			String: "0!1|pre:+|post:-|dev:+|local:#20230101123456",
		},
		"1.0.1a0.dev0": {
			Key: pep440.Key{
				Release: []int{1, 0, 1},
				Pre:     pep440.PreKey{Bound: pep440.Present, Rank: 0, N: 0},
				Post:    pep440.IntKey{Bound: pep440.BelowAll},
				Dev:     pep440.IntKey{Bound: pep440.Present, N: 0},
				Local:   pep440.LocalKey{Bound: pep440.BelowAll},
			},
			String: "0!1.0.1|pre:0.0|post:-|dev:0|local:-",
		},
	}
	for input, tc := range testcases {
		input, tc := input, tc
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			key := mustParseVersion(t, input).Key()
			if diff := cmp.Diff(tc.Key, key); diff != "" {
				t.Errorf("Key() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.String, key.String())
			assert.Equal(t, 0, key.Cmp(tc.Key))
		})
	}
}

func TestKeyFields(t *testing.T) {
	t.Parallel()
	// Each field's sub-key can be checked independently of the rest of the key.
	assert.Equal(t, 1, pep440.PreKey{Bound: pep440.AboveAll}.Cmp(pep440.PreKey{Bound: pep440.Present, Rank: 2, N: 1 << 30}))
	assert.Equal(t, -1, pep440.PreKey{Bound: pep440.Present, Rank: 1, N: 9}.Cmp(pep440.PreKey{Bound: pep440.Present, Rank: 2}))
	assert.Equal(t, -1, pep440.IntKey{Bound: pep440.BelowAll}.Cmp(pep440.IntKey{Bound: pep440.Present, N: 0}))
	assert.Equal(t, 1, pep440.IntKey{Bound: pep440.AboveAll}.Cmp(pep440.IntKey{Bound: pep440.Present, N: 1 << 30}))
	assert.Equal(t, 0, pep440.IntKey{Bound: pep440.AboveAll, N: 3}.Cmp(pep440.IntKey{Bound: pep440.AboveAll, N: 4}))

	str := func(segs ...string) pep440.LocalKey {
		ret := pep440.LocalKey{Bound: pep440.Present}
		for _, seg := range segs {
			ret.Segments = append(ret.Segments, intstr.Parse(seg))
		}
		return ret
	}
	assert.Equal(t, -1, pep440.LocalKey{Bound: pep440.BelowAll}.Cmp(str("a")))
	assert.Equal(t, -1, str("a").Cmp(str("a", "b")))
	assert.Equal(t, -1, str("zzz").Cmp(str("0")))
	assert.Equal(t, -1, str("2").Cmp(str("10")))
	assert.Equal(t, 0, str("ABC").Cmp(str("abc")))
	assert.Equal(t, 1, str("a1").Cmp(str("a01")))

	// intstr.Parse would truncate numbers that don't fit in an int32.
	big := func(digits string) pep440.LocalKey {
		return pep440.LocalKey{
			Bound:    pep440.Present,
			Segments: []intstr.IntOrString{intstr.FromString(digits)},
		}
	}
	assert.Equal(t, -1, str("9").Cmp(big("20230101123456")))
	assert.Equal(t, -1, str("2147483647").Cmp(big("2147483648")))
	assert.Equal(t, -1, big("20230101123456").Cmp(big("20230101123457")))
	assert.Equal(t, 1, big("20230101123456").Cmp(str("zzz")))
	assert.Equal(t, 0, big("020230101123456").Cmp(big("20230101123456")))
	assert.Equal(t, 0, big("007").Cmp(str("7")))

	assert.Equal(t, "-inf", pep440.BelowAll.String())
	assert.Equal(t, "present", pep440.Present.String())
	assert.Equal(t, "+inf", pep440.AboveAll.String())
}

func TestKeyHash(t *testing.T) {
	t.Parallel()
	testutil.QuickCheck(t,
		func(ver1, ver2 pep440.Version) bool {
			k1, k2 := ver1.Key(), ver2.Key()
			if (k1.Cmp(k2) == 0) != (k1.String() == k2.String()) {
				return false
			}
			if k1.String() == k2.String() && k1.Hash() != k2.Hash() {
				return false
			}
			return k1.Hash() == ver1.Hash()
		},
		testutil.QuickConfig{},
		[]interface{}{mustParseVersion(t, "1.0+a.1"), mustParseVersion(t, "1.0.0+A.01")},
		[]interface{}{mustParseVersion(t, "1.0.dev0"), mustParseVersion(t, "1.0")})
}
