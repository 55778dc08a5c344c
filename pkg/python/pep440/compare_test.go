// Copyright (C) 2021-2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/datawire/pyver/pkg/python/pep440"
	"github.com/datawire/pyver/pkg/testutil"
)

func TestSort(t *testing.T) {
	t.Parallel()
	for tcName, tcData := range loadOrdering(t) {
		strs := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			rand := rand.New(rand.NewSource(time.Now().UnixNano()))

			vers := make([]pep440.Version, 0, len(strs))
			exps := make([]string, 0, len(strs))
			for _, str := range strs {
				ver := mustParseVersion(t, str)
				vers = append(vers, ver)
				exps = append(exps, ver.String())
			}

			// Adjacent entries are strictly ordered.
			for i := 1; i < len(vers); i++ {
				assert.Equalf(t, -1, vers[i-1].Cmp(vers[i]), "%q < %q", strs[i-1], strs[i])
				assert.Equalf(t, 1, vers[i].Cmp(vers[i-1]), "%q > %q", strs[i], strs[i-1])
			}

			toStrings := func(vers []pep440.Version) []string {
				ret := make([]string, 0, len(vers))
				for _, ver := range vers {
					ret = append(ret, ver.String())
				}
				return ret
			}

			shuffled := append([]pep440.Version(nil), vers...)
			rand.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			pep440.Sort(shuffled)
			testutil.AssertEqualLines(t, exps, toStrings(shuffled))

			reversed := make([]pep440.Version, 0, len(vers))
			for i := len(vers) - 1; i >= 0; i-- {
				reversed = append(reversed, vers[i])
			}
			sort.Sort(pep440.Versions(reversed))
			testutil.AssertEqualLines(t, exps, toStrings(reversed))

			max, ok := pep440.Max(shuffled)
			require.True(t, ok)
			assert.Equal(t, exps[len(exps)-1], max.String())
		})
	}
}

func TestSortStable(t *testing.T) {
	t.Parallel()
	strs := []string{"1.0.0", "0.9", "1", "v1.0", "1.0+x", "01.0"}
	vers := make([]pep440.Version, 0, len(strs))
	for _, str := range strs {
		vers = append(vers, mustParseVersion(t, str))
	}
	pep440.Sort(vers)
	acts := make([]string, 0, len(vers))
	for _, ver := range vers {
		acts = append(acts, ver.OriginalText())
	}
	testutil.AssertEqualLines(t, []string{"0.9", "1.0.0", "1", "v1.0", "01.0", "1.0+x"}, acts)
}

func TestEquality(t *testing.T) {
	t.Parallel()

	staticInputs := []pep440.Version{
		mustParseVersion(t, "1.0.dev0"),
		mustParseVersion(t, "0!0.0.0+0"),
		{
			PublicVersion: pep440.PublicVersion{Release: []int{0, 0}, Pre: &pep440.PreRelease{L: pep440.PhaseRC}},
			Local:         []intstr.IntOrString{intstr.FromString("a0"), intstr.FromInt(0)},
		},
	}

	testutil.QuickCheck(t,
		// test function
		func(ver1 pep440.Version) bool {
			_ver2, err := pep440.ParseVersion(ver1.String())
			if err != nil || _ver2 == nil {
				return false
			}
			ver2 := *_ver2
			return (ver1.Cmp(ver2) == 0) && (ver2.Cmp(ver1) == 0) &&
				ver1.Equal(ver2) &&
				ver1.Hash() == ver2.Hash() &&
				ver2.String() == ver1.String()
		},
		testutil.QuickConfig{},
		func() [][]interface{} {
			ret := make([][]interface{}, len(staticInputs))
			for i := range ret {
				ret[i] = []interface{}{staticInputs[i]}
			}
			return ret
		}()...)
}

func TestSymmetry(t *testing.T) {
	t.Parallel()
	const (
		partNone = iota
		partEpoch
		partRel
		partPre
		partPost
		partDev
		partLocal
	)
	names := []string{
		"none",
		"epoch",
		"rel",
		"pre",
		"post",
		"dev",
		"local",
	}
	staticInputs := [][2]pep440.Version{
		{mustParseVersion(t, "1.0+1.0"), mustParseVersion(t, "1.0+1.0.0")},
		{mustParseVersion(t, "1.0+1.foo"), mustParseVersion(t, "1.0+1.bar")},
		{mustParseVersion(t, "1.0.dev1"), mustParseVersion(t, "1.0rc1")},
	}

	statics := make([][]interface{}, len(staticInputs))
	for i := range statics {
		statics[i] = []interface{}{
			staticInputs[i][0],
			staticInputs[i][1],
		}
	}

	for lockdown := partNone; lockdown <= partLocal; lockdown++ {
		lockdown := lockdown
		t.Run("lockdown-"+names[lockdown], func(t *testing.T) {
			t.Parallel()
			testutil.QuickCheck(t,
				func(ver1, ver2 pep440.Version) bool {
					if lockdown >= partEpoch {
						ver2.Epoch = ver1.Epoch
					}
					if lockdown >= partRel {
						ver2.Release = ver1.Release
					}
					if lockdown >= partPre {
						ver2.Pre = ver1.Pre
					}
					if lockdown >= partPost {
						ver2.Post = ver1.Post
					}
					if lockdown >= partDev {
						ver2.Dev = ver1.Dev
					}
					if lockdown >= partLocal {
						ver2.Local = ver1.Local
					}
					ret := ver1.Cmp(ver2) == -ver2.Cmp(ver1)
					if lockdown == partLocal {
						ret = ret && ver1.Cmp(ver2) == 0 && ver2.Cmp(ver1) == 0
					}
					if !ret {
						t.Logf("failing:\n\tver1=%s\n\tver2=%s\n\tver1.Cmp(ver2)=%v\n\tver2.Cmp(ver1)=%v",
							ver1, ver2,
							ver1.Cmp(ver2), ver2.Cmp(ver1))
					}
					return ret
				},
				testutil.QuickConfig{},
				statics...)
		})
	}
}

func TestTransitivity(t *testing.T) {
	t.Parallel()
	sign := func(x int) int {
		switch {
		case x < 0:
			return -1
		case x > 0:
			return 1
		default:
			return 0
		}
	}
	testutil.QuickCheck(t,
		func(a, b, c pep440.Version) bool {
			ab, bc, ac := a.Cmp(b), b.Cmp(c), a.Cmp(c)
			for _, d := range []int{ab, bc, ac} {
				if d != sign(d) {
					return false
				}
			}
			switch {
			case ab <= 0 && bc <= 0:
				return ac <= 0 && (ac < 0) == (ab < 0 || bc < 0)
			case ab >= 0 && bc >= 0:
				return ac >= 0 && (ac > 0) == (ab > 0 || bc > 0)
			default:
				return true
			}
		},
		testutil.QuickConfig{MaxCount: 1000},
		[]interface{}{
			mustParseVersion(t, "1.0rc1"),
			mustParseVersion(t, "1.0.dev1"),
			mustParseVersion(t, "1.0"),
		},
		[]interface{}{
			mustParseVersion(t, "1.0+a"),
			mustParseVersion(t, "1.0+a.0"),
			mustParseVersion(t, "1.0+0"),
		})
}

func TestUtilMethods(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Input pep440.Version

		Major         int
		Minor         int
		Micro         int
		IsPreRelease  bool
		IsPostRelease bool
		IsDevRelease  bool

		LocalString  string
		LocalIsFinal bool

		PublicString  string
		PublicIsFinal bool
	}
	//nolint:lll
	testcases := []TestCase{
		{mustParseVersion(t, "1           "), 1, 0, 0, false, false, false /*local*/, "1           ", true /**public*/, "1           ", true},
		{mustParseVersion(t, "1+par       "), 1, 0, 0, false, false, false /*local*/, "1+par       ", false /*public*/, "1           ", true},
		{mustParseVersion(t, "1.2         "), 1, 2, 0, false, false, false /*local*/, "1.2         ", true /**public*/, "1.2         ", true},
		{mustParseVersion(t, "1.2.3       "), 1, 2, 3, false, false, false /*local*/, "1.2.3       ", true /**public*/, "1.2.3       ", true},
		{mustParseVersion(t, "1.2rc2      "), 1, 2, 0, true, false, false /**local*/, "1.2rc2      ", false /*public*/, "1.2rc2      ", false},
		{mustParseVersion(t, "1.2rc2.post3"), 1, 2, 0, true, true, false /**local*/, "1.2rc2.post3", false /*public*/, "1.2rc2.post3", false},
		{mustParseVersion(t, "1.2rc2+par  "), 1, 2, 0, true, false, false /**local*/, "1.2rc2+par  ", false /*public*/, "1.2rc2      ", false},
		{mustParseVersion(t, "1.2.dev0    "), 1, 2, 0, true, false, true /**local*/, "1.2.dev0    ", false /*public*/, "1.2.dev0    ", false},
		{mustParseVersion(t, "1.2.post0   "), 1, 2, 0, false, true, false /*local*/, "1.2.post0   ", false /*public*/, "1.2.post0   ", false},
	}
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.Input.String(), func(t *testing.T) {
			assert.Equal(t, tc.Major, tc.Input.Major(), "Major")
			assert.Equal(t, tc.Minor, tc.Input.Minor(), "Minor")
			assert.Equal(t, tc.Micro, tc.Input.Micro(), "Micro")
			assert.Equal(t, tc.IsPreRelease, tc.Input.IsPreRelease(), "IsPreRelease")
			assert.Equal(t, tc.IsPostRelease, tc.Input.IsPostRelease(), "IsPostRelease")
			assert.Equal(t, tc.IsDevRelease, tc.Input.IsDevRelease(), "IsDevRelease")

			assert.Equal(t, strings.TrimSpace(tc.LocalString), tc.Input.String(), "LocalVersion.String")
			assert.Equal(t, tc.LocalIsFinal, tc.Input.IsFinal(), "LocalVersion.IsFinal")

			assert.Equal(t, strings.TrimSpace(tc.PublicString), tc.Input.PublicVersion.String(), "PublicVersion.String")
			assert.Equal(t, tc.PublicIsFinal, tc.Input.PublicVersion.IsFinal(), "PublicVersion.IsFinal")
			assert.Equal(t, strings.TrimSpace(tc.PublicString), tc.Input.Public().String(), "Public")
		})
	}
}

func TestPublicCmp(t *testing.T) {
	t.Parallel()
	a := mustParseVersion(t, "1.0+abc")
	b := mustParseVersion(t, "1.0")
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, 0, a.PublicVersion.Cmp(b.PublicVersion))

	// Public returns a copy; mutating it leaves the original alone.
	pub := a.Public()
	pub.Release[0] = 7
	assert.Equal(t, "1.0+abc", a.String())
}
