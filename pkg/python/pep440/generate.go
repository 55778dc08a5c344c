// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing/quick"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// versionGenerator builds random versions for testing/quick.  Segment counts and lengths are
// drawn from a size budget, so larger sizes give longer versions.
type versionGenerator struct {
	rand   *rand.Rand
	budget int
}

func (g *versionGenerator) coin() bool {
	return g.rand.Intn(2) == 1
}

// number favors small values (and especially 0) so that pairs of generated versions often
// share a prefix, which is where comparison bugs hide.
func (g *versionGenerator) number() int {
	switch g.rand.Intn(4) {
	case 0:
		return 0
	case 1:
		return g.rand.Intn(3)
	default:
		return g.rand.Intn(3000)
	}
}

func (g *versionGenerator) optional() *int {
	if !g.coin() {
		return nil
	}
	n := g.number()
	return &n
}

// count returns a length in [1, max], spending it from the budget.
func (g *versionGenerator) count(max int) int {
	limit := g.budget
	if limit > max {
		limit = max
	}
	if limit < 1 {
		limit = 1
	}
	n := 1 + g.rand.Intn(limit)
	g.budget -= n
	return n
}

// phase picks a pre-release phase, sometimes using an alternate spelling.
func (g *versionGenerator) phase() Phase {
	spellings := [][]Phase{
		{PhaseAlpha, "alpha", "A"},
		{PhaseBeta, "beta", "B"},
		{PhaseRC, "c", "pre", "preview", "RC"},
	}[g.rand.Intn(3)]
	if g.rand.Intn(4) != 0 {
		return spellings[0]
	}
	return spellings[g.rand.Intn(len(spellings))]
}

func (g *versionGenerator) localSegment() intstr.IntOrString {
	if g.coin() {
		if g.rand.Intn(8) == 0 {
			// Too big for an int32, like a timestamp.
			return intstr.FromString(strconv.FormatInt(1e10+g.rand.Int63n(1e14), 10))
		}
		return intstr.FromInt(g.number())
	}
	const (
		letters   = "abcdefghijklmnopqrstuvwxyzABCXYZ"
		alnum     = letters + "0123456789"
		maxLength = 10
	)
	buf := make([]byte, g.count(maxLength))
	// A leading letter keeps the segment from being all digits.
	buf[0] = letters[g.rand.Intn(len(letters))]
	for i := 1; i < len(buf); i++ {
		buf[i] = alnum[g.rand.Intn(len(alnum))]
	}
	return intstr.FromString(string(buf))
}

func (g *versionGenerator) public() PublicVersion {
	var ver PublicVersion
	if g.coin() {
		ver.Epoch = g.number()
	}
	ver.Release = make([]int, g.count(10))
	for i := range ver.Release {
		ver.Release[i] = g.number()
	}
	if g.coin() {
		ver.Pre = &PreRelease{L: g.phase(), N: g.number()}
	}
	ver.Post = g.optional()
	ver.Dev = g.optional()
	return ver
}

func (g *versionGenerator) local() LocalVersion {
	var ver LocalVersion
	if g.coin() {
		ver.Local = make([]intstr.IntOrString, g.count(10))
		for i := range ver.Local {
			ver.Local[i] = g.localSegment()
		}
	}
	ver.PublicVersion = g.public()
	return ver
}

// Generate implements testing/quick.Generator.
func (PublicVersion) Generate(rand *rand.Rand, size int) reflect.Value {
	g := &versionGenerator{rand: rand, budget: size}
	return reflect.ValueOf(g.public())
}

// Generate implements testing/quick.Generator.
func (LocalVersion) Generate(rand *rand.Rand, size int) reflect.Value {
	g := &versionGenerator{rand: rand, budget: size}
	return reflect.ValueOf(g.local())
}

var (
	_ quick.Generator = PublicVersion{}
	_ quick.Generator = LocalVersion{}
)
