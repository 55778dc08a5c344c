// Copyright (C) 2021-2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump returns a deterministic, deep, human-readable rendering of the values, ignoring any
// String methods they have.
func Dump(vals ...interface{}) string {
	return spewConfig.Sdump(vals...)
}

// AssertEqualLines asserts that two lists of lines are equal, and if they are not, reports a
// unified diff between them rather than the two full lists.
func AssertEqualLines(t *testing.T, exp, act []string) bool {
	t.Helper()

	expStr := strings.Join(exp, "\n") + "\n"
	actStr := strings.Join(act, "\n") + "\n"
	if expStr == actStr {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expStr),
		B:        difflib.SplitLines(actStr),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})
	t.Errorf("Not equal:\n%s", diff)
	return false
}
