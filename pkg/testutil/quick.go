// Copyright (C) 2021-2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

// QuickConfig is testing/quick.Config, re-exported so that callers don't need to import both
// packages.
type QuickConfig = quick.Config

// QuickCheck is similar to testing/quick.Check, but takes an additional list of static items to
// feed as inputs.  Each static item is a list of arguments to call fn with; use it to pin
// inputs that once failed.
func QuickCheck(t *testing.T, fn interface{}, cfg QuickConfig, statics ...[]interface{}) {
	t.Helper()
	if !checkRandom(t, quick.Check(fn, &cfg)) {
		return
	}
	fnVal := reflect.ValueOf(fn)
	forEachStatic(t, fnVal.Type(), statics, func(i int, args []reflect.Value) error {
		if fnVal.Call(args)[0].Bool() {
			return nil
		}
		return &quick.CheckError{
			Count: i + 1,
			In:    toInterfaces(args),
		}
	})
}

// QuickCheckEqual is similar to testing/quick.CheckEqual, but takes an additional list of static
// items to feed as inputs.
func QuickCheckEqual(t *testing.T, fn1, fn2 interface{}, cfg QuickConfig, statics ...[]interface{}) {
	t.Helper()
	if !checkRandom(t, quick.CheckEqual(fn1, fn2, &cfg)) {
		return
	}
	fn1Val := reflect.ValueOf(fn1)
	fn2Val := reflect.ValueOf(fn2)
	forEachStatic(t, fn1Val.Type(), statics, func(i int, args []reflect.Value) error {
		out1 := toInterfaces(fn1Val.Call(args))
		out2 := toInterfaces(fn2Val.Call(args))
		if reflect.DeepEqual(out1, out2) {
			return nil
		}
		return &quick.CheckEqualError{
			CheckError: quick.CheckError{
				Count: i + 1,
				In:    toInterfaces(args),
			},
			Out1: out1,
			Out2: out2,
		}
	})
}

// checkRandom reports the result of the randomized part of a check, and returns whether it
// makes sense to go on to the static inputs.
func checkRandom(t *testing.T, err error) bool {
	t.Helper()
	assert.NoError(t, err)
	var setupErr quick.SetupError
	return !errors.As(err, &setupErr)
}

func forEachStatic(t *testing.T, fnType reflect.Type, statics [][]interface{},
	check func(i int, args []reflect.Value) error) {
	t.Helper()
	for i, static := range statics {
		if len(static) != fnType.NumIn() {
			t.Errorf("static#%d has %d args, but the function takes %d args",
				i, len(static), fnType.NumIn())
			continue
		}
		args := make([]reflect.Value, len(static))
		for j := range args {
			args[j] = reflect.ValueOf(static[j])
		}
		if err := check(i, args); err != nil {
			assert.NoError(t, fmt.Errorf("static%w", err))
			t.Logf("static#%d inputs:\n%s", i, Dump(static...))
		}
	}
}

func toInterfaces(values []reflect.Value) []interface{} {
	ret := make([]interface{}, len(values))
	for i, val := range values {
		ret[i] = val.Interface()
	}
	return ret
}
