package testutil

import (
	"errors"
	"reflect"
	"testing"

	"github.com/napalu/goopt/v2/i18n"
)

// AssertErrorIs checks that got matches want with errors.Is and, when args
// are given, that the matching error in the chain carries exactly those
// format arguments.
func AssertErrorIs(t *testing.T, got error, want i18n.TranslatableError, args ...any) bool {
	t.Helper()

	if !errors.Is(got, want) {
		t.Errorf("error mismatch:\ngot:  %v\nwant: %v", got, want)
		return false
	}
	if len(args) == 0 {
		return true
	}

	for current := got; current != nil; current = errors.Unwrap(current) {
		te, ok := current.(i18n.TranslatableError)
		if !ok || te.Key() != want.Key() {
			continue
		}
		if !reflect.DeepEqual(te.Args(), args) {
			t.Errorf("error arguments mismatch:\ngot:  %v\nwant: %v", te.Args(), args)
			return false
		}
		return true
	}

	t.Errorf("no error with key %q in chain %v", want.Key(), got)
	return false
}

// AssertErrorChain checks that every error in wantChain is found in got, in
// order from the outermost wrapper inwards.
func AssertErrorChain(t *testing.T, got error, wantChain ...error) bool {
	t.Helper()

	current := got
	for _, want := range wantChain {
		for current != nil && !matches(current, want) {
			current = errors.Unwrap(current)
		}
		if current == nil {
			t.Errorf("error %v not found in chain %v", want, got)
			return false
		}
		current = errors.Unwrap(current)
	}
	return true
}

// matches compares err itself with target, without looking at wrapped errors
func matches(err, target error) bool {
	if err == target {
		return true
	}
	if x, ok := err.(interface{ Is(error) bool }); ok {
		return x.Is(target)
	}
	return false
}
