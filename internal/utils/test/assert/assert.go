// Package assert holds go-cmp backed test assertions that stop the test on failure
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// errors are equal when their messages are
var compareErrors = cmp.Comparer(func(e1, e2 error) bool {
	if e1 == nil || e2 == nil {
		return e1 == nil && e2 == nil
	}
	return e1.Error() == e2.Error()
})

func options(expected interface{}) []cmp.Option {
	if _, ok := expected.(error); ok {
		return []cmp.Option{compareErrors}
	}
	return nil
}

// Equal fails the test with the go-cmp diff when expected and actual differ
func Equal(t testing.TB, expected, actual interface{}) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, options(expected)...); diff != "" {
		if s, ok := expected.(string); ok {
			t.Fatalf("\nnot equal ( actual, expected )\n\t%q\n\t%q", actual, s)
		}
		t.Fatalf("\nnot equal (-expected +actual):\n%s", diff)
	}
}

// True fails the test with the message unless o is true
func True(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || !b {
		t.Fatalf("\n"+format, args...)
	}
}

// False fails the test with the message unless o is false
func False(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || b {
		t.Fatalf("\n"+format, args...)
	}
}

// Nil fails the test if o holds a value
func Nil(t testing.TB, o interface{}) {
	t.Helper()
	if !isNil(o) {
		t.Fatalf("\nexpected nil, got %T{%+v}", o, o)
	}
}

// NotNil fails the test if o is nil
func NotNil(t testing.TB, o interface{}) {
	t.Helper()
	if isNil(o) {
		t.Fatalf("\nexpected a value, got nil %T", o)
	}
}

// ErrorIs fails the test unless target is found in the chain of err
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("\nerror chain does not hold the target ( actual, target )\n\t%v\n\t%v", err, target)
	}
}

// Contains fails the test unless s contains substr
func Contains(t testing.TB, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("\nsubstring not found ( actual, substring )\n\t%q\n\t%q", s, substr)
	}
}

func isNil(o interface{}) bool {
	if o == nil {
		return true
	}
	switch v := reflect.ValueOf(o); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}
