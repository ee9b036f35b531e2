package testing

import (
	"errors"
	"reflect"
	"testing"
)

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// AssertError asserts that err matches target.
func AssertError(t testing.TB, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected error '%v', got '%v'", target, err)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertSame asserts that two pointers refer to the same node.
func AssertSame[T any](t testing.TB, a, b *T) {
	t.Helper()

	if a != b {
		t.Fatalf("expected '%p' to be the same node as '%p'", a, b)
	}
}
