// Package testutil provides shared assertions and position fixtures for the
// chessrules-go tests. It depends on no other internal package so that every
// package, the engine included, can use it from internal tests.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("mismatch (-want +got):\n%s", diff))
	}
}

// AssertEqualOpts is AssertEqual with extra cmp options, for types that
// need a custom comparer.
func AssertEqualOpts(t testing.TB, got, want interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		report(t, "", fmt.Sprintf("mismatch (-want +got):\n%s", diff))
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("unexpected error: %v", err))
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("error %v is not %v", err, target))
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("%q does not contain %q", got, substr))
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		report(t, formatMessage(msgAndArgs...), "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		report(t, formatMessage(msgAndArgs...), "expected false but got true")
	}
}

// fenFields names the six FEN fields for diff output.
var fenFields = []string{"placement", "side", "castling", "en passant", "halfmove", "fullmove"}

// AssertFEN compares two FEN strings field by field so that a failure names
// the fields that differ instead of dumping both strings.
func AssertFEN(t testing.TB, got, want string, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	g, w := splitFEN(got), splitFEN(want)
	diff := cmp.Diff(w, g)
	report(t, formatMessage(msgAndArgs...), fmt.Sprintf("FEN mismatch (-want +got):\n%s", diff))
}

func splitFEN(fen string) map[string]string {
	fields := strings.Fields(fen)
	named := make(map[string]string, len(fields))
	for i, f := range fields {
		if i < len(fenFields) {
			named[fenFields[i]] = f
		} else {
			named[fmt.Sprintf("extra%d", i)] = f
		}
	}
	return named
}

func report(t testing.TB, msg, detail string) {
	t.Helper()
	if msg != "" {
		t.Errorf("%s: %s", msg, detail)
	} else {
		t.Error(detail)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
