package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths cannot be exercised without a fake *testing.T, so these
// tests cover the success cases and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e4", "e4")
	AssertEqual(t, 20, 20)
	AssertEqual(t, []string{"e2e3", "e2e4"}, []string{"e2e3", "e2e4"})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("context: %w", sentinel)

	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
	AssertError(t, sentinel)
	AssertErrorIs(t, wrapped, sentinel)
	AssertErrorIs(t, sentinel, sentinel, "move %s", "e2e5")
}

func TestAssertStrings_Success(t *testing.T) {
	AssertContains(t, "illegal move", "illegal")
	AssertContains(t, "test", "")
	AssertNotContains(t, "in progress", "checkmate")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, len("e2e4") == 4)
	AssertFalse(t, 1 == 2)
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)

	x := 42
	AssertNotNil(t, &x)
	AssertNotNil(t, []int{1, 2, 3})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format multiple", []interface{}{"%s %d %s", "ply", 3, "end"}, "ply 3 end"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
