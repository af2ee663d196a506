package fixture

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// AssertFunc compares an expected literal with the value a call produced.
// It returns nil when they are equal.
type AssertFunc func(label string, expected, actual any) error

// AssertionError is returned when a call result does not equal the expected
// literal.
type AssertionError struct {
	Step     int
	Label    string
	Expected any
	Actual   any
	Diff     string // (-expected +actual)
}

func (e *AssertionError) Error() string {
	if e.Step > 0 {
		return fmt.Sprintf("step %d: %s: expected %#v, got %#v", e.Step, e.Label, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: expected %#v, got %#v", e.Label, e.Expected, e.Actual)
}

// Equals is the default assertion primitive. Values of different dynamic
// types are never equal, so 10 and "10" do not match.
func Equals(label string, expected, actual any) error {
	if cmp.Equal(expected, actual) {
		return nil
	}
	return &AssertionError{
		Label:    label,
		Expected: expected,
		Actual:   actual,
		Diff:     cmp.Diff(expected, actual),
	}
}
