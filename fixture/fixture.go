// Package fixture runs ordered assertion sequences against the exports of a
// lazily initialized module.
//
// The initializer sequence calls foo, getAnotherCount, getCount, bar and the
// two counters again, checking each result against a fixed literal:
//
//	err := fixture.Test(ctx, initializer.New(nil))
//
// Any type implementing Exports can be checked, so the same sequence can be
// reused against every conforming implementation.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Exports is the capability set a collaborator module provides.
type Exports interface {
	Foo() string
	Bar() string
	GetCount() int
	GetAnotherCount() int
}

// Step is one assertion: Call's result must equal Expected.
type Step struct {
	Label    string
	Call     func(Exports) any
	Expected any
}

// Outcome records a step that was executed.
type Outcome struct {
	Step     int // 1-based
	Label    string
	Expected any
	Actual   any
	Passed   bool
}

// Result is the record of one run.
type Result struct {
	Name     string
	Outcomes []Outcome
	Total    int   // number of steps in the sequence
	Err      error // first failure, nil on success
}

// Passed reports whether every step ran and held.
func (r *Result) Passed() bool {
	return r.Err == nil && len(r.Outcomes) == r.Total
}

// PassedCount returns the number of steps that held.
func (r *Result) PassedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Passed {
			n++
		}
	}
	return n
}

// ErrNoExports is returned when a run is started without a collaborator.
var ErrNoExports = errors.New("fixture: nil exports")

// Runner executes step sequences.
type Runner struct {
	Name   string
	Logger *zap.Logger
	Assert AssertFunc // defaults to Equals
}

// Run executes steps in order, stopping at the first failing assertion.
// The returned Result is never nil.
func (r *Runner) Run(ctx context.Context, exports Exports, steps []Step) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	assert := r.Assert
	if assert == nil {
		assert = Equals
	}
	res := &Result{Name: r.Name, Total: len(steps)}
	if isNil(exports) {
		res.Err = ErrNoExports
		return res, res.Err
	}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res, err
		}
		n := i + 1
		actual, err := call(step, exports)
		if err != nil {
			err = fmt.Errorf("step %d %s: %w", n, step.Label, err)
			logger.Warn("export panicked",
				zap.String("fixture", r.Name),
				zap.Int("step", n),
				zap.String("label", step.Label),
				zap.Error(err))
			res.Err = err
			return res, err
		}
		out := Outcome{Step: n, Label: step.Label, Expected: step.Expected, Actual: actual}
		if err := assert(step.Label, step.Expected, actual); err != nil {
			res.Outcomes = append(res.Outcomes, out)
			var ae *AssertionError
			if errors.As(err, &ae) {
				ae.Step = n
			} else {
				err = fmt.Errorf("step %d %s: %w", n, step.Label, err)
			}
			logger.Warn("assertion failed",
				zap.String("fixture", r.Name),
				zap.Int("step", n),
				zap.String("label", step.Label),
				zap.Error(err))
			res.Err = err
			return res, err
		}
		out.Passed = true
		res.Outcomes = append(res.Outcomes, out)
		logger.Debug("assertion held",
			zap.String("fixture", r.Name),
			zap.Int("step", n),
			zap.String("label", step.Label))
	}
	return res, nil
}

// PanicError wraps a value recovered from a panicking export.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func call(step Step, exports Exports) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{Value: p}
		}
	}()
	return step.Call(exports), nil
}

// isNil reports whether e is nil, a nil pointer, or a Recorder around one.
func isNil(e Exports) bool {
	for e != nil {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return true
		}
		rec, ok := e.(*Recorder)
		if !ok {
			return false
		}
		e = rec.Exports
	}
	return true
}

// InitializerSteps returns the initializer sequence. getAnotherCount and
// getCount are each called twice and must report the same values both times.
func InitializerSteps() []Step {
	return []Step{
		{Label: "foo()", Call: callFoo, Expected: "foo"},
		{Label: "getAnotherCount()", Call: callGetAnotherCount, Expected: 1},
		{Label: "getCount()", Call: callGetCount, Expected: 10},
		{Label: "bar()", Call: callBar, Expected: "bar"},
		{Label: "getAnotherCount()", Call: callGetAnotherCount, Expected: 1},
		{Label: "getCount()", Call: callGetCount, Expected: 10},
	}
}

func callFoo(e Exports) any             { return e.Foo() }
func callBar(e Exports) any             { return e.Bar() }
func callGetCount(e Exports) any        { return e.GetCount() }
func callGetAnotherCount(e Exports) any { return e.GetAnotherCount() }

// Call returns the step function for the named export, as written in
// assertion labels without parentheses.
func Call(name string) (func(Exports) any, bool) {
	switch name {
	case "foo":
		return callFoo, true
	case "bar":
		return callBar, true
	case "getCount":
		return callGetCount, true
	case "getAnotherCount":
		return callGetAnotherCount, true
	}
	return nil, false
}

// Test runs the initializer sequence against exports and returns the first
// failure, if any.
func Test(ctx context.Context, exports Exports) error {
	r := &Runner{Name: "initializer"}
	_, err := r.Run(ctx, exports, InitializerSteps())
	return err
}

// Start runs Test in its own goroutine. The returned channel receives exactly
// one value and is then closed. A panicking export is delivered as a
// *PanicError.
func Start(ctx context.Context, exports Exports) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- Test(ctx, exports)
	}()
	return done
}
