// Package script loads assertion sequences from txtar archives.
//
// An archive holds a "steps" file with one assertion per line:
//
//	# comments and blank lines are ignored
//	foo() == "foo"
//	getCount() == 10
//
// The optional "want" and "err" files hold the expected report and the
// expected error text; they are read by golden tests.
package script

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/export-fixture/fixture"
	"golang.org/x/tools/txtar"
)

//go:embed initializer.txtar
var initializerScript []byte

// Assertion is one parsed line of a steps file.
type Assertion struct {
	Line     int
	Export   string
	Expected Literal
}

// Script is a parsed archive.
type Script struct {
	Name       string
	Comment    string
	Assertions []Assertion
	Want       []byte // expected report, if present
	Err        []byte // expected error text, if present
}

// ParseError reports a malformed script.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// ParseFile reads and parses the archive at path. The script is named after
// the file without its extension.
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, data)
}

// Parse parses archive data.
func Parse(name string, data []byte) (*Script, error) {
	archive := txtar.Parse(data)
	s := &Script{Name: name, Comment: strings.TrimSpace(string(archive.Comment))}
	var steps []byte
	found := false
	for _, f := range archive.Files {
		switch f.Name {
		case "steps":
			steps, found = f.Data, true
		case "want":
			s.Want = f.Data
		case "err":
			s.Err = f.Data
		}
	}
	if !found {
		return nil, &ParseError{File: name, Msg: "no steps file"}
	}

	for i, line := range strings.Split(string(steps), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := parseAssertion(line)
		if err != nil {
			return nil, &ParseError{File: name, Line: i + 1, Msg: err.Error()}
		}
		a.Line = i + 1
		s.Assertions = append(s.Assertions, a)
	}
	if len(s.Assertions) == 0 {
		return nil, &ParseError{File: name, Msg: "steps file has no assertions"}
	}
	return s, nil
}

func parseAssertion(line string) (Assertion, error) {
	call, lit, ok := strings.Cut(line, "==")
	if !ok {
		return Assertion{}, fmt.Errorf("expected <export>() == <literal>, got %q", line)
	}
	call = strings.TrimSpace(call)
	export, ok := strings.CutSuffix(call, "()")
	if !ok || export == "" {
		return Assertion{}, fmt.Errorf("expected a call like foo(), got %q", call)
	}
	if _, ok := fixture.Call(export); !ok {
		return Assertion{}, fmt.Errorf("unknown export %q", export)
	}
	expected, err := ParseLiteral(lit)
	if err != nil {
		return Assertion{}, err
	}
	return Assertion{Export: export, Expected: expected}, nil
}

// Steps converts the assertions into a step sequence.
func (s *Script) Steps() []fixture.Step {
	steps := make([]fixture.Step, 0, len(s.Assertions))
	for _, a := range s.Assertions {
		call, _ := fixture.Call(a.Export)
		steps = append(steps, fixture.Step{
			Label:    a.Export + "()",
			Call:     call,
			Expected: a.Expected.Value,
		})
	}
	return steps
}

// Default returns the embedded initializer script.
func Default() *Script {
	s, err := Parse("initializer", initializerScript)
	if err != nil {
		panic(err)
	}
	return s
}
