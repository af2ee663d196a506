package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/tmc/export-fixture/fixture"
	"golang.org/x/tools/txtar"
)

//go:embed templates.txt
var defaultTemplates string

// ANSI escape codes
const (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

// loadTemplates parses the report template from path, falling back to the
// embedded templates when path is empty.
func loadTemplates(path string, color bool) (*template.Template, error) {
	templateData := defaultTemplates
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading templates: %w", err)
		}
		templateData = string(data)
	}

	archive := txtar.Parse([]byte(templateData))
	var reportTmpl string
	for _, file := range archive.Files {
		if file.Name == "report.tmpl" {
			reportTmpl = string(file.Data)
		}
	}
	if reportTmpl == "" {
		return nil, fmt.Errorf("templates %q: missing report.tmpl", path)
	}

	return template.New("report").Funcs(template.FuncMap{
		"status": func(passed bool) string {
			return status(passed, color)
		},
		"literal": func(v any) string {
			return fmt.Sprintf("%#v", v)
		},
		"isAssertion": func(err error) bool {
			var ae *fixture.AssertionError
			return errors.As(err, &ae)
		},
	}).Parse(reportTmpl)
}

func status(passed, color bool) string {
	s, c := "PASS", green
	if !passed {
		s, c = "FAIL", red
	}
	if !color {
		return s
	}
	return c + s + reset
}
