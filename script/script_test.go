package script

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tmc/export-fixture/fixture"
)

func TestDefaultMatchesInitializerSteps(t *testing.T) {
	got := Default().Steps()
	want := fixture.InitializerSteps()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].Label, got[i].Label, "step %d", i+1)
		require.Equal(t, want[i].Expected, got[i].Expected, "step %d", i+1)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`comment line
-- steps --
# leading comment

foo() == "foo"
  getCount()==10
bar() == ` + "`bar`" + `
-- want --
PASS
`)
	s, err := Parse("sample", data)
	require.NoError(t, err)
	require.Equal(t, "comment line", s.Comment)
	require.Equal(t, "PASS\n", string(s.Want))

	want := []Assertion{
		{Line: 3, Export: "foo", Expected: Literal{Kind: String, Value: "foo", Text: `"foo"`}},
		{Line: 4, Export: "getCount", Expected: Literal{Kind: Integer, Value: 10, Text: "10"}},
		{Line: 5, Export: "bar", Expected: Literal{Kind: String, Value: "bar", Text: "`bar`"}},
	}
	if diff := cmp.Diff(want, s.Assertions); diff != "" {
		t.Errorf("assertions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no steps", "-- want --\nPASS\n", "bad: no steps file"},
		{"empty steps", "-- steps --\n# nothing\n", "bad: steps file has no assertions"},
		{"no comparison", "-- steps --\nfoo()\n", `bad:1: expected <export>() == <literal>, got "foo()"`},
		{"not a call", "-- steps --\nfoo == 1\n", `bad:1: expected a call like foo(), got "foo"`},
		{"unknown export", "-- steps --\nfoo() == \"foo\"\nqux() == 1\n", `bad:2: unknown export "qux"`},
		{"bad literal", "-- steps --\ngetCount() == ten\n", "bad:1: bad literal ten: want quoted string or integer"},
		{"missing literal", "-- steps --\ngetCount() ==\n", "bad:1: missing literal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad", []byte(tt.data))
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestLiteralString(t *testing.T) {
	require.Equal(t, `"a b"`, Literal{Kind: String, Value: "a b"}.String())
	require.Equal(t, "-3", Literal{Kind: Integer, Value: -3}.String())
	l, err := ParseLiteral("-3")
	require.NoError(t, err)
	require.Equal(t, "-3", l.String())
}
