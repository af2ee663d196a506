package script

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind string

const (
	String  = Kind("string")
	Integer = Kind("int")
)

// Literal is an expected value written in a steps file.
type Literal struct {
	Kind  Kind
	Value any // string or int
	Text  string
}

// ParseLiteral parses a Go-quoted string or a decimal integer.
func ParseLiteral(s string) (Literal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Literal{}, fmt.Errorf("missing literal")
	}
	switch s[0] {
	case '"', '`':
		v, err := strconv.Unquote(s)
		if err != nil {
			return Literal{}, fmt.Errorf("bad string literal %s", s)
		}
		return Literal{Kind: String, Value: v, Text: s}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Literal{}, fmt.Errorf("bad literal %s: want quoted string or integer", s)
	}
	return Literal{Kind: Integer, Value: v, Text: s}, nil
}

func (l Literal) String() string {
	if l.Text != "" {
		return l.Text
	}
	if l.Kind == String {
		return strconv.Quote(l.Value.(string))
	}
	return fmt.Sprint(l.Value)
}
