package rdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// ErrLexical is returned when a typed literal does not parse as its datatype.
var ErrLexical = errors.New("invalid lexical form")

var dateLayouts = []string{"2006-01-02", "2006-01-02Z07:00"}

var dateTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999999"}

// Native converts an RDF value to its Go form.
//
//	xsd:string, anyURI, language, untyped   string
//	language-tagged                         quad.LangString
//	xsd:integer and its restrictions        int64
//	xsd:boolean                             bool
//	xsd:decimal, double, float              float64
//	xsd:date, dateTime                      time.Time
//	IRI, blank node                         string
//
// Literals with an unrecognized datatype convert to their lexical form.
// A typed literal whose lexical form does not parse returns the lexical
// form together with an error wrapping ErrLexical.
func Native(v quad.Value) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case quad.String:
		return string(v), nil
	case quad.LangString:
		return v, nil
	case quad.TypedString:
		return typedNative(string(v.Value), string(v.Type))
	case quad.IRI:
		return string(v), nil
	case quad.BNode:
		return string(v), nil
	case quad.Int:
		return int64(v), nil
	case quad.Float:
		return float64(v), nil
	case quad.Bool:
		return bool(v), nil
	case quad.Time:
		return time.Time(v), nil
	default:
		return v.Native(), nil
	}
}

func typedNative(lexical, datatype string) (any, error) {
	if !strings.HasPrefix(datatype, ucmis.XSD) {
		return lexical, nil
	}
	switch strings.TrimPrefix(datatype, ucmis.XSD) {
	case "integer", "int", "long", "short", "byte",
		"nonNegativeInteger", "positiveInteger", "nonPositiveInteger", "negativeInteger",
		"unsignedInt", "unsignedLong", "unsignedShort", "unsignedByte":
		n, err := strconv.ParseInt(strings.TrimSpace(lexical), 10, 64)
		if err != nil {
			return lexical, fmt.Errorf("%w: %q as %s", ErrLexical, lexical, datatype)
		}
		return n, nil
	case "boolean":
		switch strings.TrimSpace(lexical) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return lexical, fmt.Errorf("%w: %q as %s", ErrLexical, lexical, datatype)
	case "decimal", "double", "float":
		f, err := strconv.ParseFloat(strings.TrimSpace(lexical), 64)
		if err != nil {
			return lexical, fmt.Errorf("%w: %q as %s", ErrLexical, lexical, datatype)
		}
		return f, nil
	case "date":
		return parseTime(lexical, datatype, dateLayouts)
	case "dateTime":
		return parseTime(lexical, datatype, dateTimeLayouts)
	default:
		return lexical, nil
	}
}

func parseTime(lexical, datatype string, layouts []string) (any, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, strings.TrimSpace(lexical)); err == nil {
			return t, nil
		}
	}
	return lexical, fmt.Errorf("%w: %q as %s", ErrLexical, lexical, datatype)
}

// Lexical returns the string form of a value without RDF syntax:
// the literal text, the bare IRI, or the blank node label.
func Lexical(v quad.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case quad.String:
		return string(v)
	case quad.LangString:
		return string(v.Value)
	case quad.TypedString:
		return string(v.Value)
	case quad.IRI:
		return string(v)
	case quad.BNode:
		return string(v)
	default:
		return fmt.Sprint(v.Native())
	}
}

// IsNode reports whether v is an IRI or blank node.
func IsNode(v quad.Value) bool {
	switch v.(type) {
	case quad.IRI, quad.BNode:
		return true
	}
	return false
}
