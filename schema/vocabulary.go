package schema

import (
	"strings"

	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// PredicateName returns the dotted semstreams predicate for a field of t,
// e.g. cdi.instancevariable.physicalDataType.
func PredicateName(prefix string, t *Type, f *Field) string {
	return strings.ToLower(prefix) + "." + strings.ToLower(t.Name) + "." + f.Name
}

// RegisterVocabulary registers the predicates of every own field of types
// with the semstreams vocabulary registry.
func RegisterVocabulary(prefix string, types []*Type) {
	for _, t := range types {
		for _, f := range t.Fields {
			desc := f.Description
			if desc == "" {
				desc = t.Name + " " + f.Name
			}
			ucmis.RegisterPredicate(PredicateName(prefix, t, f), f.Predicate, desc, DataType(f))
		}
	}
}

// DataType names the Go value type a field holds.
func DataType(f *Field) string {
	switch f.Kind {
	case KindEnum:
		return "string"
	case KindObject:
		return "entity_id"
	case KindAny:
		return "any"
	}
	if len(f.Range) == 0 {
		return "string"
	}
	switch strings.TrimPrefix(f.Range[0], ucmis.XSD) {
	case "integer", "int", "long":
		return "int64"
	case "boolean":
		return "bool"
	case "decimal", "double", "float":
		return "float64"
	case "date", "dateTime":
		return "time.Time"
	default:
		return "string"
	}
}
