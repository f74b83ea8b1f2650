// Package schema defines the runtime descriptors that generated ontology
// types carry.
//
// Generated code describes each type with a *Type: its ontology IRI, its
// direct supertype, a constructor, and a table of own Fields. Each Field
// holds the wire predicate, the cardinality, and typed accessor closures, so
// mappers and serializers never need reflection to reach a field.
//
// A generated struct embeds its supertype struct. Types with a supertype
// implement Derived so that callers can move from a subtype value to the
// embedded supertype value when walking Type.Super.
package schema

import (
	"fmt"
	"strings"
)

// Object is implemented by every generated ontology type.
type Object interface {
	OntologyType() *Type
}

// Derived is implemented by generated types that have a supertype.
// Base returns a pointer to the embedded supertype value.
type Derived interface {
	Object
	Base() Object
}

// Kind classifies what a field holds.
type Kind int

const (
	// KindLiteral fields hold primitive values.
	KindLiteral Kind = iota
	// KindEnum fields hold enumeration members.
	KindEnum
	// KindObject fields hold other ontology objects.
	KindObject
	// KindAny fields accept primitives and objects.
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindAny:
		return "any"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Type describes one generated ontology type.
type Type struct {
	Name        string
	IRI         string
	Description string
	// Super is the direct supertype, nil for roots.
	Super *Type
	// Fields are the type's own fields; inherited fields live on Super.
	Fields []*Field
	New    func() Object
}

// Field describes one generated field.
type Field struct {
	// Name is the field name after reserved-word and collision renaming.
	Name string
	// Predicate is the full IRI of the wire predicate.
	Predicate string
	// Range lists the declared range IRIs.
	Range       []string
	Kind        Kind
	List        bool
	Optional    bool
	Description string
	Enum        *Enum
	// Set stores one converted value into the field of obj. List fields
	// append. obj is the value at the level that declares the field.
	Set func(obj Object, value any) error
	// Get returns the field values of obj, empty when unset.
	Get func(obj Object) []any
}

// Cardinality renders the field multiplicity as min..max.
func (f *Field) Cardinality() string {
	min := "1"
	if f.Optional {
		min = "0"
	}
	max := "1"
	if f.List {
		max = "*"
	}
	return min + ".." + max
}

// Lineage returns t followed by its supertypes, nearest first.
func (t *Type) Lineage() []*Type {
	var out []*Type
	seen := make(map[*Type]bool)
	for cur := t; cur != nil && !seen[cur]; cur = cur.Super {
		seen[cur] = true
		out = append(out, cur)
	}
	return out
}

// AllFields returns inherited fields followed by own fields, root first.
func (t *Type) AllFields() []*Field {
	lineage := t.Lineage()
	var out []*Field
	for i := len(lineage) - 1; i >= 0; i-- {
		out = append(out, lineage[i].Fields...)
	}
	return out
}

// Field returns the field named name, searching supertypes.
func (t *Type) Field(name string) (*Field, bool) {
	for _, cur := range t.Lineage() {
		for _, f := range cur.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return nil, false
}

// IsA reports whether t is other or one of its subtypes.
func (t *Type) IsA(other *Type) bool {
	for _, cur := range t.Lineage() {
		if cur == other {
			return true
		}
	}
	return false
}

// Levels returns obj and the embedded supertype values, paired with the
// type that each one represents.
func Levels(obj Object) ([]*Type, []Object, error) {
	t := obj.OntologyType()
	var types []*Type
	var objs []Object
	level := obj
	for _, cur := range t.Lineage() {
		types = append(types, cur)
		objs = append(objs, level)
		if cur.Super == nil {
			break
		}
		d, ok := level.(Derived)
		if !ok {
			return nil, nil, fmt.Errorf("type %s does not expose its %s base", cur.Name, cur.Super.Name)
		}
		level = d.Base()
	}
	return types, objs, nil
}

// Enum describes a generated enumeration.
type Enum struct {
	Name        string
	IRI         string
	Description string
	Members     []EnumMember
}

// EnumMember is one enumeration value. Value is the member IRI.
type EnumMember struct {
	Name        string
	Value       string
	Description string
}

// Match returns the member whose value equals s.
func (e *Enum) Match(s string) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Value == s {
			return m, true
		}
	}
	return EnumMember{}, false
}

// Text is a string with an optional language tag.
type Text struct {
	Value string
	Lang  string
}

// String renders the text with its tag when present.
func (t Text) String() string {
	if t.Lang == "" {
		return t.Value
	}
	return t.Value + "@" + t.Lang
}

// NewText builds a Text with a lower-cased language tag.
func NewText(value, lang string) Text {
	return Text{Value: value, Lang: strings.ToLower(lang)}
}
