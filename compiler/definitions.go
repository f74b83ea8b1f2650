package compiler

import (
	"strings"

	"github.com/c360studio/ontogen/ontology"
)

// RefKind classifies a type reference.
type RefKind int

const (
	RefPrimitive RefKind = iota
	RefEnum
	RefDatatype
	RefClass
	RefUnion
)

// Primitive names used in RefPrimitive references.
const (
	PrimString     = "string"
	PrimLangString = "langString"
	PrimInteger    = "integer"
	PrimBoolean    = "boolean"
	PrimDate       = "date"
	PrimDateTime   = "dateTime"
	PrimDecimal    = "decimal"
	PrimDouble     = "double"
)

// TypeRef is the target type of a field.
type TypeRef struct {
	Kind RefKind
	// Name is the primitive name or the generated type name.
	Name    string
	IRI     string
	Members []TypeRef
}

func (r TypeRef) String() string {
	if r.Kind != RefUnion {
		return r.Name
	}
	parts := make([]string, len(r.Members))
	for i, m := range r.Members {
		parts[i] = m.String()
	}
	return "Union[" + strings.Join(parts, ", ") + "]"
}

// IsObject reports whether the reference targets datatypes or classes only.
func (r TypeRef) IsObject() bool {
	switch r.Kind {
	case RefDatatype, RefClass:
		return true
	case RefUnion:
		for _, m := range r.Members {
			if !m.IsObject() {
				return false
			}
		}
		return len(r.Members) > 0
	}
	return false
}

// Enum returns the enumeration the reference targets, if it targets exactly one.
func (r TypeRef) Enum() (TypeRef, bool) {
	switch r.Kind {
	case RefEnum:
		return r, true
	case RefUnion:
		var found TypeRef
		for _, m := range r.Members {
			e, ok := m.Enum()
			if !ok || (found.Name != "" && found.Name != e.Name) {
				return TypeRef{}, false
			}
			found = e
		}
		return found, found.Name != ""
	}
	return TypeRef{}, false
}

// FieldDefinition is one emitted field.
type FieldDefinition struct {
	// Name is the field name after renaming.
	Name string
	// Label is the property label before renaming.
	Label  string
	GoName string
	// Property is the attribute or association IRI.
	Property string
	// Predicate is the wire predicate IRI.
	Predicate   string
	Ranges      []string
	Type        TypeRef
	Cardinality ontology.Cardinality
	List        bool
	Optional    bool
	Association bool
	Description string
}

// TypeDefinition is one emitted datatype or class.
type TypeDefinition struct {
	Name        string
	GoName      string
	IRI         string
	Kind        ontology.Kind
	Super       *TypeDefinition
	Description string
	Fields      []*FieldDefinition
}

// Lineage returns d followed by its supertypes.
func (d *TypeDefinition) Lineage() []*TypeDefinition {
	var out []*TypeDefinition
	for cur := d; cur != nil; cur = cur.Super {
		out = append(out, cur)
	}
	return out
}

// EnumDefinition is one emitted enumeration.
type EnumDefinition struct {
	Name        string
	GoName      string
	IRI         string
	Description string
	Members     []EnumMemberDefinition
}

// EnumMemberDefinition is one enumeration member. Value is the member IRI.
type EnumMemberDefinition struct {
	Name        string
	GoName      string
	Value       string
	Description string
}

// Schema is the compiled form of an ontology.
type Schema struct {
	Package   string
	Namespace string
	Prefix    string
	Source    string

	Enums     []*EnumDefinition
	Datatypes []*TypeDefinition
	Classes   []*TypeDefinition

	DatatypeOrdering Ordering
	ClassOrdering    Ordering
}

// Types returns datatypes followed by classes, each in emission order.
func (s *Schema) Types() []*TypeDefinition {
	out := make([]*TypeDefinition, 0, len(s.Datatypes)+len(s.Classes))
	out = append(out, s.Datatypes...)
	return append(out, s.Classes...)
}

// Type returns the datatype or class named name.
func (s *Schema) Type(name string) (*TypeDefinition, bool) {
	for _, t := range s.Types() {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Enum returns the enumeration named name.
func (s *Schema) Enum(name string) (*EnumDefinition, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
