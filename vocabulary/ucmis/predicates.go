package ucmis

import (
	"sync"

	"github.com/c360studio/semstreams/vocabulary"
)

// Dotted predicate names for the structural predicates.
const (
	PredicateType       = "ontology.resource.type"
	PredicateLabel      = "ontology.resource.label"
	PredicateComment    = "ontology.resource.comment"
	PredicateSubClassOf = "ontology.resource.subclass_of"
	PredicateDomain     = "ontology.resource.domain"
	PredicateRange      = "ontology.resource.range"
)

var (
	byIRIMu sync.RWMutex
	byIRI   = map[string]string{}
)

func init() {
	RegisterPredicate(PredicateType, Type, "Metamodel or instance type of a resource", "entity_id")
	RegisterPredicate(PredicateLabel, Label, "Human-readable resource name", "string")
	RegisterPredicate(PredicateComment, Comment, "Resource definition text", "string")
	RegisterPredicate(PredicateSubClassOf, SubClassOf, "Direct supertype of a class or datatype", "entity_id")
	RegisterPredicate(PredicateDomain, Domain, "Owning type of an attribute or association", "entity_id")
	RegisterPredicate(PredicateRange, Range, "Value type of an attribute or association", "entity_id")
}

// RegisterPredicate registers a dotted predicate with the semstreams
// vocabulary and records the reverse mapping from its IRI.
func RegisterPredicate(name, iri, description, dataType string) {
	vocabulary.Register(name,
		vocabulary.WithDescription(description),
		vocabulary.WithDataType(dataType),
		vocabulary.WithIRI(iri))

	byIRIMu.Lock()
	byIRI[iri] = name
	byIRIMu.Unlock()
}

// PredicateName returns the dotted predicate registered for iri.
func PredicateName(iri string) (string, bool) {
	byIRIMu.RLock()
	defer byIRIMu.RUnlock()
	name, ok := byIRI[iri]
	return name, ok
}
