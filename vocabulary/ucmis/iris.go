package ucmis

import (
	"github.com/c360studio/semstreams/vocabulary"
	rdfvoc "github.com/cayleygraph/quad/voc/rdf"
	rdfsvoc "github.com/cayleygraph/quad/voc/rdfs"
)

// Standard namespaces.
const (
	RDF  = rdfvoc.NS
	RDFS = rdfsvoc.NS
	OWL  = "http://www.w3.org/2002/07/owl#"
	XSD  = "http://www.w3.org/2001/XMLSchema#"
	DC   = "http://purl.org/dc/elements/1.1/"
	SKOS = "http://www.w3.org/2004/02/skos/core#"
)

// Namespace is the UCMIS metamodel namespace.
const Namespace = "tag:ddialliance.org,2024:ucmis:"

// CDI is the DDI-CDI 1.0 ontology namespace.
const CDI = "http://ddialliance.org/Specification/DDI-CDI/1.0/RDF/"

// Metamodel kinds. Every ontology resource is typed with exactly one of these.
const (
	Class              = Namespace + "Class"
	StructuredDataType = Namespace + "StructuredDataType"
	Enumeration        = Namespace + "Enumeration"
	Attribute          = Namespace + "Attribute"
	Association        = Namespace + "Association"
	PrimitiveType      = Namespace + "PrimitiveType"
)

// Structural predicates.
const (
	Type       = RDF + "type"
	SubClassOf = RDFS + "subClassOf"
	Label      = vocabulary.RdfsLabel
	Comment    = vocabulary.RdfsComment
	Domain     = RDFS + "domain"
	Range      = RDFS + "range"
	AltLabel   = vocabulary.SkosAltLabel
)

// XSD datatypes recognized as attribute ranges.
const (
	XSDString     = XSD + "string"
	XSDLanguage   = XSD + "language"
	XSDAnyURI     = XSD + "anyURI"
	XSDInteger    = XSD + "integer"
	XSDInt        = XSD + "int"
	XSDLong       = XSD + "long"
	XSDBoolean    = XSD + "boolean"
	XSDDate       = XSD + "date"
	XSDDateTime   = XSD + "dateTime"
	XSDDecimal    = XSD + "decimal"
	XSDDouble     = XSD + "double"
	XSDFloat      = XSD + "float"
	RDFLangString = RDF + "langString"
)

// Kinds lists the metamodel kinds in precedence order.
var Kinds = []string{Class, StructuredDataType, Enumeration, Attribute, Association, PrimitiveType}
