// Package ucmis provides the metamodel vocabulary used to read UML-derived
// ontologies such as DDI-CDI.
//
// Ontologies published from a UCMIS (UML Class Model Interoperable Subset)
// model describe every class, datatype, enumeration, attribute, and
// association as an RDF resource typed with a metamodel IRI:
//
//	cdi:InstanceVariable            rdf:type      ucmis:Class
//	cdi:InstanceVariable-name       rdf:type      ucmis:Attribute
//	cdi:InstanceVariable-name       rdfs:domain   cdi:InstanceVariable
//	cdi:Concept_uses_Concept        rdf:type      ucmis:Association
//
// # Semstreams Integration
//
// The structural predicates used by the compiler are registered with the
// semstreams vocabulary registry in init() using dotted notation
// (ontology.resource.*) with their standard IRIs attached, so triples
// published to the graph can be translated in both directions.
package ucmis
