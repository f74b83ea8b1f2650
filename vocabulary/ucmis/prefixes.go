package ucmis

import (
	"sort"
	"strings"
)

// Prefixes maps the default prefix labels to namespace IRIs.
var Prefixes = map[string]string{
	"rdf":   RDF,
	"rdfs":  RDFS,
	"owl":   OWL,
	"xsd":   XSD,
	"dc":    DC,
	"skos":  SKOS,
	"cdi":   CDI,
	"ucmis": Namespace,
}

// Compact rewrites iri as prefix:local when one of the known namespaces
// matches. The longest matching namespace wins. Unknown IRIs are returned
// unchanged.
func Compact(iri string) string {
	best, bestNS := "", ""
	for prefix, ns := range Prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			best, bestNS = prefix, ns
		}
	}
	if bestNS == "" {
		return iri
	}
	return best + ":" + strings.TrimPrefix(iri, bestNS)
}

// Expand rewrites a prefix:local name into a full IRI. Values with an
// unknown prefix are returned unchanged.
func Expand(curie string) string {
	prefix, local, ok := strings.Cut(curie, ":")
	if !ok {
		return curie
	}
	if ns, found := Prefixes[prefix]; found {
		return ns + local
	}
	return curie
}

// LocalName returns the part of iri after the last '#', '/' or ':'.
func LocalName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/:"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

// PrefixNames returns the known prefix labels in sorted order.
func PrefixNames() []string {
	names := make([]string, 0, len(Prefixes))
	for name := range Prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
