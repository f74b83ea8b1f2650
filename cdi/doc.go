// Package cdi holds Go types generated from a subset of the DDI-CDI
// ontology. The ontology files live in ontology/testdata.
package cdi

//go:generate go run ../cmd/ontogen compile --ontology ../ontology/testdata --xsd ../ontology/testdata/cdi-subset.xsd --out . --file cdi_gen.go --package cdi --source ontology/testdata
