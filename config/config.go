// Package config provides configuration loading and management for ontogen.
package config

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontogen/compiler"
	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// Config represents the complete ontogen configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Compiler CompilerConfig `yaml:"compiler"`
	Mapper   MapperConfig   `yaml:"mapper"`
	NATS     NATSConfig     `yaml:"nats"`
}

// OntologyConfig locates the ontology sources
type OntologyConfig struct {
	// Dir is the directory holding the N-Triples/N-Quads files
	Dir string `yaml:"dir"`
	// Include are doublestar patterns relative to Dir
	Include []string `yaml:"include"`
	// Schema is the XML schema carrying cardinalities (optional)
	Schema string `yaml:"schema"`
	// Prefixes adds namespace prefixes for compact IRIs
	Prefixes map[string]string `yaml:"prefixes"`
}

// CompilerConfig configures schema compilation
type CompilerConfig struct {
	// Package is the Go package name of the generated file
	Package string `yaml:"package"`
	// OutputDir is where the generated file is written
	OutputDir string `yaml:"output_dir"`
	// OutputFile is the generated file name (default: <package>_gen.go)
	OutputFile string `yaml:"output_file"`
	// Namespace is the ontology namespace IRI
	Namespace string `yaml:"namespace"`
	// Prefix is the conventional prefix label for Namespace
	Prefix string `yaml:"prefix"`
	// ReservedWords are field names that get a trailing underscore
	ReservedWords []string `yaml:"reserved_words"`
	// Debounce is the quiet period before a watch rebuild
	Debounce time.Duration `yaml:"debounce"`
}

// MapperConfig configures graph decoding
type MapperConfig struct {
	// Types limits decoding to subjects with one of these type IRIs (empty = all)
	Types []string `yaml:"types"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing and storage disabled)
	URL string `yaml:"url"`
	// Subject is the graph ingest subject
	Subject string `yaml:"subject"`
	// SchemaBucket is the KV bucket for compiled schemas
	SchemaBucket string `yaml:"schema_bucket"`
	// Timeout bounds the initial connection
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Dir:     "ontology",
			Include: append([]string(nil), rdf.DefaultPatterns...),
		},
		Compiler: CompilerConfig{
			Package:       "cdi",
			OutputDir:     ".",
			Namespace:     ucmis.CDI,
			Prefix:        "cdi",
			ReservedWords: append([]string(nil), compiler.DefaultReservedWords...),
			Debounce:      compiler.DefaultDebounce,
		},
		NATS: NATSConfig{
			URL:          "",
			Subject:      "graph.ingest.entity",
			SchemaBucket: "ONTOGEN_SCHEMAS",
			Timeout:      10 * time.Second,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Ontology.Dir == "" {
		return fmt.Errorf("ontology.dir is required")
	}
	for _, pattern := range c.Ontology.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("ontology.include: invalid pattern %q", pattern)
		}
	}
	if !token.IsIdentifier(c.Compiler.Package) {
		return fmt.Errorf("compiler.package %q is not a Go identifier", c.Compiler.Package)
	}
	if c.Compiler.Namespace == "" {
		return fmt.Errorf("compiler.namespace is required")
	}
	if c.Compiler.Prefix == "" {
		return fmt.Errorf("compiler.prefix is required")
	}
	if c.Compiler.Debounce < 0 {
		return fmt.Errorf("compiler.debounce must not be negative")
	}
	if c.NATS.URL != "" {
		if c.NATS.Subject == "" {
			return fmt.Errorf("nats.subject is required when nats.url is set")
		}
		if c.NATS.SchemaBucket == "" {
			return fmt.Errorf("nats.schema_bucket is required when nats.url is set")
		}
	}
	return nil
}

// CompilerOptions returns the compiler options described by c.
func (c *Config) CompilerOptions() compiler.Options {
	return compiler.Options{
		Package:       c.Compiler.Package,
		Namespace:     c.Compiler.Namespace,
		Prefix:        c.Compiler.Prefix,
		ReservedWords: c.Compiler.ReservedWords,
		Source:        c.Ontology.Dir,
	}
}

// OutputFile returns the generated file name.
func (c *Config) OutputFile() string {
	if c.Compiler.OutputFile != "" {
		return c.Compiler.OutputFile
	}
	return c.Compiler.Package + "_gen.go"
}

// ApplyPrefixes registers the configured prefixes for compact IRIs. The
// compiler prefix is always registered for the compiler namespace.
func (c *Config) ApplyPrefixes() {
	for prefix, ns := range c.Ontology.Prefixes {
		ucmis.Prefixes[prefix] = ns
	}
	if c.Compiler.Prefix != "" && c.Compiler.Namespace != "" {
		ucmis.Prefixes[c.Compiler.Prefix] = c.Compiler.Namespace
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Ontology
	if other.Ontology.Dir != "" {
		c.Ontology.Dir = other.Ontology.Dir
	}
	if len(other.Ontology.Include) > 0 {
		c.Ontology.Include = other.Ontology.Include
	}
	if other.Ontology.Schema != "" {
		c.Ontology.Schema = other.Ontology.Schema
	}
	for prefix, ns := range other.Ontology.Prefixes {
		if c.Ontology.Prefixes == nil {
			c.Ontology.Prefixes = make(map[string]string)
		}
		c.Ontology.Prefixes[prefix] = ns
	}

	// Compiler
	if other.Compiler.Package != "" {
		c.Compiler.Package = other.Compiler.Package
	}
	if other.Compiler.OutputDir != "" {
		c.Compiler.OutputDir = other.Compiler.OutputDir
	}
	if other.Compiler.OutputFile != "" {
		c.Compiler.OutputFile = other.Compiler.OutputFile
	}
	if other.Compiler.Namespace != "" {
		c.Compiler.Namespace = other.Compiler.Namespace
	}
	if other.Compiler.Prefix != "" {
		c.Compiler.Prefix = other.Compiler.Prefix
	}
	if len(other.Compiler.ReservedWords) > 0 {
		c.Compiler.ReservedWords = other.Compiler.ReservedWords
	}
	if other.Compiler.Debounce != 0 {
		c.Compiler.Debounce = other.Compiler.Debounce
	}

	// Mapper
	if len(other.Mapper.Types) > 0 {
		c.Mapper.Types = other.Mapper.Types
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
	if other.NATS.SchemaBucket != "" {
		c.NATS.SchemaBucket = other.NATS.SchemaBucket
	}
	if other.NATS.Timeout != 0 {
		c.NATS.Timeout = other.NATS.Timeout
	}
}
