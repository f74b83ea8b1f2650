// Package storage keeps compiled schemas in a NATS KV bucket so that other
// processes can fetch the generated source and type summary of a package
// without rerunning the compiler.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/ontogen/compiler"
)

// BucketSchemas is the KV bucket holding compiled schemas.
const BucketSchemas = "ONTOGEN_SCHEMAS"

// TypeSummary describes one generated type.
type TypeSummary struct {
	Name   string   `json:"name"`
	IRI    string   `json:"iri"`
	Super  string   `json:"super,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// SchemaRecord is the stored form of a compiled schema.
type SchemaRecord struct {
	Key       string        `json:"key"`
	Package   string        `json:"package"`
	Namespace string        `json:"namespace"`
	Prefix    string        `json:"prefix"`
	Source    string        `json:"source,omitempty"`
	Enums     []string      `json:"enums,omitempty"`
	Types     []TypeSummary `json:"types"`
	GoSource  string        `json:"go_source"`
	Revision  uint64        `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewSchemaRecord renders s and summarizes its types. The key is the
// package name.
func NewSchemaRecord(s *compiler.Schema) (*SchemaRecord, error) {
	src, err := compiler.Source(s)
	if err != nil {
		return nil, fmt.Errorf("render schema: %w", err)
	}

	rec := &SchemaRecord{
		Key:       s.Package,
		Package:   s.Package,
		Namespace: s.Namespace,
		Prefix:    s.Prefix,
		Source:    s.Source,
		GoSource:  string(src),
		CreatedAt: time.Now(),
	}
	for _, e := range s.Enums {
		rec.Enums = append(rec.Enums, e.GoName)
	}
	for _, group := range [][]*compiler.TypeDefinition{s.Datatypes, s.Classes} {
		for _, def := range group {
			sum := TypeSummary{Name: def.GoName, IRI: def.IRI}
			if def.Super != nil {
				sum.Super = def.Super.GoName
			}
			for _, f := range def.Fields {
				sum.Fields = append(sum.Fields, f.Name)
			}
			rec.Types = append(rec.Types, sum)
		}
	}
	return rec, nil
}

// Store provides schema storage backed by NATS KV.
type Store struct {
	bucket jetstream.KeyValue
	logger *slog.Logger
}

// NewStore opens the named schema bucket (BucketSchemas when empty),
// creating it when missing.
func NewStore(ctx context.Context, nc *natsclient.Client, bucket string, logger *slog.Logger) (*Store, error) {
	if nc == nil {
		return nil, fmt.Errorf("NATS client required")
	}
	if bucket == "" {
		bucket = BucketSchemas
	}

	js, err := nc.JetStream()
	if err != nil {
		return nil, fmt.Errorf("get jetstream: %w", err)
	}

	// CreateOrUpdateKeyValue is idempotent and handles race conditions
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "Compiled ontology schemas",
		History:     5, // Keep last 5 revisions
	})
	if err != nil {
		return nil, fmt.Errorf("create/update kv bucket: %w", err)
	}

	return NewStoreFromBucket(kv, logger), nil
}

// NewStoreFromBucket wraps an open KV bucket.
func NewStoreFromBucket(bucket jetstream.KeyValue, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{bucket: bucket, logger: logger}
}

// PutSchema stores rec under its key and returns the new revision.
func (s *Store) PutSchema(ctx context.Context, rec *SchemaRecord) (uint64, error) {
	if err := ValidateKey(rec.Key); err != nil {
		return 0, err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("marshal schema: %w", err)
	}

	rev, err := s.bucket.Put(ctx, rec.Key, data)
	if err != nil {
		return 0, fmt.Errorf("put schema %s: %w", rec.Key, err)
	}
	rec.Revision = rev

	s.logger.Debug("Stored schema",
		slog.String("key", rec.Key),
		slog.Int("types", len(rec.Types)),
		slog.Uint64("revision", rev))
	return rev, nil
}

// GetSchema retrieves a schema by key.
func (s *Store) GetSchema(ctx context.Context, key string) (*SchemaRecord, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	entry, err := s.bucket.Get(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get schema %s: %w", key, err)
	}

	var rec SchemaRecord
	if err := json.Unmarshal(entry.Value(), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal schema %s: %w", key, err)
	}
	rec.Revision = entry.Revision()
	return &rec, nil
}

// ListSchemas returns every stored schema sorted by key.
func (s *Store) ListSchemas(ctx context.Context) ([]*SchemaRecord, error) {
	keys, err := s.bucket.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return []*SchemaRecord{}, nil
		}
		return nil, fmt.Errorf("list schema keys: %w", err)
	}
	sort.Strings(keys)

	records := make([]*SchemaRecord, 0, len(keys))
	for _, key := range keys {
		rec, err := s.GetSchema(ctx, key)
		if err != nil {
			// ErrNotFound is expected during concurrent deletes
			if !errors.Is(err, ErrNotFound) {
				s.logger.Warn("Failed to load schema",
					slog.String("key", key),
					slog.String("error", err.Error()))
			}
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeleteSchema removes a schema by key.
func (s *Store) DeleteSchema(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete schema %s: %w", key, err)
	}
	return nil
}

// ValidateKey checks that key is a legal KV key.
func ValidateKey(key string) error {
	if key == "" || key[0] == '.' || key[len(key)-1] == '.' {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '/', r == '=', r == '.':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted)
}
