package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"
)

// GraphIngestSubject is the subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// IngestStream is the stream created when no stream captures the ingest
// subject yet.
const IngestStream = "ONTOGEN_GRAPH_INGEST"

// EnsureStream makes sure a JetStream stream captures subject. An existing
// stream, such as the one a graph processor owns, is reused.
func EnsureStream(ctx context.Context, nc *natsclient.Client, subject string) (string, error) {
	if subject == "" {
		subject = GraphIngestSubject
	}
	js, err := nc.JetStream()
	if err != nil {
		return "", fmt.Errorf("get jetstream: %w", err)
	}
	if name, err := js.StreamNameBySubject(ctx, subject); err == nil {
		return name, nil
	}

	stream, err := nc.CreateStream(ctx, jetstream.StreamConfig{
		Name:        IngestStream,
		Description: "Decoded ontology instances for graph ingestion",
		Subjects:    []string{subject},
	})
	if err != nil {
		return "", fmt.Errorf("create stream %s: %w", IngestStream, err)
	}
	return stream.CachedInfo().Config.Name, nil
}

// Publish sends every entity to subject, or GraphIngestSubject when
// subject is empty. A nil client publishes nothing.
func Publish(ctx context.Context, nc *natsclient.Client, subject string, entities []*EntityPayload) error {
	if nc == nil {
		return nil
	}
	if subject == "" {
		subject = GraphIngestSubject
	}

	for _, e := range entities {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid entity %s: %w", e.ID, err)
		}
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal entity %s: %w", e.ID, err)
		}
		if err := nc.PublishToStream(ctx, subject, data); err != nil {
			return fmt.Errorf("publish entity %s: %w", e.ID, err)
		}
	}
	return nil
}
