package graph

import (
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
)

// EntityType is the message type for decoded ontology instances.
var EntityType = message.Type{Domain: "ontology", Category: "entity", Version: "v1"}

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      EntityType.Domain,
		Category:    EntityType.Category,
		Version:     EntityType.Version,
		Description: "Decoded ontology instance with triples for graph ingestion",
		Factory:     func() any { return &EntityPayload{} },
	})
	if err != nil {
		panic("failed to register EntityPayload: " + err.Error())
	}
}

// EntityPayload carries one decoded instance as graph triples.
type EntityPayload struct {
	ID string `json:"id"`
	// TypeIRI is the most specific ontology type of the instance.
	TypeIRI string `json:"type"`
	// Subject is the graph node the instance was decoded from. Empty for
	// nested instances that had no subject of their own.
	Subject   string           `json:"subject,omitempty"`
	Facts     []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// EntityID returns the dotted entity ID.
func (e *EntityPayload) EntityID() string { return e.ID }

// Triples returns the entity triples.
func (e *EntityPayload) Triples() []message.Triple { return e.Facts }

// Schema returns EntityType.
func (e *EntityPayload) Schema() message.Type { return EntityType }

// Validate checks that the payload names an entity and its type, and that
// every triple is about that entity.
func (e *EntityPayload) Validate() error {
	if e.ID == "" {
		return errors.New("entity ID is required")
	}
	if e.TypeIRI == "" {
		return errors.New("entity type is required")
	}
	if len(e.Facts) == 0 {
		return errors.New("entity has no triples")
	}
	for _, t := range e.Facts {
		if t.Subject != e.ID {
			return errors.New("triple subject " + t.Subject + " does not match entity " + e.ID)
		}
	}
	return nil
}
