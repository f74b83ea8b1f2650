// Package graph converts decoded ontology instances into semstreams
// entities and publishes them for knowledge graph ingestion.
package graph

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/ontogen/mapper"
	"github.com/c360studio/ontogen/schema"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// DefaultSource is the triple source recorded for decoded instances.
const DefaultSource = "ontogen.decode"

// EntityID returns the dotted entity ID of subject decoded as t.
// Format: ontogen.local.<prefix>.<type>.<local name>
func EntityID(t *schema.Type, subject string) string {
	return fmt.Sprintf("ontogen.local.%s.%s.%s", typePrefix(t), strings.ToLower(t.Name), idPart(ucmis.LocalName(subject)))
}

func typePrefix(t *schema.Type) string {
	if prefix, _, ok := strings.Cut(ucmis.Compact(t.IRI), ":"); ok && prefix != t.IRI {
		if _, known := ucmis.Prefixes[prefix]; known {
			return prefix
		}
	}
	return "ontology"
}

// idPart keeps letters, digits, '-' and '_' so the value stays one dotted
// segment.
func idPart(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

type pending struct {
	id      string
	local   string
	subject string
	obj     schema.Object
}

// Builder turns instances into entity payloads. Instances referenced by
// several others become one entity; nested instances that were never
// added get an ID derived from the referencing entity and field.
type Builder struct {
	source string
	now    func() time.Time
	ids    map[schema.Object]string
	queue  []pending
}

// NewBuilder returns a builder stamping triples with source.
func NewBuilder(source string) *Builder {
	if source == "" {
		source = DefaultSource
	}
	return &Builder{
		source: source,
		now:    time.Now,
		ids:    make(map[schema.Object]string),
	}
}

// Add registers obj under its graph subject and returns its entity ID.
func (b *Builder) Add(subject string, obj schema.Object) (string, error) {
	if id, ok := b.ids[obj]; ok {
		return id, nil
	}
	return b.enqueue(ucmis.LocalName(subject), subject, obj)
}

// AddResult registers every decoded entry of r.
func (b *Builder) AddResult(r *mapper.Result) error {
	for _, e := range r.Entries {
		if _, err := b.Add(e.Subject, e.Object); err != nil {
			return fmt.Errorf("add %s: %w", e.Subject, err)
		}
	}
	return nil
}

func (b *Builder) enqueue(local, subject string, obj schema.Object) (string, error) {
	types, levels, err := schema.Levels(obj)
	if err != nil {
		return "", err
	}
	id := EntityID(types[0], local)
	for _, level := range levels {
		b.ids[level] = id
	}
	b.queue = append(b.queue, pending{id: id, local: local, subject: subject, obj: obj})
	return id, nil
}

// Entities builds one payload per registered instance, in registration
// order, followed by the nested instances they reference.
func (b *Builder) Entities() ([]*EntityPayload, error) {
	now := b.now()
	var out []*EntityPayload
	for i := 0; i < len(b.queue); i++ {
		p := b.queue[i]
		triples, err := b.triples(p, now)
		if err != nil {
			return nil, fmt.Errorf("entity %s: %w", p.id, err)
		}
		out = append(out, &EntityPayload{
			ID:        p.id,
			TypeIRI:   p.obj.OntologyType().IRI,
			Subject:   p.subject,
			Facts:     triples,
			UpdatedAt: now,
		})
	}
	return out, nil
}

func (b *Builder) triples(p pending, now time.Time) ([]message.Triple, error) {
	types, levels, err := schema.Levels(p.obj)
	if err != nil {
		return nil, err
	}
	triples := []message.Triple{b.triple(p.id, ucmis.PredicateType, types[0].IRI, "", now)}
	for i := len(types) - 1; i >= 0; i-- {
		for _, f := range types[i].Fields {
			predicate := predicateName(types[i], f)
			for j, v := range f.Get(levels[i]) {
				object, datatype, err := b.object(p, f, j, v)
				if err != nil {
					return nil, fmt.Errorf("%s.%s: %w", types[i].Name, f.Name, err)
				}
				triples = append(triples, b.triple(p.id, predicate, object, datatype, now))
			}
		}
	}
	return triples, nil
}

func (b *Builder) triple(subject, predicate string, object any, datatype string, now time.Time) message.Triple {
	return message.Triple{
		Subject:    subject,
		Predicate:  predicate,
		Object:     object,
		Source:     b.source,
		Timestamp:  now,
		Confidence: 1.0,
		Datatype:   datatype,
	}
}

// predicateName prefers the name registered for the field IRI.
func predicateName(t *schema.Type, f *schema.Field) string {
	if name, ok := ucmis.PredicateName(f.Predicate); ok {
		return name
	}
	return schema.PredicateName(typePrefix(t), t, f)
}

func (b *Builder) object(p pending, f *schema.Field, index int, v any) (any, string, error) {
	if obj, ok := v.(schema.Object); ok {
		if id, found := b.ids[obj]; found {
			return id, "", nil
		}
		id, err := b.enqueue(p.local+"-"+f.Name+"-"+strconv.Itoa(index), "", obj)
		return id, "", err
	}

	datatype := ""
	if f.Kind == schema.KindLiteral && len(f.Range) > 0 && strings.HasPrefix(f.Range[0], ucmis.XSD) {
		datatype = ucmis.Compact(f.Range[0])
	}
	switch v := v.(type) {
	case schema.Text:
		return v.Value, datatype, nil
	case time.Time:
		return v.Format(time.RFC3339), datatype, nil
	case fmt.Stringer:
		return v.String(), datatype, nil
	case string, int64, float64, bool:
		return v, datatype, nil
	}
	return nil, "", fmt.Errorf("unsupported value %T", v)
}
