package export

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/google/uuid"

	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/schema"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// ErrUnsupportedValue is returned for field values with no RDF form.
var ErrUnsupportedValue = errors.New("unsupported field value")

// Serializer writes generated objects as triples, the inverse of the
// mapper. Objects without an assigned subject become blank nodes with
// random labels. An object reached twice is written once.
type Serializer struct {
	subjects map[schema.Object]quad.Value
	written  map[schema.Object]bool
}

// NewSerializer returns an empty serializer.
func NewSerializer() *Serializer {
	return &Serializer{
		subjects: make(map[schema.Object]quad.Value),
		written:  make(map[schema.Object]bool),
	}
}

// Name assigns the subject used for obj.
func (s *Serializer) Name(obj schema.Object, subject quad.Value) {
	s.subjects[obj] = subject
}

// Graph writes every object into a new graph.
func (s *Serializer) Graph(objs ...schema.Object) (*rdf.Graph, error) {
	g := rdf.NewGraph()
	for _, obj := range objs {
		if _, err := s.Write(g, obj); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Write adds the triples of obj, and of every object it references, to g.
// It returns the subject of obj.
func (s *Serializer) Write(g *rdf.Graph, obj schema.Object) (quad.Value, error) {
	subject := s.subject(obj)
	if s.written[obj] {
		return subject, nil
	}

	types, levels, err := schema.Levels(obj)
	if err != nil {
		return nil, err
	}
	// Embedded supertype values share the subject of the outer object.
	for _, level := range levels {
		s.subjects[level] = subject
		s.written[level] = true
	}

	g.Add(subject, quad.IRI(ucmis.Type), quad.IRI(types[0].IRI))
	for i := len(types) - 1; i >= 0; i-- {
		for _, f := range types[i].Fields {
			for _, v := range f.Get(levels[i]) {
				o, err := s.term(g, f, v)
				if err != nil {
					return nil, fmt.Errorf("%s.%s: %w", types[i].Name, f.Name, err)
				}
				g.Add(subject, quad.IRI(f.Predicate), o)
			}
		}
	}
	return subject, nil
}

func (s *Serializer) subject(obj schema.Object) quad.Value {
	if subject, ok := s.subjects[obj]; ok {
		return subject
	}
	subject := quad.BNode(uuid.NewString())
	s.subjects[obj] = subject
	return subject
}

// term converts one field value to an RDF term.
func (s *Serializer) term(g *rdf.Graph, f *schema.Field, v any) (quad.Value, error) {
	if f.Enum != nil {
		if str, ok := v.(fmt.Stringer); ok {
			if member, found := f.Enum.Match(str.String()); found {
				return quad.IRI(member.Value), nil
			}
			return quad.String(str.String()), nil
		}
	}

	switch v := v.(type) {
	case schema.Object:
		return s.Write(g, v)
	case schema.Text:
		if v.Lang == "" {
			return quad.String(v.Value), nil
		}
		return quad.LangString{Value: quad.String(v.Value), Lang: v.Lang}, nil
	case string:
		return quad.String(v), nil
	case int64:
		return typed(strconv.FormatInt(v, 10), ucmis.XSDInteger), nil
	case float64:
		return typed(strconv.FormatFloat(v, 'g', -1, 64), floatType(f)), nil
	case bool:
		return typed(strconv.FormatBool(v), ucmis.XSDBoolean), nil
	case time.Time:
		if declares(f, ucmis.XSDDate) {
			return typed(v.Format("2006-01-02"), ucmis.XSDDate), nil
		}
		return typed(v.Format(time.RFC3339Nano), ucmis.XSDDateTime), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func typed(lexical, datatype string) quad.Value {
	return quad.TypedString{Value: quad.String(lexical), Type: quad.IRI(datatype)}
}

func floatType(f *schema.Field) string {
	if declares(f, ucmis.XSDDecimal) {
		return ucmis.XSDDecimal
	}
	return ucmis.XSDDouble
}

func declares(f *schema.Field, datatype string) bool {
	for _, r := range f.Range {
		if r == datatype {
			return true
		}
	}
	return false
}

// Triples returns the triples of obj written under subject.
func (s *Serializer) Triples(obj schema.Object, subject quad.Value) ([]rdf.Triple, error) {
	if subject != nil {
		s.Name(obj, subject)
	}
	g := rdf.NewGraph()
	if _, err := s.Write(g, obj); err != nil {
		return nil, err
	}
	return g.Triples(nil, nil, nil), nil
}
