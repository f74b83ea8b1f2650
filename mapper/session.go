package mapper

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/schema"
)

// Session decodes subjects of one graph and caches the instances it
// builds. A subject is cached before its fields are filled, so reference
// cycles resolve to the instance under construction. When a subject fails,
// every instance completed while it was under construction is evicted as
// well, since those may hold the failed placeholder. Failures are
// remembered for the rest of the session. A Session is not safe for
// concurrent use.
type Session struct {
	m      *Mapper
	g      *rdf.Graph
	cache  map[string]schema.Object
	failed map[string]error
	// built lists cache keys in completion order.
	built []string
}

// NewSession starts a session over g.
func (m *Mapper) NewSession(g *rdf.Graph) *Session {
	return &Session{
		m:      m,
		g:      g,
		cache:  make(map[string]schema.Object),
		failed: make(map[string]error),
	}
}

// Len returns the number of cached instances.
func (s *Session) Len() int {
	return len(s.cache)
}

// Decode returns the instance for subject, building it on first use. It
// returns a nil object and no error when the subject has no rdf:type.
func (s *Session) Decode(subject quad.Value) (schema.Object, error) {
	key := subject.String()
	if obj, ok := s.cache[key]; ok {
		return obj, nil
	}
	if err, ok := s.failed[key]; ok {
		return nil, err
	}

	id := rdf.Lexical(subject)
	types := s.g.Types(subject)
	if len(types) == 0 {
		return nil, nil
	}
	t, matched, ok := s.m.registry.Resolve(types)
	if !ok {
		return nil, &UnregisteredTypeError{Subject: id, Types: types}
	}
	if len(types) > 1 {
		s.m.logger.Debug("Resolved subject with several declared types",
			slog.String("subject", id),
			slog.String("type", matched))
	}

	obj := t.New()
	mark := len(s.built)
	s.cache[key] = obj
	if err := s.populate(subject, obj); err != nil {
		s.rollback(key, mark)
		ierr := &InstantiationError{Subject: id, Type: t.IRI, Cause: err}
		s.failed[key] = ierr
		return nil, ierr
	}

	s.built = append(s.built, key)
	s.m.metrics.recordDecoded(t.Name)
	return obj, nil
}

// rollback evicts key and every instance completed after mark. They are
// decoded again on their next reference, this time seeing key as failed.
func (s *Session) rollback(key string, mark int) {
	delete(s.cache, key)
	for _, k := range s.built[mark:] {
		delete(s.cache, k)
	}
	if evicted := len(s.built) - mark; evicted > 0 {
		s.m.logger.Debug("Evicted instances built around a failed subject",
			slog.String("subject", key),
			slog.Int("evicted", evicted))
	}
	s.built = s.built[:mark]
}

// populate fills every field of obj, root supertype first.
func (s *Session) populate(subject quad.Value, obj schema.Object) error {
	types, levels, err := schema.Levels(obj)
	if err != nil {
		return err
	}

	var missing []string
	for i := len(types) - 1; i >= 0; i-- {
		for _, f := range types[i].Fields {
			n, err := s.fill(subject, f, levels[i])
			if err != nil {
				return err
			}
			if n == 0 && !f.Optional {
				missing = append(missing, f.Name)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// fill sets f from the matching triples and returns how many values were
// stored. Single-valued fields take the first value in graph order.
func (s *Session) fill(subject quad.Value, f *schema.Field, level schema.Object) (int, error) {
	values := s.g.Objects(subject, quad.IRI(f.Predicate))
	if len(values) == 0 {
		return 0, nil
	}
	if !f.List && len(values) > 1 {
		s.m.logger.Debug("Ignoring extra values on single-valued field",
			slog.String("subject", rdf.Lexical(subject)),
			slog.String("field", f.Name),
			slog.Int("dropped", len(values)-1))
		s.m.metrics.recordDropped(len(values) - 1)
		values = values[:1]
	}

	stored := 0
	for _, v := range values {
		val, ok := s.value(f, v)
		if !ok {
			continue
		}
		if err := f.Set(level, val); err != nil {
			return stored, fmt.Errorf("field %s: %w", f.Name, err)
		}
		stored++
	}
	return stored, nil
}

// value converts one graph value for f. It reports false when the value
// should be left out.
func (s *Session) value(f *schema.Field, v quad.Value) (any, bool) {
	lexical := rdf.Lexical(v)
	if f.Enum != nil {
		if member, ok := f.Enum.Match(lexical); ok {
			return member.Value, true
		}
	}

	if !rdf.IsNode(v) {
		native, err := rdf.Native(v)
		if errors.Is(err, rdf.ErrLexical) {
			s.m.logger.Debug("Keeping lexical form of malformed literal",
				slog.String("field", f.Name),
				slog.String("error", err.Error()))
		}
		if ls, ok := native.(quad.LangString); ok {
			return schema.NewText(string(ls.Value), ls.Lang), true
		}
		return native, true
	}

	// An untyped node is an opaque reference. Fields that cannot hold a
	// string reject it when the value is stored.
	if !s.g.HasType(v) {
		return lexical, true
	}

	obj, err := s.Decode(v)
	if err != nil {
		s.m.logger.Debug("Leaving unresolvable reference absent",
			slog.String("field", f.Name),
			slog.String("node", lexical),
			slog.String("error", err.Error()))
		s.m.metrics.recordUnresolved()
		return nil, false
	}
	return obj, true
}
