package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

const sourceTemplate = `// Code generated by ontogen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import (
{{- if .UsesTime}}
	"time"
{{end}}
	"github.com/c360studio/ontogen/schema"
)

// Namespace is the ontology namespace of the generated types.
const Namespace = {{printf "%q" .Namespace}}

// Prefix is the conventional prefix label for Namespace.
const Prefix = {{printf "%q" .Prefix}}

func init() {
	schema.RegisterVocabulary(Prefix, Types())
}

// Types returns the descriptors of every generated type, supertypes first.
func Types() []*schema.Type {
	return []*schema.Type{
{{- range .Types}}
		{{.GoName}}Type,
{{- end}}
	}
}

// Enums returns the descriptors of every generated enumeration.
func Enums() []*schema.Enum {
	return []*schema.Enum{
{{- range .Enums}}
		{{.GoName}}Enum,
{{- end}}
	}
}
{{range $e := .Enums}}
{{$e.Doc}}
type {{$e.GoName}} string

const (
{{- range $e.Members}}
{{- if .Doc}}
{{.Doc}}
{{- end}}
	{{.GoName}} {{$e.GoName}} = {{printf "%q" .Value}}
{{- end}}
)

func (e {{$e.GoName}}) String() string { return string(e) }

// {{$e.GoName}}Enum describes {{$e.GoName}}.
var {{$e.GoName}}Enum = &schema.Enum{
	Name:        {{printf "%q" $e.Name}},
	IRI:         {{printf "%q" $e.IRI}},
	Description: {{printf "%q" $e.Description}},
	Members: []schema.EnumMember{
{{- range $e.Members}}
		{Name: {{printf "%q" .Name}}, Value: string({{.GoName}}), Description: {{printf "%q" .Description}}},
{{- end}}
	},
}
{{end}}
{{- range $t := .Types}}
{{$t.Doc}}
type {{$t.GoName}} struct {
{{- if $t.Super}}
	{{$t.Super}}
{{end}}
{{- range $t.Fields}}
{{- if .Doc}}
{{.Doc}}
{{- end}}
	{{.GoName}} {{.GoType}}
{{- end}}
}

// OntologyType returns the {{$t.GoName}} descriptor.
func (o *{{$t.GoName}}) OntologyType() *schema.Type { return {{$t.GoName}}Type }
{{- if $t.Super}}

// Base returns the embedded {{$t.Super}}.
func (o *{{$t.GoName}}) Base() schema.Object { return &o.{{$t.Super}} }
{{- end}}

// {{$t.GoName}}Type describes {{$t.GoName}}.
var {{$t.GoName}}Type = &schema.Type{
	Name:        {{printf "%q" $t.Name}},
	IRI:         {{printf "%q" $t.IRI}},
	Description: {{printf "%q" $t.Description}},
{{- if $t.Super}}
	Super:       {{$t.Super}}Type,
{{- end}}
	New:         func() schema.Object { return &{{$t.GoName}}{} },
	Fields: []*schema.Field{
{{- range $t.Fields}}
		{
			Name:        {{printf "%q" .Name}},
			Predicate:   {{printf "%q" .Predicate}},
			Range:       {{.Range}},
			Kind:        schema.{{.Kind}},
			List:        {{.List}},
			Optional:    {{.Optional}},
			Description: {{printf "%q" .Description}},
{{- if .Enum}}
			Enum:        {{.Enum}},
{{- end}}
			Set: func(obj schema.Object, v any) error {
				return {{.Set}}
			},
			Get: func(obj schema.Object) []any {
				return {{.Get}}
			},
		},
{{- end}}
	},
}
{{end}}`

var tmpl = template.Must(template.New("ontogen").Parse(sourceTemplate))

type fileView struct {
	Package   string
	Namespace string
	Prefix    string
	Source    string
	UsesTime  bool
	Enums     []enumView
	Types     []typeView
}

type enumView struct {
	Doc         string
	GoName      string
	Name        string
	IRI         string
	Description string
	Members     []memberView
}

type memberView struct {
	Doc         string
	GoName      string
	Name        string
	Value       string
	Description string
}

type typeView struct {
	Doc         string
	GoName      string
	Name        string
	IRI         string
	Description string
	Super       string
	Fields      []fieldView
}

type fieldView struct {
	Doc         string
	GoName      string
	GoType      string
	Name        string
	Predicate   string
	Range       string
	Kind        string
	List        bool
	Optional    bool
	Description string
	Enum        string
	Set         string
	Get         string
}

// Render writes gofmt-formatted Go source for s to w.
func Render(s *Schema, w io.Writer) error {
	src, err := Source(s)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Source returns gofmt-formatted Go source for s.
func Source(s *Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newFileView(s)); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// WriteFile renders s into dir/name and returns the written path. The
// directory must exist.
func WriteFile(s *Schema, dir, name string) (string, error) {
	src, err := Source(s)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, src, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func newFileView(s *Schema) fileView {
	v := fileView{
		Package:   s.Package,
		Namespace: s.Namespace,
		Prefix:    s.Prefix,
		Source:    s.Source,
	}
	for _, e := range s.Enums {
		ev := enumView{
			Doc:         docComment("", fmt.Sprintf("%s is generated from %s.", e.GoName, ucmis.Compact(e.IRI)), e.Description),
			GoName:      e.GoName,
			Name:        e.Name,
			IRI:         e.IRI,
			Description: e.Description,
		}
		for _, m := range e.Members {
			ev.Members = append(ev.Members, memberView{
				Doc:         docComment("\t", "", m.Description),
				GoName:      m.GoName,
				Name:        m.Name,
				Value:       m.Value,
				Description: m.Description,
			})
		}
		v.Enums = append(v.Enums, ev)
	}
	for _, t := range s.Types() {
		tv := typeView{
			Doc:         docComment("", fmt.Sprintf("%s is generated from %s.", t.GoName, ucmis.Compact(t.IRI)), t.Description),
			GoName:      t.GoName,
			Name:        t.Name,
			IRI:         t.IRI,
			Description: t.Description,
		}
		if t.Super != nil {
			tv.Super = t.Super.GoName
		}
		for _, f := range t.Fields {
			fv := newFieldView(t, f)
			if strings.Contains(fv.GoType, "time.Time") {
				v.UsesTime = true
			}
			tv.Fields = append(tv.Fields, fv)
		}
		v.Types = append(v.Types, tv)
	}
	return v
}

func newFieldView(owner *TypeDefinition, f *FieldDefinition) fieldView {
	elem := GoType(f.Type)
	isRef := strings.HasPrefix(elem, "*")
	isIface := elem == "schema.Object" || elem == "any"
	enum, isEnum := f.Type.Enum()

	field := fmt.Sprintf("obj.(*%s).%s", owner.GoName, f.GoName)
	fv := fieldView{
		Doc:         docComment("\t", "", f.Description),
		GoName:      f.GoName,
		Name:        f.Name,
		Predicate:   f.Predicate,
		Range:       stringSlice(f.Ranges),
		Kind:        fieldKind(f.Type),
		List:        f.List,
		Optional:    f.Optional,
		Description: f.Description,
	}
	if isEnum {
		fv.Enum = exportName(enum.Name) + "Enum"
	}

	switch {
	case f.List:
		fv.GoType = "[]" + elem
		fv.Get = fmt.Sprintf("schema.Values(%s)", field)
		if isEnum {
			fv.Set = fmt.Sprintf("schema.AppendEnum(&%s, v)", field)
		} else {
			fv.Set = fmt.Sprintf("schema.Append(&%s, v)", field)
		}
	case isRef:
		fv.GoType = elem
		fv.Set = fmt.Sprintf("schema.Assign(&%s, v)", field)
		fv.Get = fmt.Sprintf("schema.Ref(%s)", field)
	case isIface:
		fv.GoType = elem
		fv.Set = fmt.Sprintf("schema.Assign(&%s, v)", field)
		fv.Get = fmt.Sprintf("schema.Iface(%s)", field)
	case f.Optional:
		fv.GoType = "*" + elem
		fv.Get = fmt.Sprintf("schema.Value(%s)", field)
		if isEnum {
			fv.Set = fmt.Sprintf("schema.AssignEnumPtr(&%s, v)", field)
		} else {
			fv.Set = fmt.Sprintf("schema.AssignPtr(&%s, v)", field)
		}
	default:
		fv.GoType = elem
		fv.Get = fmt.Sprintf("schema.One(%s)", field)
		if isEnum {
			fv.Set = fmt.Sprintf("schema.AssignEnum(&%s, v)", field)
		} else {
			fv.Set = fmt.Sprintf("schema.Assign(&%s, v)", field)
		}
	}
	return fv
}

// GoType returns the Go element type for r. Class and datatype references
// are pointers. Unions collapse to their common type, to schema.Object
// when every member is an object, and to any otherwise.
func GoType(r TypeRef) string {
	switch r.Kind {
	case RefPrimitive:
		switch r.Name {
		case PrimInteger:
			return "int64"
		case PrimBoolean:
			return "bool"
		case PrimDate, PrimDateTime:
			return "time.Time"
		case PrimDecimal, PrimDouble:
			return "float64"
		default:
			return "schema.Text"
		}
	case RefEnum:
		return exportName(r.Name)
	case RefDatatype, RefClass:
		return "*" + exportName(r.Name)
	case RefUnion:
		if len(r.Members) == 0 {
			return "any"
		}
		first := GoType(r.Members[0])
		same := true
		for _, m := range r.Members[1:] {
			if GoType(m) != first {
				same = false
				break
			}
		}
		if same {
			return first
		}
		if r.IsObject() {
			return "schema.Object"
		}
	}
	return "any"
}

func fieldKind(r TypeRef) string {
	if _, ok := r.Enum(); ok {
		return "KindEnum"
	}
	if r.IsObject() {
		return "KindObject"
	}
	if GoType(r) == "any" {
		return "KindAny"
	}
	return "KindLiteral"
}

func stringSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func docComment(indent, lead, description string) string {
	var lines []string
	if lead != "" {
		lines = append(lines, lead)
	}
	if description != "" {
		if lead != "" {
			lines = append(lines, "")
		}
		lines = append(lines, wrap(description, 72)...)
	}
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent + "//")
		if l != "" {
			b.WriteString(" " + l)
		}
	}
	return b.String()
}
