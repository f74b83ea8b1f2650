package ontology

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Unbounded is the Max of a cardinality with no upper limit.
const Unbounded = -1

// Cardinality is an occurrence range. The zero value is an unknown
// cardinality, which callers treat as optional and single-valued.
type Cardinality struct {
	Min   int
	Max   int
	Known bool
}

// ParseCardinality parses XSD minOccurs and maxOccurs values. Empty strings
// take the XSD default of 1.
func ParseCardinality(minOccurs, maxOccurs string) (Cardinality, error) {
	c := Cardinality{Min: 1, Max: 1, Known: true}
	if minOccurs != "" {
		n, err := strconv.Atoi(strings.TrimSpace(minOccurs))
		if err != nil || n < 0 {
			return Cardinality{}, fmt.Errorf("invalid minOccurs %q", minOccurs)
		}
		c.Min = n
	}
	switch strings.TrimSpace(maxOccurs) {
	case "":
	case "unbounded":
		c.Max = Unbounded
	default:
		n, err := strconv.Atoi(strings.TrimSpace(maxOccurs))
		if err != nil || n < 0 {
			return Cardinality{}, fmt.Errorf("invalid maxOccurs %q", maxOccurs)
		}
		c.Max = n
	}
	return c, nil
}

// Many reports whether more than one value is allowed.
func (c Cardinality) Many() bool {
	return c.Known && (c.Max == Unbounded || c.Max > 1)
}

// Optional reports whether zero values are allowed. Unknown cardinalities
// are optional.
func (c Cardinality) Optional() bool {
	return !c.Known || c.Min == 0
}

// Display renders the range as min..max, using * for unbounded. Unknown
// cardinalities render as the empty string.
func (c Cardinality) Display() string {
	if !c.Known {
		return ""
	}
	max := "*"
	if c.Max != Unbounded {
		max = strconv.Itoa(c.Max)
	}
	return strconv.Itoa(c.Min) + ".." + max
}

func (c Cardinality) String() string {
	if !c.Known {
		return "unknown"
	}
	return c.Display()
}

// xmlNS is the namespace the decoder assigns to xml:* attributes.
const xmlNS = "http://www.w3.org/XML/1998/namespace"

// xsdTypeSuffix is appended to a resource name to form its complexType id.
const xsdTypeSuffix = "XsdType"

type xsdNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xsdNode  `xml:",any"`
}

func (n *xsdNode) attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (n *xsdNode) id() string {
	for _, a := range n.Attrs {
		if a.Name.Local == "id" && (a.Name.Space == xmlNS || a.Name.Space == "xml" || a.Name.Space == "") {
			return a.Value
		}
	}
	return ""
}

type xsdElement struct {
	min, max   string
	validTypes []string
}

// CardinalitySource answers cardinality questions from the XML Schema
// rendition of the ontology. Complex types are found by the id or name
// <Owner>XsdType and elements by the id <Owner>-<property> for attributes
// or the association local name for associations. The allowed target
// types of an association live on a child element with the id
// <association>-validType.
type CardinalitySource struct {
	types map[string]map[string]*xsdElement
}

// ErrNoSchema is returned when the XML input is not an XML Schema document.
var ErrNoSchema = errors.New("not an XML schema")

// ParseXSD indexes an XML Schema document.
func ParseXSD(r io.Reader) (*CardinalitySource, error) {
	var root xsdNode
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode xsd: %w", err)
	}
	if root.XMLName.Local != "schema" {
		return nil, fmt.Errorf("%w: root element %s", ErrNoSchema, root.XMLName.Local)
	}

	src := &CardinalitySource{types: make(map[string]map[string]*xsdElement)}
	var visit func(n *xsdNode)
	visit = func(n *xsdNode) {
		if n.XMLName.Local == "complexType" {
			elems := make(map[string]*xsdElement)
			collectElements(n, elems)
			if id := n.id(); id != "" {
				src.types[id] = elems
			}
			if name, ok := n.attr("name"); ok {
				if _, exists := src.types[name]; !exists {
					src.types[name] = elems
				}
			}
			return
		}
		for i := range n.Children {
			visit(&n.Children[i])
		}
	}
	visit(&root)
	return src, nil
}

func collectElements(n *xsdNode, into map[string]*xsdElement) {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == "element" {
			if id := child.id(); id != "" {
				min, _ := child.attr("minOccurs")
				max, _ := child.attr("maxOccurs")
				into[id] = &xsdElement{min: min, max: max, validTypes: enumerations(child)}
			}
		}
		collectElements(child, into)
	}
}

func enumerations(n *xsdNode) []string {
	var out []string
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == "element" && child.id() != "" {
			continue
		}
		if child.XMLName.Local == "enumeration" {
			if v, ok := child.attr("value"); ok {
				out = append(out, v)
			}
		}
		out = append(out, enumerations(child)...)
	}
	return out
}

// LoadXSD reads and indexes an XML Schema file.
func LoadXSD(path string) (*CardinalitySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := ParseXSD(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return src, nil
}

func (c *CardinalitySource) element(owner, element string) (*xsdElement, bool) {
	if c == nil {
		return nil, false
	}
	elems, ok := c.types[owner+xsdTypeSuffix]
	if !ok {
		return nil, false
	}
	e, ok := elems[element]
	return e, ok
}

// Lookup returns the cardinality of element within the complex type of
// owner. Malformed occurrence values report as unknown.
func (c *CardinalitySource) Lookup(owner, element string) (Cardinality, bool) {
	e, ok := c.element(owner, element)
	if !ok {
		return Cardinality{}, false
	}
	card, err := ParseCardinality(e.min, e.max)
	if err != nil {
		return Cardinality{}, false
	}
	return card, true
}

// ValidTypes returns the enumerated target type names of element within
// the complex type of owner.
func (c *CardinalitySource) ValidTypes(owner, element string) []string {
	e, ok := c.element(owner, element)
	if !ok {
		return nil
	}
	return e.validTypes
}

// Len returns the number of indexed complex types.
func (c *CardinalitySource) Len() int {
	if c == nil {
		return 0
	}
	return len(c.types)
}
