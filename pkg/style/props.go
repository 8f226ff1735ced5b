package style

import (
	"sort"
	"strings"
)

// Prop is a single name/value pair.
type Prop struct {
	Name  string
	Value any
}

// Props is an ordered prop bag. Order is significant: compiled styles and
// forwarded attributes keep the order in which props were given.
//
//	style.Props{{"width", 100}, {"onClick", handler}}
type Props []Prop

// FromMap converts an unordered map into Props, sorted by name.
func FromMap(m map[string]any) Props {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make(Props, 0, len(names))
	for _, name := range names {
		out = append(out, Prop{Name: name, Value: m[name]})
	}
	return out
}

// Get returns the value for name.
func (p Props) Get(name string) (any, bool) {
	if i := indexOf(p, name); i >= 0 {
		return p[i].Value, true
	}
	return nil, false
}

// Has reports whether name is present.
func (p Props) Has(name string) bool {
	return indexOf(p, name) >= 0
}

// Set replaces the value of an existing prop in place, or appends it.
func (p Props) Set(name string, value any) Props {
	if i := indexOf(p, name); i >= 0 {
		p[i].Value = value
		return p
	}
	return append(p, Prop{Name: name, Value: value})
}

// Delete removes name, keeping the order of the remaining props.
func (p Props) Delete(name string) Props {
	i := indexOf(p, name)
	if i < 0 {
		return p
	}
	return append(p[:i:i], p[i+1:]...)
}

// Merge returns a copy of p with every prop of other set on top of it.
func (p Props) Merge(other Props) Props {
	out := p.Clone()
	for _, prop := range other {
		out = out.Set(prop.Name, prop.Value)
	}
	return out
}

// Clone returns a shallow copy.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	copy(out, p)
	return out
}

// Names returns the prop names in order.
func (p Props) Names() []string {
	names := make([]string, len(p))
	for i, prop := range p {
		names[i] = prop.Name
	}
	return names
}

// Map returns an unordered copy.
func (p Props) Map() map[string]any {
	m := make(map[string]any, len(p))
	for _, prop := range p {
		m[prop.Name] = prop.Value
	}
	return m
}

// Record is a compiled style: CSS property (or custom property) names mapped
// to inline values, in emission order. A Record never holds nil values.
type Record []Prop

// Get returns the value for name.
func (r Record) Get(name string) (any, bool) {
	return Props(r).Get(name)
}

// Len returns the number of declarations.
func (r Record) Len() int { return len(r) }

// Set replaces or appends a declaration. Nil values are ignored.
func (r Record) Set(name string, value any) Record {
	if isNil(value) {
		return r
	}
	return Record(Props(r).Set(name, value))
}

// Merge returns a copy of r with other's declarations set on top of it.
// Nil values in other are ignored.
func (r Record) Merge(other Record) Record {
	out := Record(Props(r).Clone())
	for _, decl := range other {
		out = out.Set(decl.Name, decl.Value)
	}
	return out
}

// Map returns an unordered copy, keyed by the names as emitted.
func (r Record) Map() map[string]any {
	return Props(r).Map()
}

// String renders the record as inline CSS declarations. camelCase names are
// converted to kebab-case; custom properties are written as is.
func (r Record) String() string {
	var b strings.Builder
	for i, decl := range r {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(CSSName(decl.Name))
		b.WriteString(": ")
		b.WriteString(formatValue(decl.Value))
	}
	return b.String()
}

func indexOf(p Props, name string) int {
	for i := range p {
		if p[i].Name == name {
			return i
		}
	}
	return -1
}
