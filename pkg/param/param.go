package param

import (
	"fmt"
	"strconv"
	"time"
)

// Value is the closed set of parameter tree node types. Every value a
// caller can hand to the message builder is one of Scalar, List, *Object,
// *AttachmentMarker or *XOPInclude; consumers switch exhaustively on the
// concrete type.
type Value interface {
	isValue()
}

// ScalarKind identifies the lexical type of a Scalar
type ScalarKind int

const (
	KindString ScalarKind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// Scalar is a leaf value rendered as element text content
type Scalar struct {
	Kind ScalarKind
	Str  string
	Int  int64
	Flt  float64
	Bool bool
	Time time.Time
}

// String creates a string Scalar
func String(s string) Scalar { return Scalar{Kind: KindString, Str: s} }

// Int creates an integer Scalar
func Int(i int64) Scalar { return Scalar{Kind: KindInt, Int: i} }

// Float creates a floating-point Scalar
func Float(f float64) Scalar { return Scalar{Kind: KindFloat, Flt: f} }

// Bool creates a boolean Scalar
func Bool(b bool) Scalar { return Scalar{Kind: KindBool, Bool: b} }

// Time creates a date/time Scalar rendered in xsd:dateTime form
func Time(t time.Time) Scalar { return Scalar{Kind: KindTime, Time: t} }

// Text returns the XML text content for the scalar using XSD lexical forms
func (s Scalar) Text() string {
	switch s.Kind {
	case KindInt:
		return strconv.FormatInt(s.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(s.Flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(s.Bool)
	case KindTime:
		return s.Time.UTC().Format(time.RFC3339)
	default:
		return s.Str
	}
}

// XSDType returns the xsd type name used for xsi:type annotations in
// encoded messages
func (s Scalar) XSDType() string {
	switch s.Kind {
	case KindInt:
		return "xsd:int"
	case KindFloat:
		return "xsd:double"
	case KindBool:
		return "xsd:boolean"
	case KindTime:
		return "xsd:dateTime"
	default:
		return "xsd:string"
	}
}

// List is an ordered sequence of values. When serialized the enclosing
// element name repeats once per item.
type List []Value

// Field is one named member of an Object
type Field struct {
	Name  string
	Value Value
}

// Object is an ordered name/value mapping. Field names must be unique;
// duplicates are reported when the tree is walked.
type Object struct {
	Fields []Field
}

// NewObject creates an Object from the given fields
func NewObject(fields ...Field) *Object {
	return &Object{Fields: fields}
}

// Set appends a field, replacing an existing field with the same name
func (o *Object) Set(name string, v Value) *Object {
	for i := range o.Fields {
		if o.Fields[i].Name == name {
			o.Fields[i].Value = v
			return o
		}
	}
	o.Fields = append(o.Fields, Field{Name: name, Value: v})
	return o
}

// Get returns the value for name, or nil if absent
func (o *Object) Get(name string) Value {
	for i := range o.Fields {
		if o.Fields[i].Name == name {
			return o.Fields[i].Value
		}
	}
	return nil
}

// Len returns the number of fields
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Fields)
}

// AttachmentMarker tags a position in the tree as binary content to be
// shipped as a MIME part. Markers never reach the XML serializer; the
// extractor replaces each with a *XOPInclude.
type AttachmentMarker struct {
	Data        []byte
	ContentType string

	// Optional per-marker overrides
	ContentID        string
	TransferEncoding string
}

// XOPInclude is the placeholder left behind once an attachment has been
// extracted. Href is always "cid:" + content-id.
type XOPInclude struct {
	Href string
}

func (Scalar) isValue()            {}
func (List) isValue()              {}
func (*Object) isValue()           {}
func (*AttachmentMarker) isValue() {}
func (*XOPInclude) isValue()       {}

// Error reports a malformed parameter tree, naming the offending key path
type Error struct {
	Path   string
	Reason string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid parameter tree: %s", e.Reason)
	}
	return fmt.Sprintf("invalid parameter at %s: %s", e.Path, e.Reason)
}

// Errorf creates an Error for the given path
func Errorf(path, format string, args ...interface{}) *Error {
	return &Error{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Path tracks the position inside a parameter tree for error reporting,
// rendered as "order.items[2].sku". The zero value is the tree root.
type Path struct {
	segments []string
}

// Child returns the path extended by an object field name
func (p Path) Child(name string) Path {
	segs := make([]string, len(p.segments), len(p.segments)+1)
	copy(segs, p.segments)
	return Path{segments: append(segs, name)}
}

// Index returns the path extended by a list index
func (p Path) Index(i int) Path {
	if len(p.segments) == 0 {
		return Path{segments: []string{fmt.Sprintf("[%d]", i)}}
	}
	segs := make([]string, len(p.segments))
	copy(segs, p.segments)
	segs[len(segs)-1] = fmt.Sprintf("%s[%d]", segs[len(segs)-1], i)
	return Path{segments: segs}
}

func (p Path) String() string {
	if len(p.segments) == 0 {
		return "(root)"
	}
	out := p.segments[0]
	for _, s := range p.segments[1:] {
		out += "." + s
	}
	return out
}
