// Package jsondoc implements a small JSON document tree with a
// recursive-descent parser and a compact/indented printer. It exists so the
// wire layer can build requests field by field and walk responses without
// committing to fixed struct shapes.
package jsondoc

// Kind identifies the type of a Value node.
type Kind int

const (
	Null Kind = iota
	False
	True
	Number
	String
	Array
	Object
	// Raw holds pre-rendered JSON text that the printer emits verbatim.
	Raw
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case False:
		return "false"
	case True:
		return "true"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	case Raw:
		return "raw"
	}
	return "invalid"
}

// Value is one node of a JSON document. A node owns its children; there are
// no links back to the parent.
type Value struct {
	Kind Kind

	// Key is the member name when this node is a child of an object.
	Key string

	// Str holds the payload for String and Raw nodes.
	Str string

	// Num and Int hold the payload for Number nodes. Int is Num truncated
	// toward zero.
	Num float64
	Int int

	Children []*Value
}

func NewNull() *Value { return &Value{Kind: Null} }

func NewBool(b bool) *Value {
	if b {
		return &Value{Kind: True}
	}
	return &Value{Kind: False}
}

func NewNumber(n float64) *Value {
	return &Value{Kind: Number, Num: n, Int: int(n)}
}

func NewString(s string) *Value { return &Value{Kind: String, Str: s} }

func NewRaw(s string) *Value { return &Value{Kind: Raw, Str: s} }

func NewArray() *Value { return &Value{Kind: Array} }

func NewObject() *Value { return &Value{Kind: Object} }

// Append adds v to the end of an array node and returns the array.
func (a *Value) Append(v *Value) *Value {
	a.Children = append(a.Children, v)
	return a
}

// Add adds a member to an object node under the given key and returns the
// object. Duplicate keys are appended, not replaced; Get returns the first.
func (o *Value) Add(key string, v *Value) *Value {
	v.Key = key
	o.Children = append(o.Children, v)
	return o
}

// AddString, AddNumber, AddBool and AddNull are shorthands for Add with a
// fresh leaf node.
func (o *Value) AddString(key, s string) *Value { return o.Add(key, NewString(s)) }

func (o *Value) AddNumber(key string, n float64) *Value { return o.Add(key, NewNumber(n)) }

func (o *Value) AddBool(key string, b bool) *Value { return o.Add(key, NewBool(b)) }

func (o *Value) AddNull(key string) *Value { return o.Add(key, NewNull()) }

// Get returns the first member of an object node with the given key, or nil.
func (o *Value) Get(key string) *Value {
	if o == nil || o.Kind != Object {
		return nil
	}
	for _, c := range o.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Index returns the i-th element of an array node or the i-th member of
// an object node, in insertion order. It returns nil if the receiver is
// any other kind or i is out of range.
func (a *Value) Index(i int) *Value {
	if a == nil || (a.Kind != Array && a.Kind != Object) {
		return nil
	}
	if i < 0 || i >= len(a.Children) {
		return nil
	}
	return a.Children[i]
}

// Len returns the number of children of an array or object node.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Children)
}

// StringValue returns the string payload and whether the node is a string.
func (v *Value) StringValue() (string, bool) {
	if v == nil || v.Kind != String {
		return "", false
	}
	return v.Str, true
}

// NumberValue returns the numeric payload and whether the node is a number.
func (v *Value) NumberValue() (float64, bool) {
	if v == nil || v.Kind != Number {
		return 0, false
	}
	return v.Num, true
}

// BoolValue returns the boolean payload and whether the node is a boolean.
func (v *Value) BoolValue() (bool, bool) {
	if v == nil {
		return false, false
	}
	switch v.Kind {
	case True:
		return true, true
	case False:
		return false, true
	}
	return false, false
}

// IsNull reports whether the node is a JSON null.
func (v *Value) IsNull() bool { return v != nil && v.Kind == Null }
