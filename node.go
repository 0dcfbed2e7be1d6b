// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

// Kind identifies one SchemaNode variant.
type Kind int

// SchemaNode variants.
const (
	KindBoolean Kind = iota + 1
	KindNumber
	KindString
	KindArray
	KindObject
	KindAllOf
	KindOneOf
)

// String returns variant name.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindAllOf:
		return "allOf"
	case KindOneOf:
		return "oneOf"
	default:
		return "unknown"
	}
}

// NumericKind distinguishes integer and number schemas.
type NumericKind string

// Numeric kinds.
const (
	NumericInteger NumericKind = TypeInteger
	NumericNumber  NumericKind = TypeNumber
)

// Node is one built schema node. The set of implementations is closed:
// *Boolean, *Number, *String, *Array, *Object, *AllOf and *OneOf.
type Node interface {
	Kind() Kind
	Attrs() *Attributes
	sealed()
}

// Attributes are shared by all node variants.
type Attributes struct {
	// Name is empty for anonymous nodes (array items, oneOf branches of an embedded oneOf).
	Name        string
	Required    bool
	Nullable    *bool
	Description string
	Default     any
	HasDefault  bool
	// ShowName controls whether Name is printed before the example value.
	ShowName bool
}

// Attrs returns shared attributes.
func (a *Attributes) Attrs() *Attributes { return a }

func (a *Attributes) sealed() {}

// IsNullable reports whether nullable flag is set and true.
func (a *Attributes) IsNullable() bool {
	return a.Nullable != nil && *a.Nullable
}

// Boolean is a boolean leaf.
type Boolean struct {
	Attributes
}

// Number is an integer or number leaf.
type Number struct {
	Attributes
	NumericKind NumericKind
	Format      string
	Minimum     *float64
	Maximum     *float64
	Enum        []float64
}

// String is a string leaf.
type String struct {
	Attributes
	Format    string
	MinLength *int64
	MaxLength *int64
	Enum      []string
}

// Array is rendered with exactly one representative element.
type Array struct {
	Attributes
	Items    Node
	MinItems *int64
	MaxItems *int64
}

// Object holds members in declaration order, followed by additional property
// placeholders and an embedded oneOf member.
type Object struct {
	Attributes
	Members []Node
}

// AllOf resolves to exactly one node at construction time.
type AllOf struct {
	Attributes
	Resolved Node
}

// OneOf keeps its alternatives in declaration order.
type OneOf struct {
	Attributes
	Branches []Node
}

// Kind implements Node.
func (*Boolean) Kind() Kind { return KindBoolean }

// Kind implements Node.
func (*Number) Kind() Kind { return KindNumber }

// Kind implements Node.
func (*String) Kind() Kind { return KindString }

// Kind implements Node.
func (*Array) Kind() Kind { return KindArray }

// Kind implements Node.
func (*Object) Kind() Kind { return KindObject }

// Kind implements Node.
func (*AllOf) Kind() Kind { return KindAllOf }

// Kind implements Node.
func (*OneOf) Kind() Kind { return KindOneOf }
