// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// additionalPropertyPlaceholders is the number of synthetic members rendered
// for a schema-valued additionalProperties keyword.
const additionalPropertyPlaceholders = 3

// RequiredSet answers whether a property name is listed as required by its parent.
type RequiredSet interface {
	Contains(name string) bool
}

// NameSet is a RequiredSet backed by a map.
type NameSet map[string]struct{}

// NewNameSet builds set from names, ignoring blanks.
func NewNameSet(names ...string) NameSet {
	out := make(NameSet, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		out[name] = struct{}{}
	}

	return out
}

// Contains implements RequiredSet.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Union returns new set holding receiver names and extra names.
func (s NameSet) Union(names ...string) NameSet {
	out := make(NameSet, len(s)+len(names))
	for name := range s {
		out[name] = struct{}{}
	}

	for name, value := range NewNameSet(names...) {
		out[name] = value
	}

	return out
}

// scope is the construction context of one node.
type scope struct {
	name     string
	path     string
	required bool
	showName bool
}

// Build converts schema fragment into a node. Required flag is looked up for
// name in required set; an empty name builds an anonymous node.
//
// A fragment without recognized type or combinator yields a nil node and no
// error. Structural inconsistencies below it are returned as errors.
func Build(name string, fragment *Fragment, required RequiredSet) (Node, error) {
	if fragment == nil {
		return nil, ErrNilFragment
	}

	return build(namedScope("", name, required), fragment)
}

// namedScope returns scope for named member under parent path.
func namedScope(parentPath, name string, required RequiredSet) scope {
	isRequired := false
	if name != "" && required != nil {
		isRequired = required.Contains(name)
	}

	return scope{
		name:     name,
		path:     appendPath(parentPath, name),
		required: isRequired,
		showName: name != "",
	}
}

// build dispatches fragment to one variant constructor.
func build(sc scope, fragment *Fragment) (Node, error) {
	switch {
	case fragment.AllOf != nil:
		return resolveAllOf(sc, fragment)
	case fragment.OneOf != nil && !embedsOneOf(fragment):
		node, err := resolveOneOf(sc, fragment)
		if err != nil {
			return nil, err
		}

		return node, nil
	}

	switch fragment.Type {
	case TypeBoolean:
		return &Boolean{Attributes: attributesFor(sc, fragment)}, nil
	case TypeInteger, TypeNumber:
		return buildNumber(sc, fragment), nil
	case TypeString:
		return buildString(sc, fragment), nil
	case TypeArray:
		node, err := buildArray(sc, fragment)
		if err != nil {
			return nil, err
		}

		return node, nil
	case TypeObject:
		node, err := buildObject(sc, fragment)
		if err != nil {
			return nil, err
		}

		return node, nil
	default:
		return nil, nil
	}
}

// embedsOneOf reports whether oneOf sits beside object members and is rendered
// as the last object member instead of replacing the object.
func embedsOneOf(fragment *Fragment) bool {
	return fragment.IsObject() && (len(fragment.Properties) > 0 || fragment.AdditionalProperties != nil)
}

// attributesFor copies shared attributes from fragment under scope.
func attributesFor(sc scope, fragment *Fragment) Attributes {
	return Attributes{
		Name:        sc.name,
		Required:    sc.required,
		Nullable:    fragment.Nullable,
		Description: fragment.Description,
		Default:     fragment.Default,
		HasDefault:  fragment.HasDefault,
		ShowName:    sc.showName,
	}
}

// buildNumber creates integer or number leaf.
func buildNumber(sc scope, fragment *Fragment) *Number {
	kind := NumericInteger
	if fragment.Type == TypeNumber {
		kind = NumericNumber
	}

	node := &Number{
		Attributes:  attributesFor(sc, fragment),
		NumericKind: kind,
		Format:      fragment.Format,
		Minimum:     fragment.Minimum,
		Maximum:     fragment.Maximum,
	}

	if fragment.Enum != nil {
		node.Enum = make([]float64, 0, len(fragment.Enum))
		for _, value := range fragment.Enum {
			if number, ok := toFloat(value); ok {
				node.Enum = append(node.Enum, number)
			}
		}
	}

	return node
}

// buildString creates string leaf.
func buildString(sc scope, fragment *Fragment) *String {
	node := &String{
		Attributes: attributesFor(sc, fragment),
		Format:     fragment.Format,
		MinLength:  fragment.MinLength,
		MaxLength:  fragment.MaxLength,
	}

	if fragment.Enum != nil {
		node.Enum = make([]string, 0, len(fragment.Enum))
		for _, value := range fragment.Enum {
			node.Enum = append(node.Enum, formatScalar(value))
		}
	}

	return node
}

// buildArray creates array with one anonymous, optional items node.
func buildArray(sc scope, fragment *Fragment) (*Array, error) {
	itemPath := appendPath(sc.path, "[]")
	if fragment.Items == nil {
		return nil, fmt.Errorf("%w at %q: array has no items schema", ErrMissingDiscriminator, pathOrRoot(itemPath))
	}

	items, err := build(scope{path: itemPath}, fragment.Items)
	if err != nil {
		return nil, err
	}

	if items == nil {
		return nil, fmt.Errorf("%w at %q", ErrMissingDiscriminator, pathOrRoot(itemPath))
	}

	return &Array{
		Attributes: attributesFor(sc, fragment),
		Items:      items,
		MinItems:   fragment.MinItems,
		MaxItems:   fragment.MaxItems,
	}, nil
}

// buildObject creates object with declared, additional and embedded oneOf members.
func buildObject(sc scope, fragment *Fragment) (*Object, error) {
	members, err := buildMembers(sc.path, fragment.Properties, NewNameSet(fragment.Required...), nil)
	if err != nil {
		return nil, err
	}

	if extra := fragment.AdditionalProperties; extra != nil {
		for index := 1; index <= additionalPropertyPlaceholders; index++ {
			name := "additionalProperty" + strconv.Itoa(index)
			placeholder, err := buildObject(scope{
				name:     name,
				path:     appendPath(sc.path, name),
				showName: true,
			}, extra)
			if err != nil {
				return nil, err
			}

			members = append(members, placeholder)
		}
	}

	if fragment.OneOf != nil {
		alternatives, err := resolveOneOf(scope{path: sc.path}, fragment)
		if err != nil {
			return nil, err
		}

		members = append(members, alternatives)
	}

	return &Object{
		Attributes: attributesFor(sc, fragment),
		Members:    members,
	}, nil
}

// buildMembers builds named property members; properties without a
// recognizable schema are skipped. Names already in seen are skipped and
// recorded when seen is not nil.
func buildMembers(parentPath string, props []Property, required RequiredSet, seen map[string]struct{}) ([]Node, error) {
	out := make([]Node, 0, len(props))
	for _, prop := range props {
		if prop.Schema == nil {
			continue
		}

		if seen != nil {
			if _, exists := seen[prop.Name]; exists {
				continue
			}

			seen[prop.Name] = struct{}{}
		}

		member, err := build(namedScope(parentPath, prop.Name, required), prop.Schema)
		if err != nil {
			return nil, err
		}

		if member == nil {
			continue
		}

		out = append(out, member)
	}

	return out, nil
}

// appendPath joins path segments with a dot while preserving empty root prefix.
func appendPath(base, segment string) string {
	base = strings.TrimSpace(base)
	segment = strings.TrimSpace(segment)
	if base == "" {
		return segment
	}

	if segment == "" {
		return base
	}

	return base + "." + segment
}

// pathOrRoot renders empty path as root marker in error messages.
func pathOrRoot(path string) string {
	if path == "" {
		return "(root)"
	}

	return path
}
