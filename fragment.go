// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema type names recognized in fragment "type" keyword.
const (
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeArray   = "array"
	TypeObject  = "object"
	typeNull    = "null"
)

// Fragment is a parsed JSON-Schema-like description of a value, as found in an
// OpenAPI Schema Object. Only keywords used by the renderer are kept.
//
// Nil slices mean the keyword is absent; AllOf and OneOf are non-nil (possibly
// empty) whenever the keyword is declared.
type Fragment struct {
	Type        string
	Format      string
	Description string

	AllOf []*Fragment
	OneOf []*Fragment

	Properties           []Property
	Required             []string
	AdditionalProperties *Fragment
	Items                *Fragment

	Enum       []any
	Default    any
	HasDefault bool
	Nullable   *bool

	Minimum   *float64
	Maximum   *float64
	MinLength *int64
	MaxLength *int64
	MinItems  *int64
	MaxItems  *int64
}

// Property is one named entry of a fragment "properties" mapping.
type Property struct {
	Name   string
	Schema *Fragment
}

// IsObject reports whether fragment declares object type.
func (f *Fragment) IsObject() bool {
	return f != nil && f.Type == TypeObject
}

// Property returns declared property schema by name.
func (f *Fragment) Property(name string) (*Fragment, bool) {
	if f == nil {
		return nil, false
	}

	for _, prop := range f.Properties {
		if prop.Name == name {
			return prop.Schema, true
		}
	}

	return nil, false
}

// clone returns shallow copy of fragment.
func (f *Fragment) clone() *Fragment {
	out := *f
	return &out
}

// ParseFragmentFile reads schema fragment from JSON or YAML file.
func ParseFragmentFile(path string) (*Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFragmentFile, err)
	}

	return ParseFragment(data)
}

// ParseFragment decodes JSON or YAML schema fragment preserving property order.
func ParseFragment(data []byte) (*Fragment, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFragment, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, ErrFragmentRootType
		}

		root = root.Content[0]
	}

	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, ErrFragmentRootType
	}

	return FragmentFromNode(root)
}

// FragmentFromNode converts YAML mapping node into schema fragment.
func FragmentFromNode(node *yaml.Node) (*Fragment, error) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, ErrFragmentRootType
	}

	out := &Fragment{}
	for index := 0; index+1 < len(node.Content); index += 2 {
		key := node.Content[index].Value
		value := resolveAlias(node.Content[index+1])

		if err := out.decodeKeyword(key, value); err != nil {
			return nil, fmt.Errorf("%w: keyword %q at line %d: %w", ErrDecodeFragment, key, value.Line, err)
		}
	}

	return out, nil
}

// decodeKeyword applies one recognized keyword value to fragment.
func (f *Fragment) decodeKeyword(key string, value *yaml.Node) error {
	switch key {
	case "type":
		f.decodeType(value)
	case "format":
		f.Format = strings.TrimSpace(value.Value)
	case "description":
		f.Description = value.Value
	case "allOf":
		items, err := fragmentList(value)
		if err != nil {
			return err
		}

		f.AllOf = items
	case "oneOf":
		items, err := fragmentList(value)
		if err != nil {
			return err
		}

		f.OneOf = items
	case "properties":
		props, err := propertyList(value)
		if err != nil {
			return err
		}

		f.Properties = props
	case "required":
		if value.Kind != yaml.SequenceNode {
			return nil
		}

		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}

		f.Required = names
	case "items":
		if value.Kind != yaml.MappingNode {
			return nil
		}

		items, err := FragmentFromNode(value)
		if err != nil {
			return err
		}

		f.Items = items
	case "additionalProperties":
		// Boolean form carries no schema.
		if value.Kind != yaml.MappingNode {
			return nil
		}

		extra, err := FragmentFromNode(value)
		if err != nil {
			return err
		}

		f.AdditionalProperties = extra
	case "enum":
		if value.Kind != yaml.SequenceNode {
			return nil
		}

		var values []any
		if err := value.Decode(&values); err != nil {
			return err
		}

		f.Enum = values
	case "default":
		var def any
		if err := value.Decode(&def); err != nil {
			return err
		}

		f.Default = def
		f.HasDefault = true
	case "nullable":
		return decodeOptional(value, &f.Nullable)
	case "minimum":
		return decodeOptional(value, &f.Minimum)
	case "maximum":
		return decodeOptional(value, &f.Maximum)
	case "minLength":
		return decodeOptional(value, &f.MinLength)
	case "maxLength":
		return decodeOptional(value, &f.MaxLength)
	case "minItems":
		return decodeOptional(value, &f.MinItems)
	case "maxItems":
		return decodeOptional(value, &f.MaxItems)
	}

	return nil
}

// decodeType reads string or list form of "type" keyword.
func (f *Fragment) decodeType(value *yaml.Node) {
	switch value.Kind {
	case yaml.ScalarNode:
		f.Type = normalizeTypeName(value.Value)
	case yaml.SequenceNode:
		for _, item := range value.Content {
			name := normalizeTypeName(item.Value)
			if name == typeNull {
				nullable := true
				f.Nullable = &nullable
				continue
			}

			if f.Type == "" {
				f.Type = name
			}
		}
	}
}

// normalizeTypeName lowercases and trims type identifier.
func normalizeTypeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// fragmentList decodes sequence of schema mappings, skipping non-mapping items.
func fragmentList(value *yaml.Node) ([]*Fragment, error) {
	if value.Kind != yaml.SequenceNode {
		return nil, nil
	}

	out := make([]*Fragment, 0, len(value.Content))
	for _, item := range value.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			continue
		}

		fragment, err := FragmentFromNode(item)
		if err != nil {
			return nil, err
		}

		out = append(out, fragment)
	}

	return out, nil
}

// propertyList decodes ordered "properties" mapping.
func propertyList(value *yaml.Node) ([]Property, error) {
	if value.Kind != yaml.MappingNode {
		return nil, nil
	}

	out := make([]Property, 0, len(value.Content)/2)
	for index := 0; index+1 < len(value.Content); index += 2 {
		name := value.Content[index].Value
		schemaNode := resolveAlias(value.Content[index+1])
		if schemaNode.Kind != yaml.MappingNode {
			continue
		}

		schema, err := FragmentFromNode(schemaNode)
		if err != nil {
			return nil, err
		}

		out = append(out, Property{Name: name, Schema: schema})
	}

	return out, nil
}

// decodeOptional decodes scalar node into newly allocated pointer target.
func decodeOptional[T any](value *yaml.Node, target **T) error {
	if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
		return nil
	}

	var decoded T
	if err := value.Decode(&decoded); err != nil {
		return err
	}

	*target = &decoded
	return nil
}

// resolveAlias follows YAML alias nodes to their anchors.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	return node
}
