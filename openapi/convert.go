// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/oasdoc"
)

// FragmentFromProxy resolves schema proxy and converts it into fragment.
func FragmentFromProxy(proxy *base.SchemaProxy) (*oasdoc.Fragment, error) {
	return newConverter().proxy(proxy, "")
}

// FragmentFromSchema converts libopenapi schema into fragment, keeping
// property declaration order.
func FragmentFromSchema(schema *base.Schema) (*oasdoc.Fragment, error) {
	return newConverter().schema(schema, "")
}

// maxSchemaDepth bounds nesting when cycles are hidden behind distinct proxies.
const maxSchemaDepth = 64

// converter tracks schemas and references on the current descent path.
type converter struct {
	active     map[*base.Schema]struct{}
	activeRefs map[string]struct{}
	depth      int
}

// newConverter creates converter with empty descent path.
func newConverter() *converter {
	return &converter{
		active:     make(map[*base.Schema]struct{}),
		activeRefs: make(map[string]struct{}),
	}
}

// proxy converts one schema proxy; nil proxy yields nil fragment.
func (c *converter) proxy(proxy *base.SchemaProxy, at string) (*oasdoc.Fragment, error) {
	if proxy == nil {
		return nil, nil
	}

	if proxy.IsReference() {
		ref := proxy.GetReference()
		if _, ok := c.activeRefs[ref]; ok {
			return nil, fmt.Errorf("%w at %q: %s", ErrCircularSchema, pathOrRoot(at), ref)
		}

		c.activeRefs[ref] = struct{}{}
		defer delete(c.activeRefs, ref)
	}

	schema := proxy.Schema()
	if schema == nil {
		if err := proxy.GetBuildError(); err != nil {
			return nil, fmt.Errorf("%w at %q: %w", ErrSchemaProxy, pathOrRoot(at), err)
		}

		return nil, nil
	}

	return c.schema(schema, at)
}

// schema converts recognized keywords of one schema.
func (c *converter) schema(schema *base.Schema, at string) (*oasdoc.Fragment, error) {
	if schema == nil {
		return nil, nil
	}

	if _, ok := c.active[schema]; ok || c.depth >= maxSchemaDepth {
		return nil, fmt.Errorf("%w at %q", ErrCircularSchema, pathOrRoot(at))
	}

	c.active[schema] = struct{}{}
	c.depth++
	defer func() {
		delete(c.active, schema)
		c.depth--
	}()

	out := &oasdoc.Fragment{
		Format:      strings.TrimSpace(schema.Format),
		Description: schema.Description,
		Required:    schema.Required,
		Nullable:    schema.Nullable,
		Minimum:     schema.Minimum,
		Maximum:     schema.Maximum,
		MinLength:   schema.MinLength,
		MaxLength:   schema.MaxLength,
		MinItems:    schema.MinItems,
		MaxItems:    schema.MaxItems,
	}

	for _, name := range schema.Type {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "null" {
			nullable := true
			out.Nullable = &nullable
			continue
		}

		if out.Type == "" {
			out.Type = name
		}
	}

	var err error
	if out.AllOf, err = c.list(schema.AllOf, at, "allOf"); err != nil {
		return nil, err
	}

	if out.OneOf, err = c.list(schema.OneOf, at, "oneOf"); err != nil {
		return nil, err
	}

	if schema.Properties != nil {
		out.Properties = make([]oasdoc.Property, 0, schema.Properties.Len())
		for pair := schema.Properties.First(); pair != nil; pair = pair.Next() {
			prop, err := c.proxy(pair.Value(), joinPath(at, pair.Key()))
			if err != nil {
				return nil, err
			}

			if prop == nil {
				continue
			}

			out.Properties = append(out.Properties, oasdoc.Property{Name: pair.Key(), Schema: prop})
		}
	}

	if schema.Items != nil && schema.Items.A != nil {
		if out.Items, err = c.proxy(schema.Items.A, joinPath(at, "[]")); err != nil {
			return nil, err
		}
	}

	// Boolean additionalProperties carries no schema.
	if schema.AdditionalProperties != nil && schema.AdditionalProperties.A != nil {
		if out.AdditionalProperties, err = c.proxy(schema.AdditionalProperties.A, joinPath(at, "additionalProperties")); err != nil {
			return nil, err
		}
	}

	if schema.Enum != nil {
		out.Enum = make([]any, 0, len(schema.Enum))
		for _, node := range schema.Enum {
			out.Enum = append(out.Enum, nodeValue(node))
		}
	}

	if schema.Default != nil {
		out.Default = nodeValue(schema.Default)
		out.HasDefault = true
	}

	return out, nil
}

// list converts combinator alternatives, skipping unresolved entries.
func (c *converter) list(proxies []*base.SchemaProxy, at, keyword string) ([]*oasdoc.Fragment, error) {
	if proxies == nil {
		return nil, nil
	}

	out := make([]*oasdoc.Fragment, 0, len(proxies))
	for index, proxy := range proxies {
		fragment, err := c.proxy(proxy, joinPath(at, fmt.Sprintf("%s[%d]", keyword, index)))
		if err != nil {
			return nil, err
		}

		if fragment != nil {
			out = append(out, fragment)
		}
	}

	return out, nil
}

// nodeValue decodes YAML node into plain Go value, falling back to raw scalar text.
func nodeValue(node *yaml.Node) any {
	if node == nil {
		return nil
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return node.Value
	}

	return value
}

// joinPath appends dotted segment.
func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}

	return prefix + "." + segment
}

// pathOrRoot renders empty path as root marker.
func pathOrRoot(at string) string {
	if at == "" {
		return "(root)"
	}

	return at
}
