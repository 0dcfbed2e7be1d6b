// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"fmt"
	"strconv"
)

// ResolveAllOf builds allOf combination declared by fragment. Required marks
// the field holding the combination as required by its parent.
func ResolveAllOf(name string, fragment *Fragment, required bool) (Node, error) {
	if fragment == nil {
		return nil, ErrNilFragment
	}

	return resolveAllOf(scope{name: name, path: name, required: required, showName: name != ""}, fragment)
}

// ResolveOneOf builds oneOf alternation declared by fragment.
func ResolveOneOf(name string, fragment *Fragment, required bool) (Node, error) {
	if fragment == nil {
		return nil, ErrNilFragment
	}

	node, err := resolveOneOf(scope{name: name, path: name, required: required, showName: name != ""}, fragment)
	if err != nil {
		return nil, err
	}

	return node, nil
}

// resolveAllOf merges uniform object fragments into one synthetic object, or
// resolves a single fragment directly.
func resolveAllOf(sc scope, fragment *Fragment) (Node, error) {
	if fragment.AllOf == nil {
		return nil, fmt.Errorf("%w %q at %q", ErrMissingCombinator, "allOf", pathOrRoot(sc.path))
	}

	required := NewNameSet(fragment.Required...)
	allObjects := true
	for _, part := range fragment.AllOf {
		required = required.Union(part.Required...)
		if !part.IsObject() {
			allObjects = false
		}
	}

	node := &AllOf{Attributes: attributesFor(sc, fragment)}

	switch {
	case len(fragment.AllOf) == 1 && !(allObjects && len(fragment.Properties) > 0):
		resolved, err := resolveSingleAllOf(sc, fragment, required)
		if err != nil {
			return nil, err
		}

		if resolved == nil {
			return nil, nil
		}

		node.Resolved = resolved
	case allObjects:
		merged, err := mergeAllOfObjects(sc, fragment, required)
		if err != nil {
			return nil, err
		}

		node.Resolved = merged
	default:
		return nil, fmt.Errorf("%w at %q", ErrTypeInconsistency, pathOrRoot(sc.path))
	}

	return node, nil
}

// resolveSingleAllOf builds the only allOf fragment carrying outer nullable,
// default and description.
func resolveSingleAllOf(sc scope, fragment *Fragment, required NameSet) (Node, error) {
	inner := fragment.AllOf[0].clone()
	if fragment.Nullable != nil {
		inner.Nullable = fragment.Nullable
	}

	if fragment.HasDefault {
		inner.Default = fragment.Default
		inner.HasDefault = true
	}

	if fragment.Description != "" {
		inner.Description = fragment.Description
	}

	if inner.IsObject() {
		inner.Required = setNames(required)
	}

	return build(sc, inner)
}

// mergeAllOfObjects flattens properties of all fragments and sibling
// properties into one object.
func mergeAllOfObjects(sc scope, fragment *Fragment, required NameSet) (*Object, error) {
	seen := make(map[string]struct{})
	members := make([]Node, 0)
	for _, part := range fragment.AllOf {
		partMembers, err := buildMembers(sc.path, part.Properties, required, seen)
		if err != nil {
			return nil, err
		}

		members = append(members, partMembers...)
	}

	own, err := buildMembers(sc.path, fragment.Properties, required, seen)
	if err != nil {
		return nil, err
	}

	members = append(members, own...)

	// Requiredness belongs to members; the merged container is never required.
	return &Object{
		Attributes: Attributes{
			Name:        sc.name,
			Nullable:    fragment.Nullable,
			Description: fragment.Description,
			ShowName:    sc.showName,
		},
		Members: members,
	}, nil
}

// resolveOneOf builds every alternative as optional anonymous branch.
func resolveOneOf(sc scope, fragment *Fragment) (*OneOf, error) {
	if fragment.OneOf == nil {
		return nil, fmt.Errorf("%w %q at %q", ErrMissingCombinator, "oneOf", pathOrRoot(sc.path))
	}

	node := &OneOf{
		Attributes: attributesFor(sc, fragment),
		Branches:   make([]Node, 0, len(fragment.OneOf)),
	}

	for index, alternative := range fragment.OneOf {
		// Branches are anonymous values; the field name is not repeated.
		branch, err := build(scope{
			path: appendPath(sc.path, "oneOf["+strconv.Itoa(index)+"]"),
		}, alternative)
		if err != nil {
			return nil, err
		}

		if branch == nil {
			continue
		}

		node.Branches = append(node.Branches, branch)
	}

	return node, nil
}

// setNames returns set members as slice.
func setNames(set NameSet) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}

	return out
}
