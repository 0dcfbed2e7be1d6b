// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFragmentPreservesPropertyOrder(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"yaml": "type: object\nproperties:\n  zulu:\n    type: string\n  alpha:\n    type: integer\n  mike:\n    type: boolean\n",
		"json": `{"type":"object","properties":{"zulu":{"type":"string"},"alpha":{"type":"integer"},"mike":{"type":"boolean"}}}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fragment, err := ParseFragment([]byte(input))
			if err != nil {
				t.Fatalf("ParseFragment: %v", err)
			}

			names := make([]string, 0, len(fragment.Properties))
			for _, prop := range fragment.Properties {
				names = append(names, prop.Name)
			}

			got := strings.Join(names, ",")
			if got != "zulu,alpha,mike" {
				t.Fatalf("property order = %q, want %q", got, "zulu,alpha,mike")
			}
		})
	}
}

func TestParseFragmentTypeListMarksNullable(t *testing.T) {
	t.Parallel()

	fragment, err := ParseFragment([]byte(`{"type":["null","string"],"maxLength":5}`))
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}

	if fragment.Type != TypeString {
		t.Fatalf("type = %q, want %q", fragment.Type, TypeString)
	}

	if fragment.Nullable == nil || !*fragment.Nullable {
		t.Fatalf("nullable = %v, want true", fragment.Nullable)
	}

	if fragment.MaxLength == nil || *fragment.MaxLength != 5 {
		t.Fatalf("maxLength = %v, want 5", fragment.MaxLength)
	}
}

func TestParseFragmentKeywords(t *testing.T) {
	t.Parallel()

	fragment, err := ParseFragment([]byte(`
type: object
description: Pet record
required: [id, name]
properties:
  id:
    type: integer
    format: int64
    minimum: 1
    maximum: 100
  name:
    type: string
    enum: [cat, dog]
    default: cat
  tags:
    type: array
    minItems: 0
    items:
      type: string
additionalProperties:
  type: string
`))
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}

	if fragment.Description != "Pet record" {
		t.Fatalf("description = %q", fragment.Description)
	}

	if got := strings.Join(fragment.Required, ","); got != "id,name" {
		t.Fatalf("required = %q", got)
	}

	id, ok := fragment.Property("id")
	if !ok {
		t.Fatalf("missing id property")
	}

	if id.Format != "int64" || id.Minimum == nil || *id.Minimum != 1 || id.Maximum == nil || *id.Maximum != 100 {
		t.Fatalf("unexpected id fragment: %+v", id)
	}

	name, _ := fragment.Property("name")
	if len(name.Enum) != 2 || !name.HasDefault || name.Default != "cat" {
		t.Fatalf("unexpected name fragment: %+v", name)
	}

	tags, _ := fragment.Property("tags")
	if tags.Items == nil || tags.Items.Type != TypeString {
		t.Fatalf("unexpected tags items: %+v", tags.Items)
	}

	if tags.MinItems == nil || *tags.MinItems != 0 {
		t.Fatalf("minItems = %v, want 0", tags.MinItems)
	}

	if fragment.AdditionalProperties == nil || fragment.AdditionalProperties.Type != TypeString {
		t.Fatalf("unexpected additionalProperties: %+v", fragment.AdditionalProperties)
	}
}

func TestParseFragmentBooleanAdditionalPropertiesHasNoSchema(t *testing.T) {
	t.Parallel()

	fragment, err := ParseFragment([]byte(`{"type":"object","additionalProperties":true}`))
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}

	if fragment.AdditionalProperties != nil {
		t.Fatalf("additionalProperties = %+v, want nil", fragment.AdditionalProperties)
	}
}

func TestParseFragmentFalseDefaultIsKept(t *testing.T) {
	t.Parallel()

	fragment, err := ParseFragment([]byte(`{"type":"boolean","default":false}`))
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}

	if !fragment.HasDefault || fragment.Default != false {
		t.Fatalf("default = %v (has=%v), want false", fragment.Default, fragment.HasDefault)
	}
}

func TestParseFragmentEmptyCombinatorIsDeclared(t *testing.T) {
	t.Parallel()

	fragment, err := ParseFragment([]byte(`{"allOf":[]}`))
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}

	if fragment.AllOf == nil {
		t.Fatalf("allOf should be declared")
	}

	if fragment.OneOf != nil {
		t.Fatalf("oneOf should stay absent")
	}
}

func TestParseFragmentErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "scalar root", input: `"string"`, want: ErrFragmentRootType},
		{name: "sequence root", input: `[1, 2]`, want: ErrFragmentRootType},
		{name: "empty", input: ``, want: ErrFragmentRootType},
		{name: "broken syntax", input: `{"type": `, want: ErrDecodeFragment},
		{name: "bad minimum", input: `{"type":"integer","minimum":"abc"}`, want: ErrDecodeFragment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseFragment([]byte(tc.input))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseFragmentFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	if err := os.WriteFile(path, []byte("type: string\nformat: email\n"), 0o600); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	fragment, err := ParseFragmentFile(path)
	if err != nil {
		t.Fatalf("ParseFragmentFile: %v", err)
	}

	if fragment.Format != "email" {
		t.Fatalf("format = %q, want email", fragment.Format)
	}

	_, err = ParseFragmentFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrReadFragmentFile) {
		t.Fatalf("expected ErrReadFragmentFile, got %v", err)
	}
}

func TestParseFragmentFollowsAliases(t *testing.T) {
	t.Parallel()

	fragment, err := ParseFragment([]byte(`
type: object
properties:
  first: &name
    type: string
    maxLength: 8
  second: *name
`))
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}

	second, ok := fragment.Property("second")
	if !ok || second.MaxLength == nil || *second.MaxLength != 8 {
		t.Fatalf("alias property not resolved: %+v", second)
	}
}
