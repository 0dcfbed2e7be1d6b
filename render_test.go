// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRenderPlainLeafHasNoAnnotation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		last  bool
		want  string
	}{
		{input: `{"type":"boolean"}`, last: false, want: `"flag": true,`},
		{input: `{"type":"boolean","default":false}`, last: true, want: `"flag": false`},
		{input: `{"type":"integer","nullable":true}`, last: true, want: `"flag": 0`},
		{input: `{"type":"number","format":"float"}`, last: false, want: `"flag": 0.0,`},
		{input: `{"type":"number","format":"double"}`, last: true, want: `"flag": 0.00`},
		{input: `{"type":"string","format":"email"}`, last: true, want: `"flag": "email@example.com"`},
		{input: `{"type":"string"}`, last: false, want: `"flag": "string",`},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			listing := testRenderer().Render(mustBuild(t, "flag", tc.input, nil), tc.last)
			if len(listing.Example) != 1 || listing.Example[0] != tc.want {
				t.Fatalf("example = %q, want %q", listing.Example, tc.want)
			}

			if len(listing.Annotations) != 0 {
				t.Fatalf("unexpected annotations: %q", listing.Annotations)
			}
		})
	}
}

func TestRenderAnnotatedLeaf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		required bool
		example  string
		note     string
	}{
		{
			name:     "required boolean",
			input:    `{"type":"boolean"}`,
			required: true,
			example:  `"field": true, <.>`,
			note:     "<.> required",
		},
		{
			name:    "number bounds",
			input:   `{"type":"integer","minimum":0,"maximum":10,"default":5}`,
			example: `"field": 5, <.>`,
			note:    "<.> value from `0` to `10` (default `5`)",
		},
		{
			name:    "number enum",
			input:   `{"type":"number","enum":[1,2.5],"nullable":true}`,
			example: `"field": 0, <.>`,
			note:    "<.> nullable possible values: `1`, `2.5`",
		},
		{
			name:     "string everything",
			input:    `{"type":"string","description":"Code","nullable":true,"minLength":2,"maxLength":4,"enum":["ab"],"default":"ab"}`,
			required: true,
			example:  `"field": "ab", <.>`,
			note:     "<.> required nullable Code length from `2` to `4` possible values: `ab` (default `ab`)",
		},
		{
			name:    "string only max length",
			input:   `{"type":"string","maxLength":16}`,
			example: `"field": "string", <.>`,
			note:    "<.> length to `16`",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var required RequiredSet = NewNameSet()
			if tc.required {
				required = NewNameSet("field")
			}

			listing := testRenderer().Render(mustBuild(t, "field", tc.input, required), false)
			if len(listing.Example) != 1 || listing.Example[0] != tc.example {
				t.Fatalf("example = %q, want %q", listing.Example, tc.example)
			}

			if len(listing.Annotations) != 1 || listing.Annotations[0] != tc.note {
				t.Fatalf("annotations = %q, want %q", listing.Annotations, tc.note)
			}
		})
	}
}

func TestRenderObject(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `
type: object
required: [id]
properties:
  id:
    type: integer
    description: Identifier
  name:
    type: string
  tags:
    type: array
    items:
      type: string
      enum: [a]
  owner:
    type: object
    nullable: true
    properties:
      email:
        type: string
        format: email
`, nil)

	listing := testRenderer().Render(node, true)
	assertLines(t, listing.Example, []string{
		`{`,
		`  "id": 0, <.>`,
		`  "name": "string",`,
		`  "tags": [`,
		`    "a" <.>`,
		`  ],`,
		`  "owner": {`,
		`    "email": "email@example.com"`,
		`  }`,
		`}`,
	})
	assertLines(t, listing.Annotations, []string{
		"<.> required Identifier",
		"<.> possible values: `a`",
	})
}

func TestRenderContainerCallouts(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `
type: object
description: Root
properties:
  list:
    type: array
    description: Values
    minItems: 1
    maxItems: 3
    items:
      type: integer
  inner:
    type: object
    description: Nested
    properties:
      ok:
        type: boolean
`, nil)

	listing := testRenderer().Render(node, false)
	assertLines(t, listing.Example, []string{
		`{ <.>`,
		`  "list": [ <.>`,
		`    0`,
		`  ],`,
		`  "inner": { <.>`,
		`    "ok": true`,
		`  }`,
		`},`,
	})
	assertLines(t, listing.Annotations, []string{
		"<.> Root",
		"<.> Values items from `1` to `3`",
		"<.> Nested",
	})
}

func TestRenderNumberedCallouts(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(RenderOptions{
		Generator: NewSeededGenerator(1, time.Unix(0, 0)),
		Callouts:  CalloutNumbered,
		Labels:    AsciidocLabels(),
	})

	node := mustBuild(t, "", `{
		"type": "object",
		"required": ["a", "b"],
		"properties": {
			"a": {"type": "string"},
			"b": {"type": "boolean", "nullable": true}
		}
	}`, nil)

	listing := renderer.Render(node, true)
	assertLines(t, listing.Example, []string{
		`{`,
		`  "a": "string", <1>`,
		`  "b": true <2>`,
		`}`,
	})
	assertLines(t, listing.Annotations, []string{
		"<1> icon:check-circle[]",
		"<2> icon:check-circle[] icon:ban[]",
	})
}

func TestRenderDefaultKeepsHTMLCharacters(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `{
		"type": "object",
		"properties": {
			"s": {"type": "string", "description": "markup", "default": "<p>"},
			"q": {"type": "string", "enum": ["a&b"]}
		}
	}`, nil)

	listing := testRenderer().Render(node, true)
	assertLines(t, listing.Example, []string{
		`{`,
		`  "s": "<p>", <.>`,
		`  "q": "a&b" <.>`,
		`}`,
	})
	assertContains(t, listing.Text(), "(default `<p>`)")
	assertContains(t, listing.Text(), "`a&b`")
}

func TestRenderOneOfDividers(t *testing.T) {
	t.Parallel()

	listing := testRenderer().Render(mustBuild(t, "", `{"oneOf":[{"type":"string"},{"type":"integer"}]}`, nil), true)
	assertLines(t, listing.Example, []string{
		`"string",`,
		`// or`,
		`0`,
	})

	if got := strings.Count(listing.Text(), "// or"); got != 1 {
		t.Fatalf("dividers = %d, want 1", got)
	}
}

func TestRenderOneOfMemberKeepsCommaBeforeNextMember(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `{
		"type": "object",
		"properties": {
			"pet": {"oneOf": [{"type": "string"}, {"type": "integer"}]},
			"after": {"type": "boolean"}
		}
	}`, nil)

	listing := testRenderer().Render(node, true)
	assertLines(t, listing.Example, []string{
		`{`,
		`  "string",`,
		`  // or`,
		`  0,`,
		`  "after": true`,
		`}`,
	})
}

func TestRenderEmbeddedOneOfMember(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"oneOf": [
			{"type": "object", "properties": {"bark": {"type": "boolean"}}},
			{"type": "object", "properties": {"meow": {"type": "boolean"}}}
		]
	}`, nil)

	listing := testRenderer().Render(node, true)
	assertLines(t, listing.Example, []string{
		`{`,
		`  "name": "string",`,
		`  {`,
		`    "bark": true`,
		`  },`,
		`  // or`,
		`  {`,
		`    "meow": true`,
		`  }`,
		`}`,
	})
}

func TestRenderAllOfDelegatesToResolvedNode(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `{
		"type": "object",
		"properties": {
			"code": {"description": "Short code", "allOf": [{"type": "string", "maxLength": 5}]},
			"meta": {"allOf": [
				{"type": "object", "properties": {"x": {"type": "integer"}}},
				{"type": "object", "properties": {"y": {"type": "integer"}}}
			]}
		}
	}`, nil)

	listing := testRenderer().Render(node, true)
	assertLines(t, listing.Example, []string{
		`{`,
		`  "code": "string", <.>`,
		`  "meta": {`,
		`    "x": 0,`,
		`    "y": 0`,
		`  }`,
		`}`,
	})
	assertLines(t, listing.Annotations, []string{
		"<.> Short code length to `5`",
	})
}

func TestRenderAdditionalPropertiesPlaceholders(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `{
		"type": "object",
		"additionalProperties": {"type": "object", "properties": {"v": {"type": "boolean"}}}
	}`, nil)

	text := testRenderer().Render(node, true).Text()
	for _, name := range []string{`"additionalProperty1": {`, `"additionalProperty2": {`, `"additionalProperty3": {`} {
		assertContains(t, text, name)
	}

	assertNotContains(t, text, "additionalProperty4")
}

func TestRenderTrailingCommaFollowsLast(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		`{"type":"string"}`,
		`{"type":"array","items":{"type":"integer"}}`,
		`{"type":"object","properties":{"a":{"type":"boolean"}}}`,
		`{"oneOf":[{"type":"string"},{"type":"integer"}]}`,
	} {
		node := mustBuild(t, "x", input, nil)
		for _, last := range []bool{true, false} {
			example := testRenderer().Render(node, last).Example
			final := example[len(example)-1]
			if strings.HasSuffix(final, ",") == last {
				t.Fatalf("input %s last=%v final line %q", input, last, final)
			}
		}
	}
}

func TestRenderIsIdempotentForSameSeed(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `{
		"type": "object",
		"properties": {
			"id": {"type": "string", "format": "uuid"},
			"kind": {"type": "string", "enum": ["a", "b", "c", "d"]},
			"at": {"type": "string", "format": "date-time"}
		}
	}`, nil)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	first := NewRenderer(RenderOptions{Generator: NewSeededGenerator(7, now)}).Render(node, true).Text()
	second := NewRenderer(RenderOptions{Generator: NewSeededGenerator(7, now)}).Render(node, true).Text()
	if first != second {
		t.Fatalf("render not idempotent:\n%s\n---\n%s", first, second)
	}

	assertContains(t, first, `"at": "2024-01-02T03:04:05Z"`)
}

func TestRenderConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()

	node := mustBuild(t, "", `{"type":"object","required":["a"],"properties":{"a":{"type":"string"},"b":{"type":"integer","minimum":1}}}`, nil)
	want := Render(node, true).Text()

	var wg sync.WaitGroup
	results := make([]string, 16)
	for index := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[index] = Render(node, true).Text()
		}()
	}

	wg.Wait()
	for index, got := range results {
		if got != want {
			t.Fatalf("result %d differs:\n%s\n---\n%s", index, got, want)
		}
	}
}

func TestRenderFragment(t *testing.T) {
	t.Parallel()

	listing, err := testRenderer().RenderFragment(mustParse(t, `{"type":"array","items":{"type":"boolean"}}`))
	if err != nil {
		t.Fatalf("RenderFragment: %v", err)
	}

	if got := listing.Text(); got != "[\n  true\n]" {
		t.Fatalf("text = %q", got)
	}

	if _, err := testRenderer().RenderFragment(mustParse(t, `{"description":"none"}`)); err == nil {
		t.Fatalf("expected error for fragment without type")
	}
}

func TestListingText(t *testing.T) {
	t.Parallel()

	listing := Listing{Example: []string{"a <.>", "b"}, Annotations: []string{"<.> note"}}
	if got := listing.Text(); got != "a <.>\nb\n<.> note" {
		t.Fatalf("text = %q", got)
	}
}

func testRenderer() *Renderer {
	return NewRenderer(RenderOptions{Generator: NewSeededGenerator(1, time.Unix(0, 0))})
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()

	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("lines mismatch:\ngot:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
