// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"strconv"
	"strings"
)

// shiftWidth is the number of spaces per nesting level of example lines.
const shiftWidth = 2

// CalloutStyle selects inline callout marker syntax.
type CalloutStyle int

const (
	// CalloutAuto emits "<.>" markers numbered by AsciiDoc processor.
	CalloutAuto CalloutStyle = iota
	// CalloutNumbered emits explicit "<1>", "<2>" markers.
	CalloutNumbered
)

// RenderOptions controls example and annotation rendering.
type RenderOptions struct {
	// Generator supplies random example values; nil means NewGenerator().
	Generator Generator
	// Callouts selects marker syntax.
	Callouts CalloutStyle
	// Labels are words used in annotation lines; zero value means DefaultLabels().
	Labels Labels
}

// Listing is a rendered example block and its paired annotation lines.
type Listing struct {
	Example     []string
	Annotations []string
}

// Text joins example block and annotation block with newlines.
func (l Listing) Text() string {
	if len(l.Annotations) == 0 {
		return strings.Join(l.Example, "\n")
	}

	return strings.Join(l.Example, "\n") + "\n" + strings.Join(l.Annotations, "\n")
}

// Renderer walks built nodes and produces listings. It holds no per-render
// state and is safe for concurrent use when its Generator is.
type Renderer struct {
	gen      Generator
	callouts CalloutStyle
	labels   Labels
}

// NewRenderer creates renderer with normalized options.
func NewRenderer(opt RenderOptions) *Renderer {
	gen := opt.Generator
	if gen == nil {
		gen = NewGenerator()
	}

	labels := opt.Labels
	if labels == (Labels{}) {
		labels = DefaultLabels()
	}

	return &Renderer{gen: gen, callouts: opt.Callouts, labels: labels}
}

// defaultRenderer backs package-level Render.
var defaultRenderer = NewRenderer(RenderOptions{})

// Render renders node with default options.
func Render(node Node, last bool) Listing {
	return defaultRenderer.Render(node, last)
}

// Render renders node as top-level listing. Last suppresses trailing comma of
// the final example line.
func (r *Renderer) Render(node Node, last bool) Listing {
	if node == nil {
		return Listing{}
	}

	return r.finish(r.render(node, last))
}

// RenderFragment builds fragment as anonymous root and renders it as the only value.
func (r *Renderer) RenderFragment(fragment *Fragment) (Listing, error) {
	node, err := Build("", fragment, nil)
	if err != nil {
		return Listing{}, err
	}

	if node == nil {
		return Listing{}, ErrMissingDiscriminator
	}

	return r.Render(node, true), nil
}

// line is one example line before indentation and callout numbering.
type line struct {
	depth   int
	text    string
	callout bool
}

// stream accumulates example lines and annotation texts of one subtree.
// Every line with callout set is paired with the note at the same ordinal.
type stream struct {
	lines []line
	notes []string
}

// emit appends example line, with annotation when note is not empty.
func (s *stream) emit(text, note string) {
	if note == "" {
		s.lines = append(s.lines, line{text: text})
		return
	}

	s.lines = append(s.lines, line{text: text, callout: true})
	s.notes = append(s.notes, note)
}

// nest appends child stream one level deeper.
func (s *stream) nest(child stream) {
	for _, ln := range child.lines {
		ln.depth++
		s.lines = append(s.lines, ln)
	}

	s.notes = append(s.notes, child.notes...)
}

// splice appends child stream at current depth.
func (s *stream) splice(child stream) {
	s.lines = append(s.lines, child.lines...)
	s.notes = append(s.notes, child.notes...)
}

// render dispatches node variant.
func (r *Renderer) render(node Node, last bool) stream {
	switch typed := node.(type) {
	case *Boolean:
		return r.renderLeaf(&typed.Attributes, booleanExample(typed), r.booleanNote(typed), last)
	case *Number:
		return r.renderLeaf(&typed.Attributes, numberExample(typed), r.numberNote(typed), last)
	case *String:
		return r.renderLeaf(&typed.Attributes, quote(stringExample(typed, r.gen)), r.stringNote(typed), last)
	case *Array:
		return r.renderArray(typed, last)
	case *Object:
		return r.renderObject(typed, last)
	case *AllOf:
		if typed.Resolved == nil {
			return stream{}
		}

		return r.render(typed.Resolved, last)
	case *OneOf:
		return r.renderOneOf(typed, last)
	default:
		return stream{}
	}
}

// renderLeaf emits single "name": value line.
func (r *Renderer) renderLeaf(attrs *Attributes, value, note string, last bool) stream {
	var out stream
	out.emit(namePrefix(attrs)+value+trailingComma(last), note)
	return out
}

// renderArray emits bracket lines around one representative element.
func (r *Renderer) renderArray(node *Array, last bool) stream {
	var out stream
	out.emit(namePrefix(&node.Attributes)+"[", r.arrayNote(node))
	if node.Items != nil {
		out.nest(r.render(node.Items, true))
	}

	out.emit("]"+trailingComma(last), "")
	return out
}

// renderObject emits brace lines around members in declaration order.
func (r *Renderer) renderObject(node *Object, last bool) stream {
	var out stream
	out.emit(namePrefix(&node.Attributes)+"{", r.objectNote(node))
	for index, member := range node.Members {
		out.nest(r.render(member, index == len(node.Members)-1))
	}

	out.emit("}"+trailingComma(last), "")
	return out
}

// renderOneOf emits branches separated by divider comment lines.
func (r *Renderer) renderOneOf(node *OneOf, last bool) stream {
	var out stream
	for index, branch := range node.Branches {
		isLast := index == len(node.Branches)-1
		// Final branch takes the comma of the oneOf position itself.
		out.splice(r.render(branch, last && isLast))
		if !isLast {
			out.emit("// "+r.labels.Or, "")
		}
	}

	return out
}

// finish indents lines and numbers callouts.
func (r *Renderer) finish(s stream) Listing {
	out := Listing{
		Example:     make([]string, 0, len(s.lines)),
		Annotations: make([]string, 0, len(s.notes)),
	}

	ordinal := 0
	for _, ln := range s.lines {
		text := strings.Repeat(" ", ln.depth*shiftWidth) + ln.text
		if ln.callout {
			ordinal++
			text += " " + r.marker(ordinal)
		}

		out.Example = append(out.Example, text)
	}

	for index, note := range s.notes {
		out.Annotations = append(out.Annotations, r.marker(index+1)+" "+note)
	}

	return out
}

// marker returns callout marker for ordinal.
func (r *Renderer) marker(ordinal int) string {
	if r.callouts == CalloutNumbered {
		return "<" + strconv.Itoa(ordinal) + ">"
	}

	return "<.>"
}

// namePrefix returns quoted member name prefix for named nodes.
func namePrefix(attrs *Attributes) string {
	if !attrs.ShowName || attrs.Name == "" {
		return ""
	}

	return quote(attrs.Name) + ": "
}

// trailingComma returns separator for non-last siblings.
func trailingComma(last bool) string {
	if last {
		return ""
	}

	return ","
}
