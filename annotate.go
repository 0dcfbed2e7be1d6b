// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"strconv"
	"strings"
)

// Labels holds words used in annotation lines and divider comments.
type Labels struct {
	Required string
	Nullable string
	Or       string
	Value    string
	Length   string
	Items    string
	From     string
	To       string
	Values   string
	Default  string
}

// DefaultLabels returns plain English labels.
func DefaultLabels() Labels {
	return Labels{
		Required: "required",
		Nullable: "nullable",
		Or:       "or",
		Value:    "value",
		Length:   "length",
		Items:    "items",
		From:     "from",
		To:       "to",
		Values:   "possible values:",
		Default:  "default",
	}
}

// AsciidocLabels returns labels with AsciiDoc icon macros for required and nullable flags.
func AsciidocLabels() Labels {
	labels := DefaultLabels()
	labels.Required = "icon:check-circle[]"
	labels.Nullable = "icon:ban[]"
	return labels
}

// noteBuilder collects non-empty annotation parts.
type noteBuilder struct {
	labels Labels
	parts  []string
}

// add appends part when not blank.
func (b *noteBuilder) add(part string) {
	part = strings.TrimSpace(part)
	if part != "" {
		b.parts = append(b.parts, part)
	}
}

// flags appends required and nullable marks.
func (b *noteBuilder) flags(attrs *Attributes) {
	if attrs.Required {
		b.add(b.labels.Required)
	}

	if attrs.IsNullable() {
		b.add(b.labels.Nullable)
	}

	b.add(attrs.Description)
}

// bounds appends "<subject> from `min` to `max`" phrase.
func (b *noteBuilder) bounds(subject string, minimum, maximum string) {
	if minimum == "" && maximum == "" {
		return
	}

	parts := []string{subject}
	if minimum != "" {
		parts = append(parts, b.labels.From, code(minimum))
	}

	if maximum != "" {
		parts = append(parts, b.labels.To, code(maximum))
	}

	b.add(strings.Join(parts, " "))
}

// enum appends possible values list.
func (b *noteBuilder) enum(values []string) {
	if len(values) == 0 {
		return
	}

	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, code(value))
	}

	b.add(b.labels.Values + " " + strings.Join(quoted, ", "))
}

// defaultValue appends default value in parentheses.
func (b *noteBuilder) defaultValue(attrs *Attributes) {
	if !attrs.HasDefault {
		return
	}

	b.add("(" + b.labels.Default + " " + code(formatScalar(attrs.Default)) + ")")
}

// String joins collected parts.
func (b *noteBuilder) String() string {
	return strings.Join(b.parts, " ")
}

// booleanNote returns annotation for boolean leaf or empty string when no callout is due.
func (r *Renderer) booleanNote(node *Boolean) string {
	if !node.Required && node.Description == "" {
		return ""
	}

	note := noteBuilder{labels: r.labels}
	note.flags(&node.Attributes)
	note.defaultValue(&node.Attributes)
	return note.String()
}

// numberNote returns annotation for number leaf or empty string when no callout is due.
func (r *Renderer) numberNote(node *Number) string {
	if !node.Required && node.Description == "" && node.Minimum == nil && node.Maximum == nil && len(node.Enum) == 0 {
		return ""
	}

	note := noteBuilder{labels: r.labels}
	note.flags(&node.Attributes)
	note.bounds(r.labels.Value, optionalFloat(node.Minimum), optionalFloat(node.Maximum))

	values := make([]string, 0, len(node.Enum))
	for _, value := range node.Enum {
		values = append(values, formatNumber(value))
	}

	note.enum(values)
	note.defaultValue(&node.Attributes)
	return note.String()
}

// stringNote returns annotation for string leaf or empty string when no callout is due.
func (r *Renderer) stringNote(node *String) string {
	if !node.Required && node.Description == "" && node.MinLength == nil && node.MaxLength == nil && len(node.Enum) == 0 {
		return ""
	}

	note := noteBuilder{labels: r.labels}
	note.flags(&node.Attributes)
	note.bounds(r.labels.Length, optionalInt(node.MinLength), optionalInt(node.MaxLength))
	note.enum(node.Enum)
	note.defaultValue(&node.Attributes)
	return note.String()
}

// arrayNote returns annotation for array header line.
func (r *Renderer) arrayNote(node *Array) string {
	if node.Description == "" && node.MinItems == nil && node.MaxItems == nil {
		return ""
	}

	note := noteBuilder{labels: r.labels}
	note.flags(&node.Attributes)
	note.bounds(r.labels.Items, optionalInt(node.MinItems), optionalInt(node.MaxItems))
	return note.String()
}

// objectNote returns annotation for object header line; nullable alone is not annotated.
func (r *Renderer) objectNote(node *Object) string {
	if node.Description == "" {
		return ""
	}

	note := noteBuilder{labels: r.labels}
	note.flags(&node.Attributes)
	return note.String()
}

// optionalFloat formats optional bound.
func optionalFloat(value *float64) string {
	if value == nil {
		return ""
	}

	return formatNumber(*value)
}

// optionalInt formats optional count bound.
func optionalInt(value *int64) string {
	if value == nil {
		return ""
	}

	return strconv.FormatInt(*value, 10)
}

// code wraps value into inline code backticks.
func code(value string) string {
	return "`" + value + "`"
}
