// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import (
	"log/slog"
	"strings"

	"github.com/woozymasta/oasdoc"
)

// listSeparator splits list-valued filter arguments.
const listSeparator = ";"

// Options selects rendered operations and output layout.
//
// Empty filter lists match everything. Section toggles are negative so that
// the zero value renders every section.
type Options struct {
	// PathContains keeps paths containing any of the substrings.
	PathContains []string
	// PathEndsWith keeps paths ending with any of the suffixes.
	PathEndsWith []string
	// Methods keeps operations with any of the HTTP methods (case-insensitive).
	Methods []string
	// Tags keeps operations tagged with any of the tags.
	Tags []string
	// OperationIDs keeps operations with any of the ids.
	OperationIDs []string
	// HTTPCodes keeps responses with any of the status codes.
	HTTPCodes []string
	// Labels are printed as role tags before every operation line.
	Labels []string

	HideHeadings      bool
	HideParameters    bool
	HideRequestBodies bool
	HideResponses     bool

	// Collapsible wraps operation details into collapsible block.
	Collapsible bool
	// Tabbed splits request and response parts into tabs.
	Tabbed bool
	// Partials emits optional include directives around request and response parts.
	Partials bool

	// TemplateName selects built-in template; ignored when TemplateText is set.
	TemplateName string
	// TemplateText is custom text/template source.
	TemplateText string

	// Render configures schema listings; zero Labels mean AsciiDoc icon labels.
	Render oasdoc.RenderOptions
	// Logger receives debug records; nil discards them.
	Logger *slog.Logger
}

// SplitList splits separated list argument, dropping blanks.
func SplitList(value string) []string {
	parts := strings.Split(value, listSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// matchPath applies path substring and suffix filters.
func (o Options) matchPath(path string) bool {
	return matchAny(o.PathContains, func(part string) bool { return strings.Contains(path, part) }) &&
		matchAny(o.PathEndsWith, func(suffix string) bool { return strings.HasSuffix(path, suffix) })
}

// matchOperation applies method, operation id and tag filters.
func (o Options) matchOperation(method, operationID string, tags []string) bool {
	return matchAny(o.Methods, func(want string) bool { return strings.EqualFold(want, method) }) &&
		matchAny(o.OperationIDs, func(want string) bool { return want == operationID }) &&
		matchAny(o.Tags, func(want string) bool { return containsString(tags, want) })
}

// matchCode applies HTTP status code filter.
func (o Options) matchCode(code string) bool {
	return matchAny(o.HTTPCodes, func(want string) bool { return strings.EqualFold(want, code) })
}

// labels returns configured annotation labels or AsciiDoc icon labels.
func (o Options) labels() oasdoc.Labels {
	if o.Render.Labels == (oasdoc.Labels{}) {
		return oasdoc.AsciidocLabels()
	}

	return o.Render.Labels
}

// renderer builds listing renderer with AsciiDoc defaults.
func (o Options) renderer() *oasdoc.Renderer {
	render := o.Render
	render.Labels = o.labels()
	return oasdoc.NewRenderer(render)
}

// matchAny reports whether filter is empty or any entry matches.
func matchAny(filter []string, match func(string) bool) bool {
	if len(filter) == 0 {
		return true
	}

	for _, entry := range filter {
		if match(entry) {
			return true
		}
	}

	return false
}

// containsString reports whether values hold target.
func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}
