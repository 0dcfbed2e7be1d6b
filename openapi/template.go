// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

const (
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName  = templateAsciidocName
	templateAsciidocName = "asciidoc"
)

// templateFS stores built-in templates embedded into the package.
//
//go:embed templates/*.adoc.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateAsciidocName: "templates/asciidoc.adoc.gotmpl",
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	if name == "" {
		name = defaultTemplateName
	}

	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}

// resolveTemplate resolves either custom or built-in template text into a parsed template.
func resolveTemplate(opt Options) (*template.Template, error) {
	if text := strings.TrimSpace(opt.TemplateText); text != "" {
		parsed, err := template.New("custom").Funcs(templateFuncs()).Parse(opt.TemplateText)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, "custom", err)
		}

		return parsed, nil
	}

	name := normalizeTemplateName(opt.TemplateName)
	if name == "" {
		name = defaultTemplateName
	}

	text, err := BuiltinTemplate(name)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"lines":      func(values []string) string { return strings.Join(values, "\n") },
		"cellLines":  cellLines,
		"escapePath": escapePath,
		"cell":       func(value string) string { return escapeCell(value, "|") },
		"nestedCell": func(value string) string { return escapeCell(value, "!") },
		"partial":    newPartialView,
	}
}

// partialView addresses one optional include around operation part.
type partialView struct {
	Partials bool
	ID       string
	Part     string
}

// newPartialView builds include descriptor for operation part.
func newPartialView(op operationView, part string) partialView {
	return partialView{Partials: op.Partials, ID: op.ID, Part: part}
}

// cellLines joins listing lines placed inside table cell.
func cellLines(values []string) string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = escapeSeparator(value, "|")
	}

	return strings.Join(out, "\n")
}

// escapePath escapes attribute reference braces in endpoint paths.
func escapePath(path string) string {
	return strings.NewReplacer("{", "\\{", "}", "\\}").Replace(path)
}

// escapeCell escapes table cell separator and squashes line breaks.
func escapeCell(value, separator string) string {
	return escapeSeparator(sanitizeText(value), separator)
}

// escapeSeparator escapes table cell separator.
func escapeSeparator(value, separator string) string {
	return strings.ReplaceAll(value, separator, "\\"+separator)
}
