// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

// Package openapi loads OpenAPI 3 documents and renders their operations as
// AsciiDoc: parameter tables, response tables and callout listings built by
// package oasdoc for request and response schemas.
package openapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/woozymasta/oasdoc/internal/logging"
)

// Render converts loaded document into AsciiDoc text.
func Render(doc *Document, opt Options) (string, error) {
	view, err := buildDocumentView(doc, opt)
	if err != nil {
		return "", err
	}

	tmpl, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	logging.OrDiscard(opt.Logger).Debug("document rendered",
		"source", documentSource(doc),
		"operations", len(view.Operations),
	)

	return ensureTrailingNewline(normalizeOutput(out.String())), nil
}

// RenderFile loads document from local path and renders it.
func RenderFile(path string, opt Options) (string, error) {
	doc, err := NewLoader(opt.Logger).LoadFile(path)
	if err != nil {
		return "", err
	}

	return Render(doc, opt)
}

// RenderSource loads document from path or http(s) URL with loader and renders it.
func RenderSource(ctx context.Context, loader *Loader, source string, opt Options) (string, error) {
	if loader == nil {
		loader = NewLoader(opt.Logger)
	}

	doc, err := loader.Load(ctx, source)
	if err != nil {
		return "", err
	}

	return Render(doc, opt)
}

// documentSource returns document origin for log records.
func documentSource(doc *Document) string {
	if doc == nil {
		return ""
	}

	return doc.Source
}
