// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import "errors"

var (
	// ErrReadDocument is returned when OpenAPI document file or URL cannot be read.
	ErrReadDocument = errors.New("read openapi document")
	// ErrLoadDocument is returned when libopenapi rejects document bytes.
	ErrLoadDocument = errors.New("load openapi document")
	// ErrBuildModel is returned when OpenAPI v3 model cannot be built.
	ErrBuildModel = errors.New("build openapi v3 model")
	// ErrSchemaProxy is returned when schema reference cannot be resolved.
	ErrSchemaProxy = errors.New("resolve schema reference")
	// ErrCircularSchema is returned when schema refers to itself.
	ErrCircularSchema = errors.New("circular schema reference")
	// ErrRenderOperation is returned when operation schema cannot be rendered.
	ErrRenderOperation = errors.New("render operation")
	// ErrUnknownBuiltinTemplate is returned when built-in template name is unknown.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when embedded template cannot be read.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseTemplate is returned when template text cannot be parsed.
	ErrParseTemplate = errors.New("parse template")
	// ErrExecuteTemplate is returned when template execution fails.
	ErrExecuteTemplate = errors.New("execute template")
)
