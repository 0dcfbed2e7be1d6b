// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/woozymasta/oasdoc/internal/logging"
)

// maxDocumentSize limits remote document download size.
const maxDocumentSize = 64 << 20

// Document is a loaded and dereferenced OpenAPI v3 document.
type Document struct {
	// Source is the file path or URL the document was loaded from.
	Source string
	Model  *v3.Document
}

// Loader reads OpenAPI documents through libopenapi.
type Loader struct {
	Logger                *slog.Logger
	HTTPClient            *http.Client
	AllowFileReferences   bool
	AllowRemoteReferences bool
}

// NewLoader creates loader allowing file and remote references.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		Logger:                logging.OrDiscard(logger),
		HTTPClient:            http.DefaultClient,
		AllowFileReferences:   true,
		AllowRemoteReferences: true,
	}
}

// Load reads document from http(s) URL or file path.
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	if isRemoteSource(source) {
		return l.LoadURL(ctx, source)
	}

	return l.LoadFile(source)
}

// LoadFile reads document from file; relative references resolve against its directory.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	basePath := filepath.Dir(filePath)
	if abs, err := filepath.Abs(basePath); err == nil {
		basePath = abs
	}

	doc, err := l.build(data, &datamodel.DocumentConfiguration{BasePath: basePath})
	if err != nil {
		return nil, err
	}

	doc.Source = filePath
	return doc, nil
}

// LoadURL downloads document; relative references resolve against its URL.
func (l *Loader) LoadURL(ctx context.Context, rawURL string) (*Document, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	data, err := l.fetch(ctx, parsed)
	if err != nil {
		return nil, err
	}

	base := *parsed
	base.Path = path.Dir(parsed.Path)
	base.RawQuery = ""
	base.Fragment = ""

	doc, err := l.build(data, &datamodel.DocumentConfiguration{BaseURL: &base})
	if err != nil {
		return nil, err
	}

	doc.Source = rawURL
	return doc, nil
}

// LoadBytes builds document from bytes; only absolute references can be followed.
func (l *Loader) LoadBytes(data []byte) (*Document, error) {
	return l.build(data, &datamodel.DocumentConfiguration{})
}

// fetch performs GET request bounded by context.
func (l *Loader) fetch(ctx context.Context, target *url.URL) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	client := l.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	l.logger().Debug("fetch openapi document", "url", target.String())
	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: unexpected status %s", ErrReadDocument, target, response.Status)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	return data, nil
}

// build creates libopenapi document and its v3 model.
func (l *Loader) build(data []byte, config *datamodel.DocumentConfiguration) (*Document, error) {
	logger := l.logger()
	config.AllowFileReferences = l.AllowFileReferences
	config.AllowRemoteReferences = l.AllowRemoteReferences
	config.Logger = logger

	document, err := libopenapi.NewDocumentWithConfiguration(data, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDocument, err)
	}

	docModel, errs := document.BuildV3Model()
	if docModel == nil {
		if joined := errors.Join(errs...); joined != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildModel, joined)
		}

		return nil, ErrBuildModel
	}

	for _, buildErr := range errs {
		logger.Warn("openapi model built with errors", "error", buildErr)
	}

	return &Document{Model: &docModel.Model}, nil
}

// logger returns configured logger or discarding logger.
func (l *Loader) logger() *slog.Logger {
	return logging.OrDiscard(l.Logger)
}

// isRemoteSource reports whether source is http(s) URL.
func isRemoteSource(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
