// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/woozymasta/oasdoc"
	"github.com/woozymasta/oasdoc/internal/logging"
)

// Parameter locations in table order.
const (
	locationPath   = "path"
	locationQuery  = "query"
	locationHeader = "header"
	locationCookie = "cookie"
)

// parameterGroupTitles maps parameter location to table caption.
var parameterGroupTitles = map[string]string{
	locationPath:   "Path parameters",
	locationQuery:  "Query parameters",
	locationHeader: "Header parameters",
	locationCookie: "Cookie parameters",
}

// parameterLocations lists locations in rendering order.
var parameterLocations = []string{locationPath, locationQuery, locationHeader, locationCookie}

// documentView is the root view model passed to templates.
type documentView struct {
	Title       string
	Version     string
	Description string
	Operations  []operationView
}

// operationView is one path + method section.
type operationView struct {
	ID          string
	Anchor      string
	Method      string
	MethodClass string
	Path        string
	Summary     string
	Description string
	Tags        []string
	Labels      []string
	Deprecated  bool

	ShowHeading       bool
	ShowParameters    bool
	ShowRequestBodies bool
	ShowResponses     bool
	Collapsible       bool
	Tabbed            bool
	Partials          bool
	// Expanded is set when operation is not deprecated and has a visible section.
	Expanded bool

	RequestBodies   []listingView
	ParameterGroups []parameterGroupView
	Responses       []responseView
}

// listingView is one rendered schema listing for a media type.
type listingView struct {
	MediaType   string
	Example     []string
	Annotations []string
}

// parameterGroupView is one parameter or header table.
type parameterGroupView struct {
	Title    string
	ID       string
	Rows     []parameterRowView
	Required []string
}

// parameterRowView is one table row.
type parameterRowView struct {
	Type        string
	Name        string
	Default     string
	Description string
}

// responseView is one status code row.
type responseView struct {
	Code        string
	Description string
	Headers     *parameterGroupView
	Listings    []listingView
}

// viewBuilder carries per-render collaborators.
type viewBuilder struct {
	opt      Options
	renderer *oasdoc.Renderer
	labels   oasdoc.Labels
	logger   *slog.Logger
}

// buildDocumentView walks paths in declaration order and builds operation views.
func buildDocumentView(doc *Document, opt Options) (documentView, error) {
	builder := viewBuilder{
		opt:      opt,
		renderer: opt.renderer(),
		labels:   opt.labels(),
		logger:   logging.OrDiscard(opt.Logger),
	}

	view := documentView{}
	if doc == nil || doc.Model == nil {
		return view, nil
	}

	model := doc.Model
	if model.Info != nil {
		view.Title = strings.TrimSpace(model.Info.Title)
		view.Version = strings.TrimSpace(model.Info.Version)
		view.Description = strings.TrimSpace(model.Info.Description)
	}

	if model.Paths == nil || model.Paths.PathItems == nil {
		return view, nil
	}

	for pair := model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		path, item := pair.Key(), pair.Value()
		if item == nil || !opt.matchPath(path) {
			builder.logger.Debug("skip path", "path", path)
			continue
		}

		for _, entry := range pathOperations(item) {
			if !opt.matchOperation(entry.method, entry.operation.OperationId, entry.operation.Tags) {
				builder.logger.Debug("skip operation", "path", path, "method", entry.method)
				continue
			}

			operation, err := builder.operation(path, entry.method, item, entry.operation)
			if err != nil {
				return documentView{}, err
			}

			view.Operations = append(view.Operations, operation)
		}
	}

	return view, nil
}

// methodOperation pairs HTTP method with its operation.
type methodOperation struct {
	method    string
	operation *v3.Operation
}

// pathOperations returns defined operations in conventional method order.
func pathOperations(item *v3.PathItem) []methodOperation {
	candidates := []methodOperation{
		{method: "get", operation: item.Get},
		{method: "put", operation: item.Put},
		{method: "post", operation: item.Post},
		{method: "delete", operation: item.Delete},
		{method: "options", operation: item.Options},
		{method: "head", operation: item.Head},
		{method: "patch", operation: item.Patch},
		{method: "trace", operation: item.Trace},
	}

	out := make([]methodOperation, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.operation != nil {
			out = append(out, candidate)
		}
	}

	return out
}

// operation builds one operation view.
func (b viewBuilder) operation(path, method string, item *v3.PathItem, op *v3.Operation) (operationView, error) {
	id := strings.TrimSpace(op.OperationId)
	if id == "" {
		id = anchorSlug(method + " " + path)
	}

	view := operationView{
		ID:                id,
		Anchor:            id,
		Method:            strings.ToUpper(method),
		MethodClass:       method,
		Path:              path,
		Summary:           strings.TrimSpace(op.Summary),
		Description:       strings.TrimSpace(op.Description),
		Tags:              op.Tags,
		Labels:            b.opt.Labels,
		Deprecated:        op.Deprecated != nil && *op.Deprecated,
		ShowHeading:       !b.opt.HideHeadings,
		ShowParameters:    !b.opt.HideParameters,
		ShowRequestBodies: !b.opt.HideRequestBodies,
		ShowResponses:     !b.opt.HideResponses,
		Collapsible:       b.opt.Collapsible,
		Tabbed:            b.opt.Tabbed,
		Partials:          b.opt.Partials,
	}

	if view.Summary == "" {
		view.Summary = view.Method + " " + path
	}

	if view.Deprecated {
		b.logger.Debug("deprecated operation is not expanded", "operation", id)
		return view, nil
	}

	var err error
	if view.ShowRequestBodies {
		if view.RequestBodies, err = b.requestBodies(id, op.RequestBody); err != nil {
			return operationView{}, err
		}
	}

	if view.ShowParameters {
		if view.ParameterGroups, err = b.parameterGroups(id, item.Parameters, op.Parameters); err != nil {
			return operationView{}, err
		}
	}

	if view.ShowResponses {
		if view.Responses, err = b.responses(id, op.Responses); err != nil {
			return operationView{}, err
		}
	}

	view.Expanded = len(view.RequestBodies) > 0 || len(view.ParameterGroups) > 0 || len(view.Responses) > 0
	return view, nil
}

// requestBodies renders one listing per request media type; every schema must render.
func (b viewBuilder) requestBodies(id string, body *v3.RequestBody) ([]listingView, error) {
	if body == nil || body.Content == nil {
		return nil, nil
	}

	out := make([]listingView, 0, body.Content.Len())
	for pair := body.Content.First(); pair != nil; pair = pair.Next() {
		mediaType, media := pair.Key(), pair.Value()
		if media == nil || media.Schema == nil {
			continue
		}

		listing, ok, err := b.listing(id, mediaType, media)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, fmt.Errorf("%w %s request body %q: %w", ErrRenderOperation, id, mediaType, oasdoc.ErrMissingDiscriminator)
		}

		out = append(out, listing)
	}

	return out, nil
}

// responses renders status code rows in declaration order, then default response.
func (b viewBuilder) responses(id string, responses *v3.Responses) ([]responseView, error) {
	if responses == nil {
		return nil, nil
	}

	out := make([]responseView, 0)
	appendResponse := func(code string, response *v3.Response) error {
		if response == nil || !b.opt.matchCode(code) {
			return nil
		}

		view, err := b.response(id, code, response)
		if err != nil {
			return err
		}

		out = append(out, view)
		return nil
	}

	if responses.Codes != nil {
		for pair := responses.Codes.First(); pair != nil; pair = pair.Next() {
			if err := appendResponse(pair.Key(), pair.Value()); err != nil {
				return nil, err
			}
		}
	}

	if err := appendResponse("default", responses.Default); err != nil {
		return nil, err
	}

	return out, nil
}

// response builds one response row with headers and listings.
func (b viewBuilder) response(id, code string, response *v3.Response) (responseView, error) {
	view := responseView{
		Code:        code,
		Description: strings.TrimSpace(response.Description),
	}

	if response.Headers != nil && response.Headers.Len() > 0 {
		group := parameterGroupView{
			Title: "Headers",
			ID:    anchorSlug("res " + id + " " + code + " headers"),
		}

		for pair := response.Headers.First(); pair != nil; pair = pair.Next() {
			header := pair.Value()
			if header == nil {
				continue
			}

			row, err := b.parameterRow(pair.Key(), header.Description, header.Schema)
			if err != nil {
				return responseView{}, fmt.Errorf("%w %s response %s header %q: %w", ErrRenderOperation, id, code, pair.Key(), err)
			}

			group.Rows = append(group.Rows, row)
		}

		view.Headers = &group
	}

	if response.Content != nil {
		for pair := response.Content.First(); pair != nil; pair = pair.Next() {
			mediaType, media := pair.Key(), pair.Value()
			if media == nil || media.Schema == nil {
				continue
			}

			listing, ok, err := b.listing(id, mediaType, media)
			if err != nil {
				return responseView{}, err
			}

			if !ok {
				b.logger.Debug("response schema has no renderable type", "operation", id, "code", code, "media_type", mediaType)
				continue
			}

			view.Listings = append(view.Listings, listing)
		}
	}

	return view, nil
}

// listing renders media type schema; ok is false when schema has no recognizable root.
func (b viewBuilder) listing(id, mediaType string, media *v3.MediaType) (listingView, bool, error) {
	fragment, err := FragmentFromProxy(media.Schema)
	if err != nil {
		return listingView{}, false, fmt.Errorf("%w %s %q: %w", ErrRenderOperation, id, mediaType, err)
	}

	if fragment == nil {
		return listingView{}, false, nil
	}

	node, err := oasdoc.Build("", fragment, nil)
	if err != nil {
		return listingView{}, false, fmt.Errorf("%w %s %q: %w", ErrRenderOperation, id, mediaType, err)
	}

	if node == nil {
		return listingView{}, false, nil
	}

	listing := b.renderer.Render(node, true)
	return listingView{
		MediaType:   mediaType,
		Example:     listing.Example,
		Annotations: listing.Annotations,
	}, true, nil
}

// parameterGroups groups path-level then operation-level parameters by location.
func (b viewBuilder) parameterGroups(id string, common, own []*v3.Parameter) ([]parameterGroupView, error) {
	grouped := make(map[string]*parameterGroupView, len(parameterLocations))
	for _, param := range append(append([]*v3.Parameter{}, common...), own...) {
		if param == nil {
			continue
		}

		location := strings.ToLower(strings.TrimSpace(param.In))
		title, known := parameterGroupTitles[location]
		if !known {
			b.logger.Warn("skip parameter with unknown location", "operation", id, "parameter", param.Name, "in", param.In)
			continue
		}

		group, ok := grouped[location]
		if !ok {
			group = &parameterGroupView{
				Title: title,
				ID:    anchorSlug("req " + id + " " + location),
			}
			grouped[location] = group
		}

		row, err := b.parameterRow(param.Name, param.Description, param.Schema)
		if err != nil {
			return nil, fmt.Errorf("%w %s parameter %q: %w", ErrRenderOperation, id, param.Name, err)
		}

		group.Rows = append(group.Rows, row)
		if param.Required != nil && *param.Required {
			group.Required = append(group.Required, param.Name)
		}
	}

	out := make([]parameterGroupView, 0, len(grouped))
	for _, location := range parameterLocations {
		if group, ok := grouped[location]; ok {
			out = append(out, *group)
		}
	}

	return out, nil
}

// parameterRow builds table row from parameter or header schema.
func (b viewBuilder) parameterRow(name, description string, schema *base.SchemaProxy) (parameterRowView, error) {
	row := parameterRowView{Name: name}
	fragment, err := FragmentFromProxy(schema)
	if err != nil {
		return parameterRowView{}, err
	}

	parts := []string{strings.TrimSpace(description)}
	if fragment != nil {
		row.Type = schemaTypeName(fragment)
		if fragment.HasDefault {
			row.Default = oasdoc.FormatValue(fragment.Default)
		}

		if len(fragment.Enum) > 0 {
			values := make([]string, 0, len(fragment.Enum))
			for _, value := range fragment.Enum {
				values = append(values, "`"+oasdoc.FormatValue(value)+"`")
			}

			parts = append(parts, b.labels.Values+" "+strings.Join(values, ", "))
		}
	}

	row.Description = strings.TrimSpace(strings.Join(parts, " "))
	return row, nil
}

// schemaTypeName returns fragment type or combinator keyword.
func schemaTypeName(fragment *oasdoc.Fragment) string {
	switch {
	case fragment.Type != "":
		return fragment.Type
	case fragment.AllOf != nil:
		return "allOf"
	case fragment.OneOf != nil:
		return "oneOf"
	default:
		return ""
	}
}

// anchorSlug converts text into AsciiDoc id made of letters, digits and dashes.
func anchorSlug(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			out.WriteRune(r)
			lastDash = false
		default:
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
