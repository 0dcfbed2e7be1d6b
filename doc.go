// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

/*
Package oasdoc renders OpenAPI schema fragments as annotated example listings.

A fragment is first built into a closed tree of nodes (Boolean, Number,
String, Array, Object, AllOf, OneOf). The renderer then walks the tree and
produces two streams: example lines shaped like a JSON value, and annotation
lines paired one-to-one with callout markers on example lines. The result
fits an AsciiDoc source block followed by its callout list.

Render fragment from YAML or JSON:

	fragment, err := oasdoc.ParseFragment([]byte(`
	type: object
	required: [id]
	properties:
	  id:
	    type: string
	    format: uuid
	  tags:
	    type: array
	    items:
	      type: string
	`))
	if err != nil {
		return err
	}

	node, err := oasdoc.Build("", fragment, nil)
	if err != nil {
		return err
	}

	fmt.Println(oasdoc.Render(node, true).Text())

Use deterministic examples and numbered callouts:

	renderer := oasdoc.NewRenderer(oasdoc.RenderOptions{
		Generator: oasdoc.NewSeededGenerator(1, time.Unix(0, 0)),
		Callouts:  oasdoc.CalloutNumbered,
		Labels:    oasdoc.AsciidocLabels(),
	})

	listing, err := renderer.RenderFragment(fragment)
	if err != nil {
		return err
	}

	fmt.Println(listing.Text())

Whole OpenAPI documents are rendered by the openapi subpackage.
*/
package oasdoc
