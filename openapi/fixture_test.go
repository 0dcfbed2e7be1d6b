// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/oasdoc"
)

const petstoreYAML = `openapi: 3.0.3
info:
  title: Pet store
  version: 1.0.0
paths:
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        description: Pet identifier
        schema:
          type: integer
    get:
      operationId: getPet
      summary: Get pet
      description: Returns one pet.
      tags: [pets]
      parameters:
        - name: fields
          in: query
          schema:
            type: string
            enum: [short, full]
            default: short
      responses:
        "200":
          description: Pet found
          headers:
            X-Rate-Limit:
              description: Calls per hour
              schema:
                type: integer
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
        "404":
          description: Not found
    delete:
      operationId: deletePet
      summary: Delete pet
      deprecated: true
      responses:
        "204":
          description: Deleted
  /pets:
    post:
      operationId: createPet
      summary: Create pet
      tags: [pets, admin]
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Pet"
      responses:
        "201":
          description: Created
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
          description: Pet name
        age:
          type: integer
          minimum: 0
        tags:
          type: array
          items:
            type: string
`

// loadDocument builds document from inline YAML.
func loadDocument(t *testing.T, text string) *Document {
	t.Helper()

	doc, err := NewLoader(nil).LoadBytes([]byte(text))
	require.NoError(t, err)
	require.NotNil(t, doc.Model)
	return doc
}

// testOptions returns options with deterministic example generator.
func testOptions() Options {
	return Options{
		Render: oasdoc.RenderOptions{
			Generator: oasdoc.NewSeededGenerator(1, time.Unix(0, 0)),
		},
	}
}

// mustRender renders petstore document with options.
func mustRender(t *testing.T, opt Options) string {
	t.Helper()

	out, err := Render(loadDocument(t, petstoreYAML), opt)
	require.NoError(t, err)
	return out
}
