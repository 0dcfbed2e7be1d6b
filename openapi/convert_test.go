// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import (
	"testing"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/oasdoc"
)

func TestFragmentFromProxyResolvesReference(t *testing.T) {
	t.Parallel()

	doc := loadDocument(t, petstoreYAML)
	item, ok := doc.Model.Paths.PathItems.Get("/pets")
	require.True(t, ok)
	require.NotNil(t, item.Post)

	media, ok := item.Post.RequestBody.Content.Get("application/json")
	require.True(t, ok)

	fragment, err := FragmentFromProxy(media.Schema)
	require.NoError(t, err)
	require.NotNil(t, fragment)

	assert.Equal(t, oasdoc.TypeObject, fragment.Type)
	assert.Equal(t, []string{"name"}, fragment.Required)

	names := make([]string, 0, len(fragment.Properties))
	for _, prop := range fragment.Properties {
		names = append(names, prop.Name)
	}
	assert.Equal(t, []string{"name", "age", "tags"}, names)

	age, ok := fragment.Property("age")
	require.True(t, ok)
	require.NotNil(t, age.Minimum)
	assert.Zero(t, *age.Minimum)

	tags, ok := fragment.Property("tags")
	require.True(t, ok)
	require.NotNil(t, tags.Items)
	assert.Equal(t, oasdoc.TypeString, tags.Items.Type)
}

func TestFragmentFromProxyDecodesEnumAndDefault(t *testing.T) {
	t.Parallel()

	doc := loadDocument(t, petstoreYAML)
	item, ok := doc.Model.Paths.PathItems.Get("/pets/{petId}")
	require.True(t, ok)
	require.NotNil(t, item.Get)
	require.Len(t, item.Get.Parameters, 1)

	fragment, err := FragmentFromProxy(item.Get.Parameters[0].Schema)
	require.NoError(t, err)
	assert.Equal(t, []any{"short", "full"}, fragment.Enum)
	assert.True(t, fragment.HasDefault)
	assert.Equal(t, "short", fragment.Default)
}

func TestFragmentFromSchemaNullType(t *testing.T) {
	t.Parallel()

	fragment, err := FragmentFromSchema(&base.Schema{Type: []string{"null", "String"}})
	require.NoError(t, err)
	assert.Equal(t, oasdoc.TypeString, fragment.Type)
	require.NotNil(t, fragment.Nullable)
	assert.True(t, *fragment.Nullable)
}

func TestFragmentFromSchemaDetectsCycle(t *testing.T) {
	t.Parallel()

	node := &base.Schema{Type: []string{"array"}}
	node.Items = &base.DynamicValue[*base.SchemaProxy, bool]{A: base.CreateSchemaProxy(node)}

	_, err := FragmentFromSchema(node)
	require.ErrorIs(t, err, ErrCircularSchema)
	assert.Contains(t, err.Error(), "[]")
}

func TestFragmentFromProxyNil(t *testing.T) {
	t.Parallel()

	fragment, err := FragmentFromProxy(nil)
	require.NoError(t, err)
	assert.Nil(t, fragment)
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "items", joinPath("", "items"))
	assert.Equal(t, "pet.items", joinPath("pet", "items"))
	assert.Equal(t, "(root)", pathOrRoot(""))
}
