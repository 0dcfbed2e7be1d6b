// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import "errors"

var (
	// ErrReadFragmentFile is returned when schema fragment file loading fails.
	ErrReadFragmentFile = errors.New("read schema fragment file")
	// ErrDecodeFragment is returned when schema fragment JSON/YAML decoding fails.
	ErrDecodeFragment = errors.New("decode schema fragment")
	// ErrFragmentRootType is returned when schema fragment root is not a mapping.
	ErrFragmentRootType = errors.New("schema fragment root must be a mapping")
	// ErrMissingDiscriminator is returned when a schema must exist but has neither type nor combinator.
	ErrMissingDiscriminator = errors.New("schema has no recognized type, allOf or oneOf")
	// ErrTypeInconsistency is returned when allOf combines several fragments that are not all objects.
	ErrTypeInconsistency = errors.New("allOf list has non-uniform object types")
	// ErrMissingCombinator is returned when allOf/oneOf resolution is requested for a fragment without it.
	ErrMissingCombinator = errors.New("schema does not declare combinator")
	// ErrNilFragment is returned when builder receives no fragment at all.
	ErrNilFragment = errors.New("schema fragment is nil")
)
