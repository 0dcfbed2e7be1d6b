// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"math/rand"
	randv2 "math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Canned example values for string formats.
const (
	exampleEmail         = "email@example.com"
	exampleFloat         = "0.0"
	exampleDouble        = "0.00"
	exampleInteger       = "0"
	exampleBoolean       = "true"
	formatFloat          = "float"
	formatDouble         = "double"
	formatDateTime       = "date-time"
	formatEmail          = "email"
	formatUUID           = "uuid"
	exampleDateTimeStyle = time.RFC3339
)

// Generator supplies non-deterministic inputs of example synthesis.
// Implementations must be safe for concurrent use.
type Generator interface {
	// Intn returns value in [0, n).
	Intn(n int) int
	// UUID returns random identifier text.
	UUID() string
	// Now returns timestamp used for date-time examples.
	Now() time.Time
}

// systemGenerator uses global random source and wall clock.
type systemGenerator struct{}

// NewGenerator returns generator backed by global random source and wall clock.
func NewGenerator() Generator {
	return systemGenerator{}
}

func (systemGenerator) Intn(n int) int { return randv2.IntN(n) }

func (systemGenerator) UUID() string { return uuid.NewString() }

func (systemGenerator) Now() time.Time { return time.Now() }

// seededGenerator is deterministic for given seed and clock.
type seededGenerator struct {
	rng *rand.Rand
	now time.Time
	mu  sync.Mutex
}

// NewSeededGenerator returns deterministic generator for tests and reproducible output.
//
// Identifiers always carry version 4 and RFC 4122 variant bits regardless of
// the schema's declared uuid flavour.
func NewSeededGenerator(seed int64, now time.Time) Generator {
	return &seededGenerator{
		//nolint:gosec // example data, not secrets.
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

func (g *seededGenerator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.Intn(n)
}

func (g *seededGenerator) UUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.Nil.String()
	}

	return id.String()
}

func (g *seededGenerator) Now() time.Time { return g.now }

// booleanExample returns example literal for boolean leaf.
func booleanExample(node *Boolean) string {
	if node.HasDefault {
		return formatScalar(node.Default)
	}

	return exampleBoolean
}

// numberExample returns example literal for integer or number leaf.
func numberExample(node *Number) string {
	if node.HasDefault {
		return formatScalar(node.Default)
	}

	if node.NumericKind == NumericNumber {
		switch node.Format {
		case formatFloat:
			return exampleFloat
		case formatDouble:
			return exampleDouble
		}
	}

	return exampleInteger
}

// stringExample returns unquoted example text for string leaf.
func stringExample(node *String, gen Generator) string {
	if node.HasDefault {
		return formatScalar(node.Default)
	}

	if len(node.Enum) > 0 {
		return node.Enum[gen.Intn(len(node.Enum))]
	}

	switch node.Format {
	case formatDateTime:
		return gen.Now().UTC().Format(exampleDateTimeStyle)
	case formatEmail:
		return exampleEmail
	case formatUUID:
		return gen.UUID()
	}

	return TypeString
}
