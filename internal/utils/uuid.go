// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// RunIDGenerator produces identifiers for application runs.
type RunIDGenerator struct {
	ordered func() (uuid.UUID, error)
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{ordered: uuid.NewV7}
}

// Generate returns a time-ordered UUIDv7, or a random UUID when an ordered
// one cannot be produced.
func (g *RunIDGenerator) Generate() string {
	id, err := g.ordered()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
