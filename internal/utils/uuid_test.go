package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDGenerator_Generate(t *testing.T) {
	g := NewRequestIDGenerator()

	first := g.Generate()
	second := g.Generate()

	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if first == second {
		t.Error("expected distinct ids")
	}
}
