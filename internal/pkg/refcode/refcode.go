// Package refcode generates short, human-shareable booking reference codes.
package refcode

import (
	"strings"

	"github.com/google/uuid"
)

const Length = 8

type Generator interface {
	Generate() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return &UUIDGenerator{}
}

// Generate returns an 8-character uppercase hex code derived from a random
// UUID. Collisions are possible and must be handled by the caller against
// the persistence layer.
func (g *UUIDGenerator) Generate() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:Length])
}

// FixedGenerator returns a predefined sequence of codes. Test use only.
type FixedGenerator struct {
	codes []string
	next  int
}

func NewFixedGenerator(codes ...string) *FixedGenerator {
	return &FixedGenerator{codes: codes}
}

func (g *FixedGenerator) Generate() string {
	if g.next >= len(g.codes) {
		// Repeat the last code once exhausted.
		return g.codes[len(g.codes)-1]
	}
	code := g.codes[g.next]
	g.next++
	return code
}
