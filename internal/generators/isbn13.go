package generators

import (
	"math/rand"

	"github.com/mmrzaf/isbngen/internal/isbn"
)

type ISBN13Generator struct{}

func (g *ISBN13Generator) Generate(rng *rand.Rand) (string, error) {
	return isbn.Generate(rng), nil
}
