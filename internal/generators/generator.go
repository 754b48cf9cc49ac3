package generators

import (
	"math/rand"
)

type Generator interface {
	Generate(rng *rand.Rand) (string, error)
}
