package app

import (
	"fmt"

	"github.com/mmrzaf/isbngen/internal/generators"
	"github.com/mmrzaf/isbngen/internal/logging"
)

type GenerateService struct {
	generator generators.Generator
	logger    *logging.Logger
}

func NewGenerateService(gen generators.Generator, logger *logging.Logger) *GenerateService {
	return &GenerateService{
		generator: gen,
		logger:    logger.WithComponent("generate"),
	}
}

// Generate produces one value. A nil seed means a fresh random seed.
func (s *GenerateService) Generate(seed *int64) (string, error) {
	rng, effective, err := generators.NewRand(seed)
	if err != nil {
		s.logger.Errorw("seed.failed", map[string]any{"error": err.Error()})
		return "", fmt.Errorf("failed to initialize rng: %w", err)
	}

	value, err := s.generator.Generate(rng)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	s.logger.Debugw("generated", map[string]any{"seed": effective, "value": value})
	return value, nil
}
