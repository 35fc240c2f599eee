package reconcile

import (
	"fmt"

	"type-reconciler/utils"
)

// Default configuration values.
const (
	DefaultSimilarityThreshold          = 0.50
	DefaultSingletonPrecedenceThreshold = 0.75
	DefaultSingletonPrecedenceBonus     = 1.25
	DefaultNoiseFactor                  = 0.50
)

// Config holds the values controlling the matching heuristics.
type Config struct {
	// SimilarityThreshold is the minimal similarity of a candidate pair.
	// A value of 0 disables similarity matching entirely.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	// SingletonPrecedenceThreshold is the similarity from which on a singleton
	// wins a contested slot regardless of its competitors.
	SingletonPrecedenceThreshold float64 `yaml:"singleton_precedence_threshold"`
	// SingletonPrecedenceBonus multiplies a singleton's quantifier when it is
	// compared to the best competitor for the same slot.
	SingletonPrecedenceBonus float64 `yaml:"singleton_precedence_bonus"`
	// NoiseFactor is the fraction of the best quantifier of a row or column
	// below which the other candidates of that row or column are dropped.
	// Noise removal only runs when SimilarityThreshold < NoiseFactor.
	NoiseFactor float64 `yaml:"noise_factor"`
}

// DefaultConfig returns the default matching configuration.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold:          DefaultSimilarityThreshold,
		SingletonPrecedenceThreshold: DefaultSingletonPrecedenceThreshold,
		SingletonPrecedenceBonus:     DefaultSingletonPrecedenceBonus,
		NoiseFactor:                  DefaultNoiseFactor,
	}
}

// Validate checks that all thresholds are within [0,1] and the bonus is positive.
func (c Config) Validate() error {
	ranged := []struct {
		name  string
		value float64
	}{
		{"similarity threshold", c.SimilarityThreshold},
		{"singleton precedence threshold", c.SingletonPrecedenceThreshold},
		{"noise factor", c.NoiseFactor},
	}
	for _, r := range ranged {
		if !utils.IsInRange(0, r.value, 1) {
			return fmt.Errorf("%w: %s %v not in [0,1]", ErrInvalidConfig, r.name, r.value)
		}
	}

	if !utils.IsPositive(c.SingletonPrecedenceBonus) {
		return fmt.Errorf("%w: singleton precedence bonus %v must be positive",
			ErrInvalidConfig, c.SingletonPrecedenceBonus)
	}

	return nil
}

// noiseRemoval reports whether the noise removal phase runs.
func (c Config) noiseRemoval() bool {
	return c.SimilarityThreshold < c.NoiseFactor
}
