package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fsrsWeightCount is the number of weights the scheduler expects.
const fsrsWeightCount = 19

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.EnableFuzz == nil {
		on := true
		s.EnableFuzz = &on
	}
	if s.DesiredRetention <= 0 || s.DesiredRetention >= 1 {
		return fmt.Errorf("desired_retention must be in (0, 1) (got %v)", s.DesiredRetention)
	}
	if s.MaxIntervalDays <= 0 {
		return fmt.Errorf("max_interval_days must be > 0 (got %d)", s.MaxIntervalDays)
	}
	if s.NewCardsPerDay < 0 {
		return fmt.Errorf("new_cards_per_day must be >= 0 (got %d)", s.NewCardsPerDay)
	}
	if s.QueueLimit <= 0 {
		return fmt.Errorf("queue_limit must be > 0 (got %d)", s.QueueLimit)
	}

	steps, err := ParseLearningSteps(s.LearningStepsRaw)
	if err != nil {
		return fmt.Errorf("learning_steps: %w", err)
	}
	s.LearningSteps = steps

	relearn, err := ParseLearningSteps(s.RelearningStepsRaw)
	if err != nil {
		return fmt.Errorf("relearning_steps: %w", err)
	}
	s.RelearningSteps = relearn

	weights, err := ParseWeights(s.WeightsRaw)
	if err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	s.Weights = weights

	return nil
}

// ParseLearningSteps parses a comma-separated string of durations (e.g. "1m,10m")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseLearningSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		steps = append(steps, d)
	}

	return steps, nil
}

// ParseWeights parses a comma-separated string of 19 scheduler weights.
// An empty string returns a nil slice, meaning the built-in defaults.
func ParseWeights(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != fsrsWeightCount {
		return nil, fmt.Errorf("expected %d values, got %d", fsrsWeightCount, len(parts))
	}

	weights := make([]float64, 0, fsrsWeightCount)
	for _, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		weights = append(weights, w)
	}

	return weights, nil
}
