package fsrs

import (
	"errors"
	"math"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
)

// ErrInvalidRating is returned for ratings outside {Again, Hard, Good, Easy}.
// The rating is rejected before any computation; use errors.Is to check.
var ErrInvalidRating = errors.New("fsrs: invalid rating")

// Card holds the FSRS scheduling state of a flashcard. It is a pure value:
// the scheduler never mutates its input and performs no I/O, so identical
// inputs always produce identical outputs.
type Card struct {
	State         domain.CardState
	Step          int
	Stability     float64
	Difficulty    float64
	Due           time.Time
	LastReview    *time.Time
	Reps          int
	Lapses        int
	ScheduledDays float64
	ElapsedDays   float64
}

// NewCard synthesizes the implicit NEW state for a card that has never been
// reviewed. Storage may not hold a scheduling row until the first review; the
// caller passes the result of NewCard instead of a nullable record.
func NewCard() Card {
	return Card{State: domain.CardStateNew}
}

// Parameters holds all FSRS configuration.
type Parameters struct {
	W                [19]float64
	DesiredRetention float64
	MaxIntervalDays  int
	EnableFuzz       bool
	LearningSteps    []time.Duration
	RelearningSteps  []time.Duration
}

// DefaultParameters returns sensible defaults.
func DefaultParameters() Parameters {
	return Parameters{
		W:                DefaultWeights,
		DesiredRetention: 0.9,
		MaxIntervalDays:  365,
		EnableFuzz:       true,
		LearningSteps:    []time.Duration{time.Minute, 10 * time.Minute},
		RelearningSteps:  []time.Duration{10 * time.Minute},
	}
}

// Previews holds the four candidate next states, one per rating. The UI shows
// the interval of every branch before the learner answers; committing a review
// selects one of these exact values.
type Previews struct {
	Again Card
	Hard  Card
	Good  Card
	Easy  Card
}

// ForRating returns the preview branch matching the rating.
func (p Previews) ForRating(rating Rating) (Card, error) {
	switch rating {
	case Again:
		return p.Again, nil
	case Hard:
		return p.Hard, nil
	case Good:
		return p.Good, nil
	case Easy:
		return p.Easy, nil
	default:
		return Card{}, ErrInvalidRating
	}
}

// Preview computes all four candidate outcomes for a card at the given time
// without committing anything. Out-of-range state loaded from storage is
// clamped into valid bounds first; elapsed time is recomputed from LastReview
// and clamped at zero against clock skew.
func Preview(params Parameters, card Card, now time.Time) Previews {
	card = sanitize(card)
	card.ElapsedDays = elapsedDays(card.LastReview, now)

	return Previews{
		Again: review(params, card, Again, now),
		Hard:  review(params, card, Hard, now),
		Good:  review(params, card, Good, now),
		Easy:  review(params, card, Easy, now),
	}
}

// ReviewCard applies a rating to the card state at the given time and returns
// the single authoritative next state. It is defined as the matching branch of
// Preview, so the commit path and the interval-preview path can never disagree.
func ReviewCard(params Parameters, card Card, rating Rating, now time.Time) (Card, error) {
	if !rating.IsValid() {
		return Card{}, ErrInvalidRating
	}
	return Preview(params, card, now).ForRating(rating)
}

// sanitize clamps state loaded from a corrupted store into valid bounds.
// Recovery is local and forgiving: bad values are repaired, never rejected.
func sanitize(card Card) Card {
	if !card.State.IsValid() {
		if card.Reps <= 0 {
			card.State = domain.CardStateNew
		} else {
			card.State = domain.CardStateReview
		}
	}
	if card.State != domain.CardStateNew {
		card.Stability = ClampStability(card.Stability)
		card.Difficulty = ClampDifficulty(card.Difficulty)
	}
	if card.Reps < 0 {
		card.Reps = 0
	}
	if card.Lapses < 0 {
		card.Lapses = 0
	}
	if card.ScheduledDays < 0 || math.IsNaN(card.ScheduledDays) {
		card.ScheduledDays = 0
	}
	if card.Step < 0 {
		card.Step = 0
	}
	return card
}

// elapsedDays returns fractional days since the last review, clamped at 0.
func elapsedDays(lastReview *time.Time, now time.Time) float64 {
	if lastReview == nil {
		return 0
	}
	d := now.Sub(*lastReview).Hours() / 24
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return d
}

func review(params Parameters, card Card, rating Rating, now time.Time) Card {
	switch card.State {
	case domain.CardStateNew:
		return reviewNew(params, card, rating, now)
	case domain.CardStateLearning:
		return reviewLearning(params, card, rating, now, false)
	case domain.CardStateRelearning:
		return reviewLearning(params, card, rating, now, true)
	default:
		return reviewReview(params, card, rating, now)
	}
}

// reviewNew handles a NEW card's first review.
func reviewNew(params Parameters, card Card, rating Rating, now time.Time) Card {
	card.Reps++
	card.LastReview = &now

	s := InitialStability(params.W, rating)
	d := InitialDifficulty(params.W, rating)

	card.Stability = s
	card.Difficulty = d

	steps := params.LearningSteps
	if len(steps) == 0 {
		steps = []time.Duration{time.Minute}
	}

	switch rating {
	case Again:
		card.State = domain.CardStateLearning
		card.Step = 0
		card = requeue(card, steps[0], now)

	case Hard:
		card.State = domain.CardStateLearning
		card.Step = 0
		// Hard: avg of step 0 and step 1
		delay := steps[0]
		if len(steps) > 1 {
			delay = (steps[0] + steps[1]) / 2
		}
		card = requeue(card, delay, now)

	case Good:
		if len(steps) > 1 {
			card.State = domain.CardStateLearning
			card.Step = 1
			card = requeue(card, steps[1], now)
		} else {
			// Graduate immediately
			card = graduateToReview(params, card, s, d, now)
		}

	case Easy:
		// Graduate with easy bonus
		card = graduateToReview(params, card, s, d, now)
		// Use Good stability (not Easy) as the baseline for the minimum interval
		goodS := InitialStability(params.W, Good)
		goodInterval := clampInterval(NextInterval(goodS, params.DesiredRetention), params.MaxIntervalDays)
		if card.ScheduledDays <= goodInterval {
			card.ScheduledDays = clampInterval(goodInterval+1, params.MaxIntervalDays)
			card.Due = now.Add(durationFromDays(card.ScheduledDays))
		}
	}

	return card
}

// reviewLearning handles LEARNING or RELEARNING cards.
func reviewLearning(params Parameters, card Card, rating Rating, now time.Time, isRelearning bool) Card {
	card.Reps++
	card.LastReview = &now

	steps := params.LearningSteps
	if isRelearning {
		steps = params.RelearningSteps
	}
	if len(steps) == 0 {
		steps = []time.Duration{time.Minute}
	}

	// Snapshot pre-update stability for interval ordering (Easy vs Good comparison).
	preS := card.Stability

	// Update S/D for every rating (FSRS-5 spec: short-term stability applies to all ratings).
	card.Stability = ShortTermStability(params.W, card.Stability, rating)
	card.Difficulty = NextDifficulty(params.W, card.Difficulty, rating)

	switch rating {
	case Again:
		// Reset to step 0. Lapses are only incremented on REVIEW → RELEARNING transition.
		card.Step = 0
		card = requeue(card, steps[0], now)

	case Hard:
		// Repeat current step
		step := card.Step
		if step >= len(steps) {
			step = len(steps) - 1
		}
		card = requeue(card, steps[step], now)

	case Good:
		nextStep := card.Step + 1
		if nextStep >= len(steps) {
			// Graduate; S/D already updated above.
			card = graduateToReview(params, card, card.Stability, card.Difficulty, now)
		} else {
			card.Step = nextStep
			card = requeue(card, steps[nextStep], now)
		}

	case Easy:
		// Graduate immediately; S/D already updated above.
		card = graduateToReview(params, card, card.Stability, card.Difficulty, now)

		// For Easy from learning, ensure easyInterval >= goodInterval + 1.
		// Use pre-update stability to compute what Good would have produced.
		goodS := ShortTermStability(params.W, preS, Good)
		goodInterval := clampInterval(NextInterval(goodS, params.DesiredRetention), params.MaxIntervalDays)
		if card.ScheduledDays <= goodInterval {
			card.ScheduledDays = clampInterval(goodInterval+1, params.MaxIntervalDays)
			card.Due = now.Add(durationFromDays(card.ScheduledDays))
		}
	}

	return card
}

// reviewReview handles REVIEW cards. Computes all 4 outcomes and enforces interval ordering.
func reviewReview(params Parameters, card Card, rating Rating, now time.Time) Card {
	card.Reps++
	card.LastReview = &now

	elapsed := card.ElapsedDays
	if elapsed < 1 {
		elapsed = 1
	}

	r := Retrievability(elapsed, card.Stability)

	// Use PRE-UPDATE difficulty for all stability calculations (FSRS-5 spec).
	preD := card.Difficulty

	// Update difficulty with chosen rating.
	d := NextDifficulty(params.W, card.Difficulty, rating)

	if rating == Again {
		// Lapse: capped forget stability
		card.Lapses++
		card.State = domain.CardStateRelearning
		card.Step = 0
		card.Difficulty = d
		card.Stability = StabilityAfterForgettingCapped(params.W, card.Stability, preD, r)

		steps := params.RelearningSteps
		if len(steps) == 0 {
			steps = []time.Duration{10 * time.Minute}
		}

		return requeue(card, steps[0], now)
	}

	// Compute all recall stabilities using PRE-UPDATE difficulty.
	hardS := StabilityAfterRecall(params.W, card.Stability, preD, r, Hard)
	goodS := StabilityAfterRecall(params.W, card.Stability, preD, r, Good)
	easyS := StabilityAfterRecall(params.W, card.Stability, preD, r, Easy)

	// Raw intervals, clamped to max interval
	hardIvl := clampInterval(NextInterval(hardS, params.DesiredRetention), params.MaxIntervalDays)
	goodIvl := clampInterval(NextInterval(goodS, params.DesiredRetention), params.MaxIntervalDays)
	easyIvl := clampInterval(NextInterval(easyS, params.DesiredRetention), params.MaxIntervalDays)

	hardIvl, goodIvl, easyIvl = orderIntervals(hardIvl, goodIvl, easyIvl)

	// Re-clamp after ordering adjustments
	hardIvl = clampInterval(hardIvl, params.MaxIntervalDays)
	goodIvl = clampInterval(goodIvl, params.MaxIntervalDays)
	easyIvl = clampInterval(easyIvl, params.MaxIntervalDays)

	// Apply fuzz if enabled. The seed derives from card state and review time,
	// so a replay of identical inputs fuzzes identically.
	if params.EnableFuzz {
		maxIvl := float64(params.MaxIntervalDays)
		seed := FuzzSeed(now, card.Reps, card.Difficulty, card.Stability)

		hardIvl = applyFuzz(hardIvl, elapsed, maxIvl, seed)
		goodIvl = applyFuzz(goodIvl, elapsed, maxIvl, seed+1)
		easyIvl = applyFuzz(easyIvl, elapsed, maxIvl, seed+2)

		hardIvl, goodIvl, easyIvl = orderIntervals(hardIvl, goodIvl, easyIvl)
	}

	// Set difficulty after all stability calculations are done.
	card.Difficulty = d

	// Select the interval for the chosen rating
	var chosenIvl, chosenS float64
	switch rating {
	case Hard:
		chosenIvl = hardIvl
		chosenS = hardS
	case Good:
		chosenIvl = goodIvl
		chosenS = goodS
	case Easy:
		chosenIvl = easyIvl
		chosenS = easyS
	}

	chosenIvl = clampInterval(chosenIvl, params.MaxIntervalDays)

	card.Stability = chosenS
	card.State = domain.CardStateReview
	card.ScheduledDays = chosenIvl
	card.ElapsedDays = 0
	card.Due = now.Add(durationFromDays(chosenIvl))

	return card
}

// graduateToReview transitions a card from Learning/New to Review.
func graduateToReview(params Parameters, card Card, stability, difficulty float64, now time.Time) Card {
	card.State = domain.CardStateReview
	card.Step = 0
	card.Stability = stability
	card.Difficulty = difficulty

	interval := clampInterval(NextInterval(stability, params.DesiredRetention), params.MaxIntervalDays)

	card.ScheduledDays = interval
	card.ElapsedDays = 0
	card.Due = now.Add(durationFromDays(interval))

	return card
}

// requeue keeps the card within its learning steps: due after a sub-day delay,
// with the delay recorded as fractional days.
func requeue(card Card, delay time.Duration, now time.Time) Card {
	card.ElapsedDays = 0
	card.ScheduledDays = delay.Hours() / 24
	card.Due = now.Add(delay)
	return card
}

// orderIntervals enforces Hard <= Good < Easy.
func orderIntervals(hard, good, easy float64) (float64, float64, float64) {
	if hard > good {
		hard = good
	}
	if good <= hard {
		good = hard + 1
	}
	if easy <= good {
		easy = good + 1
	}
	return hard, good, easy
}

// clampInterval constrains an interval to [1, maxDays].
func clampInterval(interval float64, maxDays int) float64 {
	if interval < 1 {
		return 1
	}
	if interval > float64(maxDays) {
		return float64(maxDays)
	}
	return interval
}

// durationFromDays converts fractional days to a time.Duration.
func durationFromDays(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}
