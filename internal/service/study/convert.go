package study

import (
	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/study/fsrs"
)

// cardToFSRS projects a stored card onto the scheduler's value type. A card
// that has never been reviewed carries zero-value SRS fields; the scheduler's
// sanitize pass treats that as the implicit NEW state.
func cardToFSRS(card *domain.Card) fsrs.Card {
	return fsrs.Card{
		State:         card.State,
		Step:          card.Step,
		Stability:     card.Stability,
		Difficulty:    card.Difficulty,
		Due:           card.Due,
		LastReview:    card.LastReview,
		Reps:          card.Reps,
		Lapses:        card.Lapses,
		ScheduledDays: card.ScheduledDays,
		ElapsedDays:   card.ElapsedDays,
	}
}

// srsParamsFromFSRS packs a scheduler result into the persistence shape.
func srsParamsFromFSRS(result fsrs.Card) domain.SRSUpdateParams {
	return domain.SRSUpdateParams{
		State:         result.State,
		Step:          result.Step,
		Stability:     result.Stability,
		Difficulty:    result.Difficulty,
		Due:           result.Due,
		LastReview:    result.LastReview,
		Reps:          result.Reps,
		Lapses:        result.Lapses,
		ScheduledDays: result.ScheduledDays,
		ElapsedDays:   result.ElapsedDays,
	}
}

// buildParams merges global SRS config with per-user settings. The per-user
// max interval can only tighten the global cap.
func (s *Service) buildParams(settings *domain.UserSettings) fsrs.Parameters {
	return fsrs.Parameters{
		W:                s.fsrsWeights,
		DesiredRetention: settings.DesiredRetention,
		MaxIntervalDays:  min(s.srsConfig.MaxIntervalDays, settings.MaxIntervalDays),
		EnableFuzz:       s.srsConfig.EnableFuzz,
		LearningSteps:    s.srsConfig.LearningSteps,
		RelearningSteps:  s.srsConfig.RelearningSteps,
	}
}

// mapGradeToRating maps domain ReviewGrade to FSRS Rating. Unknown grades
// map to the zero Rating, which the scheduler rejects with ErrInvalidRating;
// grade validation stays the scheduler's single responsibility.
func mapGradeToRating(grade domain.ReviewGrade) fsrs.Rating {
	switch grade {
	case domain.ReviewGradeAgain:
		return fsrs.Again
	case domain.ReviewGradeHard:
		return fsrs.Hard
	case domain.ReviewGradeGood:
		return fsrs.Good
	case domain.ReviewGradeEasy:
		return fsrs.Easy
	default:
		return fsrs.Rating(0)
	}
}
