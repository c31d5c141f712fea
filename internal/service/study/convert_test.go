package study

import (
	"errors"
	"testing"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/study/fsrs"
)

func TestMapGradeToRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grade domain.ReviewGrade
		want  fsrs.Rating
	}{
		{domain.ReviewGradeAgain, fsrs.Again},
		{domain.ReviewGradeHard, fsrs.Hard},
		{domain.ReviewGradeGood, fsrs.Good},
		{domain.ReviewGradeEasy, fsrs.Easy},
	}

	for _, tt := range tests {
		if got := mapGradeToRating(tt.grade); got != tt.want {
			t.Errorf("mapGradeToRating(%s) = %v, want %v", tt.grade, got, tt.want)
		}
	}
}

func TestMapGradeToRating_UnknownGradeRejectedByScheduler(t *testing.T) {
	t.Parallel()

	rating := mapGradeToRating(domain.ReviewGrade("PERFECT"))

	params := fsrs.Parameters{
		W:                fsrs.DefaultWeights,
		DesiredRetention: 0.9,
		MaxIntervalDays:  365,
		LearningSteps:    []time.Duration{time.Minute},
	}

	_, err := fsrs.ReviewCard(params, fsrs.Card{}, rating, time.Now())
	if !errors.Is(err, fsrs.ErrInvalidRating) {
		t.Errorf("error: got %v, want ErrInvalidRating (unknown grades must not schedule as a valid review)", err)
	}
}
