package study

import (
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/google/uuid"
)

// GetQueueInput holds the parameters for fetching the study queue.
type GetQueueInput struct {
	DeckID *uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i *GetQueueInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.DeckID != nil && *i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PreviewInput holds the parameters for previewing a card's four outcomes.
type PreviewInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *PreviewInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewCardInput holds the parameters for reviewing a card.
type ReviewCardInput struct {
	CardID     uuid.UUID
	Grade      domain.ReviewGrade
	DurationMs *int
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}
	if i.DurationMs != nil && *i.DurationMs < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must be non-negative"})
	}
	if i.DurationMs != nil && *i.DurationMs > 600_000 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "max 10 minutes"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CardHistoryInput holds the parameters for listing a card's review history.
type CardHistoryInput struct {
	CardID uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i *CardHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSettingsInput holds the parameters for updating user study settings.
type UpdateSettingsInput struct {
	DesiredRetention float64
	MaxIntervalDays  int
	NewCardsPerDay   int
	Timezone         string
}

// Validate checks all fields and collects all errors.
func (i *UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.DesiredRetention < 0.5 || i.DesiredRetention > 0.99 {
		errs = append(errs, domain.FieldError{Field: "desired_retention", Message: "must be between 0.5 and 0.99"})
	}
	if i.MaxIntervalDays < 1 || i.MaxIntervalDays > 36500 {
		errs = append(errs, domain.FieldError{Field: "max_interval_days", Message: "must be between 1 and 36500"})
	}
	if i.NewCardsPerDay < 0 || i.NewCardsPerDay > 1000 {
		errs = append(errs, domain.FieldError{Field: "new_cards_per_day", Message: "must be between 0 and 1000"})
	}
	if i.Timezone != "" {
		if _, err := time.LoadLocation(i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
