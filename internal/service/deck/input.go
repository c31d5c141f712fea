package deck

import (
	"strings"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/google/uuid"
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDeckInput holds the parameters for updating a deck.
type UpdateDeckInput struct {
	DeckID      uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteDeckInput holds the parameters for deleting a deck.
type DeleteDeckInput struct {
	DeckID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteDeckInput) Validate() error {
	if i.DeckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	return nil
}

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	DeckID uuid.UUID
	Front  string
	Back   string
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if strings.TrimSpace(i.Front) == "" {
		errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
	}
	if len(i.Front) > 2000 {
		errs = append(errs, domain.FieldError{Field: "front", Message: "max 2000 characters"})
	}
	if strings.TrimSpace(i.Back) == "" {
		errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
	}
	if len(i.Back) > 2000 {
		errs = append(errs, domain.FieldError{Field: "back", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for updating a card's content.
type UpdateCardInput struct {
	CardID uuid.UUID
	Front  *string
	Back   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Front == nil && i.Back == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Front != nil {
		if strings.TrimSpace(*i.Front) == "" {
			errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
		}
		if len(*i.Front) > 2000 {
			errs = append(errs, domain.FieldError{Field: "front", Message: "max 2000 characters"})
		}
	}
	if i.Back != nil {
		if strings.TrimSpace(*i.Back) == "" {
			errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
		}
		if len(*i.Back) > 2000 {
			errs = append(errs, domain.FieldError{Field: "back", Message: "max 2000 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCardInput holds the parameters for deleting a card.
type DeleteCardInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteCardInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}
	return nil
}

// ListCardsInput holds the parameters for listing cards in a deck.
type ListCardsInput struct {
	DeckID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
