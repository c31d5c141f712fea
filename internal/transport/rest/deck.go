package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/deck"
)

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
	ListDecks(ctx context.Context) ([]*domain.DeckWithCounts, error)
	UpdateDeck(ctx context.Context, input deck.UpdateDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, input deck.DeleteDeckInput) error
	CreateCard(ctx context.Context, input deck.CreateCardInput) (*domain.Card, error)
	UpdateCard(ctx context.Context, input deck.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, input deck.DeleteCardInput) error
	ListCards(ctx context.Context, input deck.ListCardsInput) ([]*domain.Card, int, error)
}

// DeckHandler serves deck and card CRUD endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type createDeckRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateDeckRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type createCardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type updateCardRequest struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

// CreateDeck handles POST /decks.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(d))
}

// GetDeck handles GET /decks/{id}.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	d, err := h.svc.GetDeck(r.Context(), deckID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(d))
}

// ListDecks handles GET /decks.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]deckWithCountsResponse, 0, len(decks))
	for _, d := range decks {
		out = append(out, toDeckWithCountsResponse(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"decks": out})
}

// UpdateDeck handles PATCH /decks/{id}.
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	var req updateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.UpdateDeck(r.Context(), deck.UpdateDeckInput{
		DeckID:      deckID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(d))
}

// DeleteDeck handles DELETE /decks/{id}.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), deck.DeleteDeckInput{DeckID: deckID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCard handles POST /decks/{id}/cards.
func (h *DeckHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), deck.CreateCardInput{
		DeckID: deckID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// ListCards handles GET /decks/{id}/cards?limit=&offset=.
func (h *DeckHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	input := deck.ListCardsInput{DeckID: deckID}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		input.Offset = offset
	}

	cards, total, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cards": toCardResponses(cards),
		"total": total,
	})
}

// UpdateCard handles PATCH /cards/{id}.
func (h *DeckHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), deck.UpdateCardInput{
		CardID: cardID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// DeleteCard handles DELETE /cards/{id}.
func (h *DeckHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	if err := h.svc.DeleteCard(r.Context(), deck.DeleteCardInput{CardID: cardID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
