package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	GetStudyQueue(ctx context.Context, input study.GetQueueInput) ([]*domain.Card, error)
	GetSchedulePreview(ctx context.Context, input study.PreviewInput) (study.SchedulePreview, error)
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error)
	GetCardHistory(ctx context.Context, input study.CardHistoryInput) ([]*domain.ReviewLog, error)
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
	GetSettings(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, input study.UpdateSettingsInput) (*domain.UserSettings, error)
}

// StudyHandler serves the review queue, scheduling and settings endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type reviewRequest struct {
	CardID     string `json:"cardId"`
	Rating     int    `json:"rating"`
	DurationMs *int   `json:"durationMs"`
}

type updateSettingsRequest struct {
	DesiredRetention float64 `json:"desiredRetention"`
	MaxIntervalDays  int     `json:"maxIntervalDays"`
	NewCardsPerDay   int     `json:"newCardsPerDay"`
	Timezone         string  `json:"timezone"`
}

// Queue handles GET /study/queue?deckId=&limit=.
func (h *StudyHandler) Queue(w http.ResponseWriter, r *http.Request) {
	var input study.GetQueueInput

	if raw := r.URL.Query().Get("deckId"); raw != "" {
		deckID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid deckId")
			return
		}
		input.DeckID = &deckID
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}

	cards, err := h.svc.GetStudyQueue(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"cards": toCardResponses(cards)})
}

// Preview handles GET /study/preview/{cardId}.
func (h *StudyHandler) Preview(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(r.PathValue("cardId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	preview, err := h.svc.GetSchedulePreview(r.Context(), study.PreviewInput{CardID: cardID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreviewResponse(preview))
}

// Review handles POST /study/review.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	grade, ok := domain.ReviewGradeFromInt(req.Rating)
	if !ok {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 4")
		return
	}

	card, err := h.svc.ReviewCard(r.Context(), study.ReviewCardInput{
		CardID:     cardID,
		Grade:      grade,
		DurationMs: req.DurationMs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// History handles GET /cards/{id}/reviews?limit=.
func (h *StudyHandler) History(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	input := study.CardHistoryInput{CardID: cardID}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}

	logs, err := h.svc.GetCardHistory(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]reviewLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toReviewLogResponse(l))
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": out})
}

// Dashboard handles GET /study/dashboard.
func (h *StudyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(dashboard))
}

// GetSettings handles GET /study/settings.
func (h *StudyHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /study/settings.
func (h *StudyHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.svc.UpdateSettings(r.Context(), study.UpdateSettingsInput{
		DesiredRetention: req.DesiredRetention,
		MaxIntervalDays:  req.MaxIntervalDays,
		NewCardsPerDay:   req.NewCardsPerDay,
		Timezone:         req.Timezone,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}
