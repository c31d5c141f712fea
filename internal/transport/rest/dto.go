package rest

import (
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/study"
)

type deckResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type deckWithCountsResponse struct {
	deckResponse
	CardCount int `json:"cardCount"`
	DueCount  int `json:"dueCount"`
	NewCount  int `json:"newCount"`
}

type cardResponse struct {
	ID            string     `json:"id"`
	DeckID        string     `json:"deckId"`
	Front         string     `json:"front"`
	Back          string     `json:"back"`
	State         string     `json:"state"`
	Step          int        `json:"step"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	Due           time.Time  `json:"due"`
	LastReview    *time.Time `json:"lastReview,omitempty"`
	Reps          int        `json:"reps"`
	Lapses        int        `json:"lapses"`
	ScheduledDays float64    `json:"scheduledDays"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type reviewLogResponse struct {
	ID            string    `json:"id"`
	CardID        string    `json:"cardId"`
	Rating        int       `json:"rating"`
	State         string    `json:"state"`
	ElapsedDays   float64   `json:"elapsedDays"`
	ScheduledDays float64   `json:"scheduledDays"`
	DurationMs    *int      `json:"durationMs,omitempty"`
	ReviewedAt    time.Time `json:"reviewedAt"`
}

type previewBranchResponse struct {
	Rating        int       `json:"rating"`
	State         string    `json:"state"`
	Due           time.Time `json:"due"`
	ScheduledDays float64   `json:"scheduledDays"`
	Interval      string    `json:"interval"`
}

type previewResponse struct {
	CardID string                `json:"cardId"`
	Again  previewBranchResponse `json:"again"`
	Hard   previewBranchResponse `json:"hard"`
	Good   previewBranchResponse `json:"good"`
	Easy   previewBranchResponse `json:"easy"`
}

type settingsResponse struct {
	DesiredRetention float64   `json:"desiredRetention"`
	MaxIntervalDays  int       `json:"maxIntervalDays"`
	NewCardsPerDay   int       `json:"newCardsPerDay"`
	Timezone         string    `json:"timezone"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type dashboardResponse struct {
	DueCount      int                  `json:"dueCount"`
	NewCount      int                  `json:"newCount"`
	ReviewedToday int                  `json:"reviewedToday"`
	NewToday      int                  `json:"newToday"`
	StatusCounts  statusCountsResponse `json:"statusCounts"`
}

type statusCountsResponse struct {
	New        int `json:"new"`
	Learning   int `json:"learning"`
	Review     int `json:"review"`
	Relearning int `json:"relearning"`
	Total      int `json:"total"`
}

func toDeckResponse(d *domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDeckWithCountsResponse(d *domain.DeckWithCounts) deckWithCountsResponse {
	return deckWithCountsResponse{
		deckResponse: toDeckResponse(&d.Deck),
		CardCount:    d.CardCount,
		DueCount:     d.DueCount,
		NewCount:     d.NewCount,
	}
}

func toCardResponse(c *domain.Card) cardResponse {
	return cardResponse{
		ID:            c.ID.String(),
		DeckID:        c.DeckID.String(),
		Front:         c.Front,
		Back:          c.Back,
		State:         string(c.State),
		Step:          c.Step,
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		Due:           c.Due,
		LastReview:    c.LastReview,
		Reps:          c.Reps,
		Lapses:        c.Lapses,
		ScheduledDays: c.ScheduledDays,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCardResponses(cards []*domain.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

func toReviewLogResponse(l *domain.ReviewLog) reviewLogResponse {
	return reviewLogResponse{
		ID:            l.ID.String(),
		CardID:        l.CardID.String(),
		Rating:        l.Grade.Int(),
		State:         string(l.State),
		ElapsedDays:   l.ElapsedDays,
		ScheduledDays: l.ScheduledDays,
		DurationMs:    l.DurationMs,
		ReviewedAt:    l.ReviewedAt,
	}
}

func toPreviewBranchResponse(b study.PreviewBranch) previewBranchResponse {
	return previewBranchResponse{
		Rating:        b.Grade.Int(),
		State:         string(b.State),
		Due:           b.Due,
		ScheduledDays: b.ScheduledDays,
		Interval:      b.Interval,
	}
}

func toPreviewResponse(p study.SchedulePreview) previewResponse {
	return previewResponse{
		CardID: p.CardID.String(),
		Again:  toPreviewBranchResponse(p.Again),
		Hard:   toPreviewBranchResponse(p.Hard),
		Good:   toPreviewBranchResponse(p.Good),
		Easy:   toPreviewBranchResponse(p.Easy),
	}
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{
		DesiredRetention: s.DesiredRetention,
		MaxIntervalDays:  s.MaxIntervalDays,
		NewCardsPerDay:   s.NewCardsPerDay,
		Timezone:         s.Timezone,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toDashboardResponse(d domain.Dashboard) dashboardResponse {
	return dashboardResponse{
		DueCount:      d.DueCount,
		NewCount:      d.NewCount,
		ReviewedToday: d.ReviewedToday,
		NewToday:      d.NewToday,
		StatusCounts: statusCountsResponse{
			New:        d.StatusCounts.New,
			Learning:   d.StatusCounts.Learning,
			Review:     d.StatusCounts.Review,
			Relearning: d.StatusCounts.Relearning,
			Total:      d.StatusCounts.Total,
		},
	}
}
