package rest

import (
	"net/http"
)

// RouterDeps holds the handlers the router mounts.
type RouterDeps struct {
	Health *HealthHandler
	Decks  *DeckHandler
	Study  *StudyHandler
}

// NewRouter builds the HTTP route table. Authentication, logging and the
// other cross-cutting middleware are applied by the caller around the
// returned handler.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /livez", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("POST /api/v1/decks", deps.Decks.CreateDeck)
	mux.HandleFunc("GET /api/v1/decks", deps.Decks.ListDecks)
	mux.HandleFunc("GET /api/v1/decks/{id}", deps.Decks.GetDeck)
	mux.HandleFunc("PATCH /api/v1/decks/{id}", deps.Decks.UpdateDeck)
	mux.HandleFunc("DELETE /api/v1/decks/{id}", deps.Decks.DeleteDeck)

	mux.HandleFunc("POST /api/v1/decks/{id}/cards", deps.Decks.CreateCard)
	mux.HandleFunc("GET /api/v1/decks/{id}/cards", deps.Decks.ListCards)
	mux.HandleFunc("PATCH /api/v1/cards/{id}", deps.Decks.UpdateCard)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", deps.Decks.DeleteCard)
	mux.HandleFunc("GET /api/v1/cards/{id}/reviews", deps.Study.History)

	mux.HandleFunc("GET /api/v1/study/queue", deps.Study.Queue)
	mux.HandleFunc("GET /api/v1/study/preview/{cardId}", deps.Study.Preview)
	mux.HandleFunc("POST /api/v1/study/review", deps.Study.Review)
	mux.HandleFunc("GET /api/v1/study/dashboard", deps.Study.Dashboard)
	mux.HandleFunc("GET /api/v1/study/settings", deps.Study.GetSettings)
	mux.HandleFunc("PUT /api/v1/study/settings", deps.Study.UpdateSettings)

	return mux
}
