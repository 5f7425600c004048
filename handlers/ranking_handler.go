package handlers

import (
	"net/http"

	"github.com/lucaferrario/tournament-manager/services"
)

type RankingHandler struct {
	rankingService services.RankingService
}

func NewRankingHandler(rs services.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rs}
}

func (h *RankingHandler) GenerateFinalStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.rankingService.GenerateFinalStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RankingHandler) GetFinalStandings(w http.ResponseWriter, r *http.Request) {
	standings := h.rankingService.FinalStandings(r.Context())

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
