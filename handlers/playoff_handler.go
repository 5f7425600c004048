package handlers

import (
	"net/http"

	"github.com/lucaferrario/tournament-manager/models"
	"github.com/lucaferrario/tournament-manager/services"
)

type PlayoffHandler struct {
	playoffService services.PlayoffService
}

func NewPlayoffHandler(ps services.PlayoffService) *PlayoffHandler {
	return &PlayoffHandler{playoffService: ps}
}

type generateBracketInput struct {
	TeamsAdvancing int `json:"teams_advancing"`
}

func (h *PlayoffHandler) GenerateBracket(w http.ResponseWriter, r *http.Request) {
	var input generateBracketInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.playoffService.GenerateBracket(r.Context(), input.TeamsAdvancing)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayoffHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	bracket := h.playoffService.Bracket(r.Context())

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type updatePlayoffsInput struct {
	Matches []models.PlayoffMatch `json:"matches"`
}

func (h *PlayoffHandler) UpdateResults(w http.ResponseWriter, r *http.Request) {
	var input updatePlayoffsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.playoffService.UpdateResults(r.Context(), input.Matches)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayoffHandler) PlayoffsComplete(w http.ResponseWriter, r *http.Request) {
	complete := h.playoffService.PlayoffsComplete(r.Context())

	if err := writeJSON(w, http.StatusOK, jsonResponse{"complete": complete}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
