package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucaferrario/tournament-manager/models"
	"github.com/lucaferrario/tournament-manager/services"
)

type GroupHandler struct {
	groupService services.GroupService
}

func NewGroupHandler(gs services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: gs}
}

type createGroupsInput struct {
	NumGroups     int `json:"num_groups"`
	TeamsPerGroup int `json:"teams_per_group"`
}

func (h *GroupHandler) CreateGroups(w http.ResponseWriter, r *http.Request) {
	var input createGroupsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	groups, err := h.groupService.CreateGroups(r.Context(), input.NumGroups, input.TeamsPerGroup)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.groupService.ListGroups(r.Context())

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")

	matches, err := h.groupService.GroupMatches(r.Context(), group)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type updateMatchesInput struct {
	Matches []models.Match `json:"matches"`
}

func (h *GroupHandler) UpdateMatches(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")

	var input updateMatchesInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.groupService.UpdateMatchResults(r.Context(), group, input.Matches)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")

	standings, err := h.groupService.GroupStandings(r.Context(), group)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) GroupsComplete(w http.ResponseWriter, r *http.Request) {
	complete := h.groupService.GroupsComplete(r.Context())

	if err := writeJSON(w, http.StatusOK, jsonResponse{"complete": complete}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
