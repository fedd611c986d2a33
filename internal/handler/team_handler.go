package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	createdTeam, err := h.teamService.CreateTeam(r.Context(), req.TeamName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateTeamResponse{
		Team: domainTeamToHTTP(createdTeam),
	})
}

// GetTeam ищет команду по team_name или по team_id.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	teamName := query.Get("team_name")
	rawID := query.Get("team_id")

	var (
		team *domain.TeamWithMembers
		err  error
	)
	switch {
	case teamName != "" && rawID == "":
		team, err = h.teamService.GetTeam(r.Context(), teamName)
	case rawID != "" && teamName == "":
		id, parseErr := strconv.ParseInt(rawID, 10, 64)
		if parseErr != nil {
			h.handleError(w, r, domain.NewBadRequestError("team_id must be an integer"))
			return
		}
		team, err = h.teamService.GetTeamByID(r.Context(), id)
	default:
		err = domain.NewBadRequestError("exactly one of team_name or team_id is required")
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamWithMembersToHTTP(team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	directory, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamDirectoryToHTTP(directory))
}
