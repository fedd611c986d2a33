package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.Join(r.Context(), req.Username, req.Age, req.TeamName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, MemberEnvelope{Member: domainMemberToHTTP(member)})
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("member_id")
	if raw == "" {
		h.handleError(w, r, domain.NewBadRequestError("member_id parameter is required"))
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.handleError(w, r, domain.NewBadRequestError("member_id must be an integer"))
		return
	}

	member, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MemberEnvelope{Member: domainMemberToHTTP(member)})
}

// ListMembers отдает участников по убыванию возраста, username сужает список.
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListMembers(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}

func (h *Handler) ChangeTeam(w http.ResponseWriter, r *http.Request) {
	var req ChangeTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if req.MemberID == 0 {
		h.handleError(w, r, domain.NewBadRequestError("member_id is required"))
		return
	}

	member, err := h.memberService.ChangeTeam(r.Context(), req.MemberID, req.TeamName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MemberEnvelope{Member: domainMemberToHTTP(member)})
}
