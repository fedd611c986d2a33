package handler

import (
	"net/http"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) BulkRename(w http.ResponseWriter, r *http.Request) {
	var req BulkRenameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	affected, err := h.memberService.BulkRename(r.Context(), req.AgeBelow, req.Username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BulkResponse{Affected: affected})
}

func (h *Handler) BulkAge(w http.ResponseWriter, r *http.Request) {
	var req BulkAgeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	var (
		affected int64
		err      error
	)
	switch {
	case req.Delta != nil && req.Factor == nil:
		affected, err = h.memberService.BulkAddAge(r.Context(), *req.Delta)
	case req.Factor != nil && req.Delta == nil:
		affected, err = h.memberService.BulkMultiplyAge(r.Context(), *req.Factor)
	default:
		err = domain.NewBadRequestError("exactly one of delta or factor is required")
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BulkResponse{Affected: affected})
}

func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	affected, err := h.memberService.BulkDelete(r.Context(), req.AgeAbove)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BulkResponse{Affected: affected})
}
