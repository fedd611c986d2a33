package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/service"
)

// SearchMembers обслуживает GET /member/search.
//
// Без page и size возвращается весь список. projection=member отдает сами
// участники, projection=short - только имя и возраст. style=builder собирает
// условие через predicate.Builder; результат совпадает со style=where.
// Постраничный поиск отдает только строки участник+команда.
func (h *Handler) SearchMembers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cond, err := parseSearchCondition(query)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	projection := query.Get("projection")
	style := query.Get("style")
	if style != "" && style != "where" && style != "builder" {
		h.handleError(w, r, domain.NewBadRequestError("style must be where or builder"))
		return
	}

	if query.Has("page") || query.Has("size") {
		if projection != "" || style != "" {
			h.handleError(w, r, domain.NewBadRequestError("projection and style are not supported with paging"))
			return
		}
		h.searchPage(w, r, cond)
		return
	}

	if style == "builder" && projection != "" {
		h.handleError(w, r, domain.NewBadRequestError("style=builder is supported only without projection"))
		return
	}

	switch projection {
	case "member":
		members, err := h.searchService.SearchMembers(r.Context(), cond)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
	case "short":
		dtos, err := h.searchService.SearchDtos(r.Context(), cond)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, domainMemberDtosToHTTP(dtos))
	case "":
		search := h.searchService.Search
		if style == "builder" {
			search = h.searchService.SearchByBuilder
		}
		rows, err := search(r.Context(), cond)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, domainMemberTeamsToHTTP(rows))
	default:
		h.handleError(w, r, domain.NewBadRequestError("projection must be member or short"))
	}
}

func (h *Handler) searchPage(w http.ResponseWriter, r *http.Request, cond domain.MemberSearchCondition) {
	query := r.URL.Query()

	page, err := intParam(query, "page", 0)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	size, err := intParam(query, "size", domain.DefaultPageSize)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	mode, err := service.ParseSearchMode(query.Get("mode"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.searchService.SearchPage(r.Context(), cond, domain.NewPageRequest(page, size), mode)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPageToHTTP(result))
}

func parseSearchCondition(query url.Values) (domain.MemberSearchCondition, error) {
	cond := domain.MemberSearchCondition{
		Username: query.Get("username"),
		TeamName: query.Get("team_name"),
	}

	var err error
	if cond.AgeGoe, err = optionalIntParam(query, "age_goe"); err != nil {
		return cond, err
	}
	if cond.AgeLoe, err = optionalIntParam(query, "age_loe"); err != nil {
		return cond, err
	}

	return cond, nil
}

func optionalIntParam(query url.Values, name string) (*int, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewBadRequestError(name + " must be an integer")
	}
	return &v, nil
}

func intParam(query url.Values, name string, def int) (int, error) {
	v, err := optionalIntParam(query, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}
