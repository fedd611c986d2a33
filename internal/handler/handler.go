package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/service"
)

type Handler struct {
	teamService   service.TeamService
	memberService service.MemberService
	searchService service.SearchService
	statsService  service.StatsService
	log           *zap.SugaredLogger
}

func NewHandler(
	teamService service.TeamService,
	memberService service.MemberService,
	searchService service.SearchService,
	statsService service.StatsService,
	log *zap.SugaredLogger,
) *Handler {
	return &Handler{
		teamService:   teamService,
		memberService: memberService,
		searchService: searchService,
		statsService:  statsService,
		log:           log.Named("http"),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// decodeJSON читает тело запроса. Ошибка разбора превращается в BAD_REQUEST.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}
