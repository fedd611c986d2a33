package server

import (
	"net/http"

	"github.com/bagdasarian/member-search/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /team/add", h.CreateTeam)
	mux.HandleFunc("GET /team/get", h.GetTeam)
	mux.HandleFunc("GET /team/list", h.ListTeams)
	mux.HandleFunc("POST /member/add", h.AddMember)
	mux.HandleFunc("GET /member/get", h.GetMember)
	mux.HandleFunc("GET /member/list", h.ListMembers)
	mux.HandleFunc("POST /member/changeTeam", h.ChangeTeam)
	mux.HandleFunc("GET /member/search", h.SearchMembers)
	mux.HandleFunc("POST /member/bulk/rename", h.BulkRename)
	mux.HandleFunc("POST /member/bulk/age", h.BulkAge)
	mux.HandleFunc("POST /member/bulk/delete", h.BulkDelete)
	mux.HandleFunc("GET /stats", h.GetStats)
	mux.HandleFunc("GET /healthz", h.Healthz)
}
