package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	log     *zap.SugaredLogger
}

func NewServer(h *handler.Handler, addr string, log *zap.SugaredLogger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	log = log.Named("server")

	return &Server{
		handler: h,
		server: &http.Server{
			Addr:    addr,
			Handler: handler.WithRequestID(handler.WithLogging(log, mux)),
		},
		log: log,
	}
}

// Handler отдает корневой обработчик вместе с middleware.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.log.Infow("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
