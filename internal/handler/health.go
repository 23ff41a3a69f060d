package handler

import (
	"context"
	"log/slog"

	"github.com/pkordes/people-registry/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running and the
// database answers a ping, and 503 with {"status":"unavailable"} otherwise.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "health check: database ping failed", "error", err)
			return gen.GetHealth503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
