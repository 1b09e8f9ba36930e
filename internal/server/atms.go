package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/geomarket-ma/atmboard/internal/atm"
)

// handleATMs serves GET /api/atms. The backend is authoritative: when it
// answers with a success status its body is relayed verbatim. Otherwise the
// local pipeline rebuilds the dataset from the snapshot and the response is
// marked as a fallback. This endpoint never fails: the worst case is an
// empty, well-formed dataset.
func (s *Server) handleATMs(w http.ResponseWriter, r *http.Request) {
	body, err := s.backend.FetchATMs(r.Context())
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	zap.L().Warn("backend unreachable, serving local fallback dataset",
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.String("backend", s.backend.BaseURL()),
		zap.Error(err),
	)

	dataset := atm.BuildDataset(atm.LoadSnapshot(s.snapshotPath))
	dataset.Metadata.Source = atm.SourceLocalFallback
	dataset.Metadata.GeneratedAt = atm.Timestamp(time.Now())

	writeJSON(w, http.StatusOK, dataset)
}
