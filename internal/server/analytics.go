package server

import (
	"net/http"

	"github.com/geomarket-ma/atmboard/internal/atm"
)

// handleAnalytics serves GET /api/analytics/dashboard, computed from the
// locally built dataset. The backend exposes its own analytics; this route
// is the local analogue so the dashboard keeps working offline.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	dataset := atm.BuildDataset(atm.LoadSnapshot(s.snapshotPath))
	writeJSON(w, http.StatusOK, atm.BuildAnalytics(dataset.ATMs))
}
