package server

import (
	"net/http"
	"time"

	"github.com/geomarket-ma/atmboard/internal/atm"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	ATMCount  int    `json:"atms_count"`
}

// handleHealth serves GET /health with the snapshot record count.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: atm.Timestamp(time.Now()),
		ATMCount:  len(atm.LoadSnapshot(s.snapshotPath)),
	})
}
