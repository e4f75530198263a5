package flighttransfer

import (
	"net/http"

	"github.com/theoremus-urban-solutions/flight-transfer/utils"
)

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Time: utils.Iso8601Now()})
}
