package flighttransfer

import (
	"net/http"

	"github.com/theoremus-urban-solutions/flight-transfer/internal/logging"
	"github.com/theoremus-urban-solutions/flight-transfer/transfer"
)

func (s *Server) handleFlight(w http.ResponseWriter, r *http.Request) {
	status, err := s.svc.LookupFlight(r.Context(), flightQueryFrom(r))
	if err != nil {
		s.fail(w, r, err, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	verdict, err := s.svc.Evaluate(r.Context(), transferRequestFrom(r))
	if err != nil {
		s.fail(w, r, err, "Server error")
		return
	}
	s.metrics.ObserveVerdict(verdict.Advisory())
	writeJSON(w, http.StatusOK, verdict)
}

// fail writes the error payload for err. serverMsg is used for provider
// failures, whose cause goes into details.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, serverMsg string) {
	log := logging.FromContext(r.Context(), s.log)
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Error(r.Context(), "request failed", logging.Err(err))
		writeError(w, code, serverMsg, transfer.Details(err))
		return
	}
	log.Info(r.Context(), "request rejected", logging.Int("status", code), logging.Err(err))
	writeError(w, code, transfer.Message(err, http.StatusText(code)), "")
}
