package flighttransfer

import (
	"net/http"
	"strings"

	"github.com/theoremus-urban-solutions/flight-transfer/transfer"
)

func flightQueryFrom(r *http.Request) transfer.FlightQuery {
	q := r.URL.Query()
	return transfer.FlightQuery{
		Flight: strings.TrimSpace(q.Get("flight")),
		Date:   strings.TrimSpace(q.Get("date")),
	}
}

// transferRequestFrom reads the calculate parameters. Gates stay untrimmed;
// the gate parser handles surrounding space itself.
func transferRequestFrom(r *http.Request) transfer.Request {
	q := r.URL.Query()
	return transfer.Request{
		Flight1:    strings.TrimSpace(q.Get("flight1")),
		Date1:      strings.TrimSpace(q.Get("date1")),
		Flight2:    strings.TrimSpace(q.Get("flight2")),
		Date2:      strings.TrimSpace(q.Get("date2")),
		FirstGate:  q.Get("firstGate"),
		SecondGate: q.Get("secondGate"),
	}
}
