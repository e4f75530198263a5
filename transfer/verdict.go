package transfer

import (
	"math"
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/gates"
	"github.com/theoremus-urban-solutions/flight-transfer/utils"
)

// DefaultServiceTimeMinutes is the minimum connection buffer below which
// operations control must be told.
const DefaultServiceTimeMinutes = 52

// AdvisoryMessage is attached to verdicts under the service time.
const AdvisoryMessage = "Please inform OC"

// FlightArrival is one leg of a verdict.
type FlightArrival struct {
	Flight           string  `json:"flight"`
	EstimatedArrival *string `json:"estimated_arrival"`
}

// GateSummary echoes the requested gates and the transit result.
type GateSummary struct {
	FirstGate  *string `json:"firstGate"`
	SecondGate *string `json:"secondGate"`
	Minutes    int     `json:"minutes"`
	Skytrain   *string `json:"skytrain"`
	Note       *string `json:"note"`
}

// Verdict is the transfer feasibility result. AbsoluteTimingMinutes may be
// negative when the buffer is already gone.
type Verdict struct {
	Flight1                     FlightArrival `json:"flight1"`
	Flight2                     FlightArrival `json:"flight2"`
	DifferenceMinutes           int           `json:"difference_minutes"`
	DelayTimingsMinutes         int           `json:"delay_timings_minutes"`
	DifferenceWithDelaysMinutes int           `json:"difference_with_delays_minutes"`
	ServiceTimeMinutes          int           `json:"service_time_minutes"`
	Gates                       GateSummary   `json:"gates"`
	AbsoluteTimingMinutes       int           `json:"absolute_timing_minutes"`
	Message                     string        `json:"message,omitempty"`
}

// Advisory reports whether the absolute timing is under the service time.
func (v Verdict) Advisory() bool { return v.AbsoluteTimingMinutes < v.ServiceTimeMinutes }

// Leg is one estimated flight feeding a verdict.
type Leg struct {
	Flight  string
	Arrival time.Time
	Delay   int
}

// NewVerdict combines two estimated legs and a gate transit. It is pure: the
// same inputs always give the same verdict.
func NewVerdict(leg1, leg2 Leg, firstGate, secondGate string, transit gates.Result, serviceTime, offsetMinutes int) Verdict {
	diff := leg1.Arrival.Sub(leg2.Arrival)
	if diff < 0 {
		diff = -diff
	}
	base := int(math.Round(diff.Minutes()))
	delay := leg1.Delay + leg2.Delay
	adjusted := base + delay

	v := Verdict{
		Flight1:                     arrivalOf(leg1, offsetMinutes),
		Flight2:                     arrivalOf(leg2, offsetMinutes),
		DifferenceMinutes:           base,
		DelayTimingsMinutes:         delay,
		DifferenceWithDelaysMinutes: adjusted,
		ServiceTimeMinutes:          serviceTime,
		Gates: GateSummary{
			FirstGate:  optional(firstGate),
			SecondGate: optional(secondGate),
			Minutes:    transit.Minutes,
			Skytrain:   optional(string(transit.Skytrain)),
			Note:       optional(transit.Note),
		},
		AbsoluteTimingMinutes: adjusted - transit.Minutes,
	}
	if v.Advisory() {
		v.Message = AdvisoryMessage
	}
	return v
}

func arrivalOf(l Leg, offsetMinutes int) FlightArrival {
	at := l.Arrival
	return FlightArrival{Flight: l.Flight, EstimatedArrival: utils.ToFixedOffsetISO(&at, offsetMinutes)}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
