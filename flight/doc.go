// Package flight models flight-summary records from the flight data provider
// and derives the quantities the transfer check needs from them: the
// estimated arrival instant and the delay-risk padding.
//
// Records decode tolerantly from provider JSON. Timestamps may be RFC3339 or
// naive UTC, the airline name may sit in airline_name, airline.name or
// operator.name, and the aircraft descriptor in aircraft.model.text,
// aircraft.model, aircraft.type or model.
//
// Arrival estimation prefers the reported landing of a finished flight and
// otherwise adds the mean duration of up to three recent finished occurrences
// (looked up over at most five prior days) to the takeoff instant.
package flight
