// Package transfer decides whether a passenger can make a connection between
// two flights.
//
// Service looks up the current record of each flight, estimates both
// arrivals, pads the gap with each flight's delay risk, subtracts the gate
// transit and compares the remainder against the service time (52 minutes by
// default). Verdicts under the threshold carry the "Please inform OC"
// message. Failures are classified with the Err* kinds via errors.Is.
package transfer
