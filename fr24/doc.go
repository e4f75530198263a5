// Package fr24 fetches flight summaries from the Flightradar24 API.
//
// The main type is Client, which implements flight.Provider: for a flight
// designator and calendar date it returns the matching summaries sorted
// newest first. Requests carry a bearer token and the Accept-Version header.
package fr24
