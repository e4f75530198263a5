// Package flighttransfer serves the transfer feasibility checks over HTTP.
//
// Routes:
//
//	GET /api/flight?flight=&date=
//	GET /api/calculate?flight1=&date1=&flight2=&date2=&firstGate=&secondGate=
//	GET /api/health
//	GET /metrics
//
// The *FromConfig helpers assemble the provider, service and server from a
// config.AppConfig.
package flighttransfer
