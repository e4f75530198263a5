// Package utils provides time helpers shared by the transfer service.
//
// It contains:
//   - Fixed-offset civil timestamp formatting (UTC+8 by default)
//   - Minute-of-day computation for time-banded tables
//   - Strict calendar date parsing
package utils
