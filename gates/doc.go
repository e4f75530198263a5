// Package gates computes gate-to-gate transit minutes inside the terminal.
//
// Routes are keyed by the origin gate's zone (A/B, C/D or E/F) and the
// destination gate's letter. Each key holds an ordered rule list over the
// destination gate number; the first matching rule gives the minutes. E/F
// origins reuse the C/D tables. Routes to E from A/B add the HIM skytrain
// ride and routes to F from A/B add the HER ride, both of which depend on
// the UTC+8 time of day.
//
// Unparseable gates and pairs with no rule produce a zero-minute Result with
// a Note rather than an error.
package gates
