package flight

import "strings"

// DelayStepMinutes is the padding added by each delay rule that fires.
const DelayStepMinutes = 10

// slowAirlineKeywords are matched as substrings of the lowercased airline
// name. "china easten" is deliberate: it matches the misspelling found in
// upstream data.
var slowAirlineKeywords = []string{
	"scoot",
	"air asia",
	"airasia",
	"china eastern",
	"china easten",
	"indigo",
	"air india",
}

var slowAircraftKeywords = []string{"767-300er", "767-400er"}

// exactSlowAircraft must equal the trimmed descriptor; "a320neo" does not match.
const exactSlowAircraft = "a320"

// DelayFor returns the risk padding in minutes for one flight. The airline,
// widebody and A320 rules are independent, so the result is 0, 10, 20 or 30.
func DelayFor(r Record) int {
	airline := strings.ToLower(r.Airline)
	aircraft := strings.TrimSpace(strings.ToLower(r.Aircraft))

	add := 0
	if containsAny(airline, slowAirlineKeywords) {
		add += DelayStepMinutes
	}
	if containsAny(aircraft, slowAircraftKeywords) {
		add += DelayStepMinutes
	}
	if aircraft == exactSlowAircraft {
		add += DelayStepMinutes
	}
	return add
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
