package gates

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/utils"
)

const (
	NoteInvalidInput = "Gate input missing/invalid"
	NoteNoRule       = "No rule defined for this gate pair"
)

// Result is the walking (and optional skytrain) time between two gates.
// Minutes is 0 with a Note when no rule applies; that is data, not an error.
type Result struct {
	Minutes  int
	Skytrain Skytrain
	Note     string
}

// Transit returns the transit time from first to second at the instant now.
// now only matters for skytrain legs, whose ride time follows the UTC+8
// time of day.
func Transit(first, second string, now time.Time) Result {
	return TransitAt(first, second, utils.MinutesOfDay(now, utils.SGTOffsetMinutes))
}

// TransitAt is Transit with the UTC+8 minute of day given directly.
func TransitAt(first, second string, minuteOfDay int) Result {
	from, ok1 := Parse(first)
	to, ok2 := Parse(second)
	if !ok1 || !ok2 || !to.HasNumber() {
		return Result{Note: NoteInvalidInput}
	}

	origin, ok := originZone(from.Letter)
	if !ok {
		return Result{Note: NoteNoRule}
	}
	key, t, ok := resolve(routeKey{origin: origin, dest: to.Letter})
	if !ok {
		return Result{Note: NoteNoRule}
	}

	for _, r := range t.rules {
		if r.match(to.Number) {
			return Result{
				Minutes:  t.skytrain.Minutes(minuteOfDay) + r.minutes,
				Skytrain: t.skytrain,
			}
		}
	}
	return Result{Note: fmt.Sprintf("Undefined %c gate range for %s", to.Letter, key)}
}
