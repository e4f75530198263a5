package gates

// Skytrain names the inter-terminal shuttle leg added to a transit.
type Skytrain string

const (
	SkytrainNone Skytrain = ""
	SkytrainHIM  Skytrain = "HIM"
	SkytrainHER  Skytrain = "HER"
)

// band is a half-open minute-of-day window [from, to). Windows with from > to
// wrap past midnight.
type band struct {
	from, to int
	minutes  int
}

func (b band) contains(m int) bool {
	if b.from <= b.to {
		return m >= b.from && m < b.to
	}
	return m >= b.from || m < b.to
}

const skytrainFallbackMinutes = 7

var skytrainBands = map[Skytrain][]band{
	SkytrainHIM: {
		{from: 5 * 60, to: 12 * 60, minutes: 8},
		{from: 12 * 60, to: 17 * 60, minutes: 5},
		{from: 17 * 60, to: 2 * 60, minutes: 3},
		{from: 2 * 60, to: 5 * 60, minutes: 7},
	},
	SkytrainHER: {
		{from: 5 * 60, to: 12 * 60, minutes: 6},
		{from: 12 * 60, to: 17 * 60, minutes: 5},
		{from: 17 * 60, to: 2 * 60, minutes: 3},
		{from: 2 * 60, to: 5 * 60, minutes: 7},
	},
}

// Minutes returns the ride time of the skytrain at minuteOfDay (0..1439 in
// UTC+8 civil time). SkytrainNone rides for zero minutes.
func (s Skytrain) Minutes(minuteOfDay int) int {
	if s == SkytrainNone {
		return 0
	}
	for _, b := range skytrainBands[s] {
		if b.contains(minuteOfDay) {
			return b.minutes
		}
	}
	return skytrainFallbackMinutes
}
