package gates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var gatePattern = regexp.MustCompile(`^([A-Ga-g])\s*(\d+)?$`)

// Gate is a terminal gate: a zone letter A..G and an optional number.
type Gate struct {
	Letter byte
	Number int // 0 when absent
}

// HasNumber reports whether the gate carries a usable number. Zero counts as
// absent.
func (g Gate) HasNumber() bool { return g.Number > 0 }

func (g Gate) String() string {
	if !g.HasNumber() {
		return string(g.Letter)
	}
	return fmt.Sprintf("%c%d", g.Letter, g.Number)
}

// Parse reads a gate such as "a12", "C 3" or "G". ok is false when the input
// does not name a gate.
func Parse(s string) (g Gate, ok bool) {
	m := gatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Gate{}, false
	}
	g.Letter = strings.ToUpper(m[1])[0]
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Gate{}, false
		}
		g.Number = n
	}
	return g, true
}
