package flight

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Record is a single flight occurrence as reported by the flight data
// provider. Records are built fresh per query and never mutated afterwards.
type Record struct {
	Flight   string
	Takeoff  *time.Time
	Landed   *time.Time
	Ended    bool
	Airline  string
	Aircraft string

	// raw is the provider's object as received; it is what gets echoed back
	// to clients as flightData.
	raw map[string]any
}

// Raw returns the provider object the record was decoded from.
func (r Record) Raw() map[string]any { return r.raw }

// Duration returns landing minus takeoff when the record is a finished flight
// with both instants present.
func (r Record) Duration() (time.Duration, bool) {
	if !r.Ended || r.Takeoff == nil || r.Landed == nil {
		return 0, false
	}
	return r.Landed.Sub(*r.Takeoff), true
}

// naive timestamps carry no zone and are read as UTC
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON decodes a provider flight-summary object. Unknown fields are
// retained in the raw map.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("flight record is null")
	}
	rec, err := RecordFromMap(m)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// MarshalJSON writes the provider object back out unchanged. Records built in
// code (no raw object) are rendered from their typed fields.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return json.Marshal(r.raw)
	}
	m := map[string]any{
		"flight":           r.Flight,
		"flight_ended":     r.Ended,
		"datetime_takeoff": formatInstant(r.Takeoff),
		"datetime_landed":  formatInstant(r.Landed),
	}
	if r.Airline != "" {
		m["airline_name"] = r.Airline
	}
	if r.Aircraft != "" {
		m["model"] = r.Aircraft
	}
	return json.Marshal(m)
}

// RecordFromMap builds a Record from an already-decoded provider object.
func RecordFromMap(m map[string]any) (Record, error) {
	rec := Record{raw: m}
	rec.Flight, _ = m["flight"].(string)
	rec.Ended = truthy(m["flight_ended"])

	var err error
	if rec.Takeoff, err = instantField(m, "datetime_takeoff"); err != nil {
		return Record{}, err
	}
	if rec.Landed, err = instantField(m, "datetime_landed"); err != nil {
		return Record{}, err
	}

	rec.Airline = firstString(m,
		[]string{"airline_name"},
		[]string{"airline", "name"},
		[]string{"operator", "name"},
	)
	rec.Aircraft = firstString(m,
		[]string{"aircraft", "model", "text"},
		[]string{"aircraft", "model"},
		[]string{"aircraft", "type"},
		[]string{"model"},
	)
	return rec, nil
}

func instantField(m map[string]any, key string) (*time.Time, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%s: expected string, got %T", key, v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s: unrecognised timestamp %q", key, s)
}

func formatInstant(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// firstString returns the first non-empty string found at any of the paths.
func firstString(m map[string]any, paths ...[]string) string {
	for _, path := range paths {
		var cur any = m
		for _, key := range path {
			obj, ok := cur.(map[string]any)
			if !ok {
				cur = nil
				break
			}
			cur = obj[key]
		}
		if s, ok := cur.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(x, "true")
	case float64:
		return x != 0
	default:
		return false
	}
}
