package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/flight"
	"github.com/theoremus-urban-solutions/flight-transfer/utils"
)

// fixtureProvider serves flight records from local files named
// <FLIGHT>_<YYYY-MM-DD>.json, each holding a provider response body.
// This is CLI-specific logic for offline runs and is not part of the library.
type fixtureProvider struct {
	dir string
}

var _ flight.Provider = fixtureProvider{}

func newFixtureProvider(dir string) fixtureProvider {
	return fixtureProvider{dir: dir}
}

// Fetch returns the records of the matching file, most recent first as
// stored. A missing file means the flight did not operate that day.
func (p fixtureProvider) Fetch(_ context.Context, designator string, date time.Time, limit int) ([]flight.Record, error) {
	name := fmt.Sprintf("%s_%s.json", strings.ToUpper(strings.TrimSpace(designator)), utils.FormatDate(date))
	path := filepath.Join(p.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var body struct {
		Data []flight.Record `json:"data"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if limit > 0 && len(body.Data) > limit {
		body.Data = body.Data[:limit]
	}
	return body.Data, nil
}
