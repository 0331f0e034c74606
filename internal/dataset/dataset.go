// Package dataset defines the historical reference dataset and the loaders
// that supply it from the supported environments.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
)

// Entry is a single civilization/unit reference record. ModernUSD is the
// modern USD value of one unit of Unit; zero means the unit value is unknown.
type Entry struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	YearRange string  `json:"year_range"`
	Note      string  `json:"note"`
	Image     string  `json:"image,omitempty"`
	ModernUSD float64 `json:"modern_usd,omitempty"`
}

// Dataset is the ordered collection of historical reference entries. It is
// read-only once loaded; concurrent requests share it without locking.
type Dataset struct {
	Civilizations []Entry `json:"civilizations"`
}

// Loader supplies a parsed dataset. Implementations cover the supported
// environments: embedded asset, local file, remote URL, and Postgres.
type Loader interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Parse decodes a dataset JSON document.
func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset JSON: %w", err)
	}
	return &ds, nil
}
